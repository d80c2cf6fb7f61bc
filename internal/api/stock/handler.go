package stock

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"estoquepecas/internal/api/response"
	"estoquepecas/internal/domain"
	apperror "estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/logger"
)

// StockService define o contrato que o Handler espera do catálogo.
type StockService interface {
	ListItems(ctx context.Context, filter domain.StockFilter) []domain.StockItem
	GetItem(ctx context.Context, id string) (domain.StockItem, bool)
	LowStock(ctx context.Context, threshold int) []domain.StockItem
	CreateItem(ctx context.Context, in domain.NewStockItem) (domain.StockItem, error)
	UpdateItem(ctx context.Context, id string, patch domain.StockItemPatch) (domain.StockItem, bool, error)
	DeleteItem(ctx context.Context, id string) (bool, error)
}

// Handler agrupa os endpoints do catálogo de peças.
type Handler struct {
	Service           StockService
	Logger            logger.Logger
	LowStockThreshold int
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc StockService, log logger.Logger, lowStockThreshold int) *Handler {
	return &Handler{
		Service:           svc,
		Logger:            log,
		LowStockThreshold: lowStockThreshold,
	}
}

// handleServiceResponse envia data com successStatus ou o erro padronizado.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, successStatus, data)
}

// ListItemsHandler godoc
// @Summary Lista as peças do estoque
// @Tags stock
// @Produce json
// @Param search query string false "Filtro por nome, código ou categoria"
// @Success 200 {array} domain.StockItem
// @Router /v1/stock [get]
func (h *Handler) ListItemsHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.StockFilter{Search: r.URL.Query().Get("search")}
	h.handleServiceResponse(w, r, h.Service.ListItems(r.Context(), filter), nil, http.StatusOK)
}

// GetItemHandler godoc
// @Summary Busca uma peça pelo ID
// @Tags stock
// @Produce json
// @Param id path string true "ID da peça"
// @Success 200 {object} domain.StockItem
// @Failure 404 {object} domain.ErrorResponse
// @Router /v1/stock/{id} [get]
func (h *Handler) GetItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, ok := h.Service.GetItem(r.Context(), id)
	if !ok {
		h.handleServiceResponse(w, r, nil, apperror.NewNotFoundError("Item não encontrado."), 0)
		return
	}
	h.handleServiceResponse(w, r, item, nil, http.StatusOK)
}

// LowStockHandler godoc
// @Summary Lista as peças com estoque baixo
// @Tags stock
// @Produce json
// @Param threshold query int false "Limite (padrão configurado no servidor)"
// @Success 200 {array} domain.StockItem
// @Failure 400 {object} domain.ErrorResponse
// @Router /v1/stock/low [get]
func (h *Handler) LowStockHandler(w http.ResponseWriter, r *http.Request) {
	threshold := h.LowStockThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("threshold deve ser um inteiro não negativo."), 0)
			return
		}
		threshold = n
	}
	h.handleServiceResponse(w, r, h.Service.LowStock(r.Context(), threshold), nil, http.StatusOK)
}

// CreateItemHandler godoc
// @Summary Cadastra uma peça
// @Tags stock
// @Accept json
// @Produce json
// @Param item body domain.NewStockItem true "Dados da peça"
// @Success 201 {object} domain.StockItem
// @Failure 400 {object} domain.ErrorResponse
// @Router /v1/stock [post]
func (h *Handler) CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.NewStockItem
	if err := response.Decode(r, &in); err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	item, err := h.Service.CreateItem(r.Context(), in)
	h.handleServiceResponse(w, r, item, err, http.StatusCreated)
}

// UpdateItemHandler godoc
// @Summary Atualiza campos de uma peça
// @Tags stock
// @Accept json
// @Produce json
// @Param id path string true "ID da peça"
// @Param patch body domain.StockItemPatch true "Campos alterados"
// @Success 200 {object} domain.StockItem
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /v1/stock/{id} [put]
func (h *Handler) UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch domain.StockItemPatch
	if err := response.Decode(r, &patch); err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	item, ok, err := h.Service.UpdateItem(r.Context(), id, patch)
	if err == nil && !ok {
		err = apperror.NewNotFoundError("Item não encontrado.")
	}
	h.handleServiceResponse(w, r, item, err, http.StatusOK)
}

// DeleteItemHandler godoc
// @Summary Remove uma peça
// @Description O histórico de movimentações e solicitações é preservado.
// @Tags stock
// @Param id path string true "ID da peça"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse
// @Router /v1/stock/{id} [delete]
func (h *Handler) DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ok, err := h.Service.DeleteItem(r.Context(), id)
	if err == nil && !ok {
		err = apperror.NewNotFoundError("Item não encontrado.")
	}
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}
