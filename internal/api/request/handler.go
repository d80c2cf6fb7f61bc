package request

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"estoquepecas/internal/api/response"
	"estoquepecas/internal/domain"
	apperror "estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/logger"
	"estoquepecas/internal/pkg/middleware"
)

// RequestService define o contrato do fluxo de solicitações.
type RequestService interface {
	ListRequests(ctx context.Context, status domain.RequestStatus) []domain.SolicitacaoPeca
	GetRequest(ctx context.Context, id string) (domain.SolicitacaoPeca, bool)
	CreateRequest(ctx context.Context, in domain.NewSolicitacao) (domain.SolicitacaoPeca, error)
	SetStatus(ctx context.Context, id string, status domain.RequestStatus) (bool, error)
}

// ItemLookup resolve o item solicitado.
type ItemLookup interface {
	GetItem(ctx context.Context, id string) (domain.StockItem, bool)
}

// Handler expõe as solicitações de peças.
type Handler struct {
	Service RequestService
	Items   ItemLookup
	Logger  logger.Logger
}

// NewHandler cria o Handler de solicitações.
func NewHandler(svc RequestService, items ItemLookup, log logger.Logger) *Handler {
	return &Handler{Service: svc, Items: items, Logger: log}
}

// ListRequestsHandler godoc
// @Summary Lista as solicitações
// @Tags requests
// @Produce json
// @Param status query string false "pendente, aprovada ou rejeitada"
// @Success 200 {array} domain.SolicitacaoPeca
// @Failure 400 {object} domain.ErrorResponse
// @Router /v1/requests [get]
func (h *Handler) ListRequestsHandler(w http.ResponseWriter, r *http.Request) {
	status := domain.RequestStatus(r.URL.Query().Get("status"))
	switch status {
	case "", domain.StatusPendente, domain.StatusAprovada, domain.StatusRejeitada:
	default:
		response.Error(w, r, h.Logger, apperror.NewValidationError("Status inválido."))
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, h.Service.ListRequests(r.Context(), status))
}

// CreateRequestHandler godoc
// @Summary Abre uma solicitação de peça
// @Description Solicitante e matrícula vêm do operador logado quando omitidos.
// @Tags requests
// @Accept json
// @Produce json
// @Param request body domain.NewSolicitacao true "Solicitação"
// @Success 201 {object} domain.SolicitacaoPeca
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /v1/requests [post]
func (h *Handler) CreateRequestHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in domain.NewSolicitacao
	if err := response.Decode(r, &in); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	if in.ItemID == "" {
		response.Error(w, r, h.Logger, apperror.NewValidationError("Selecione um item."))
		return
	}
	item, ok := h.Items.GetItem(ctx, in.ItemID)
	if !ok {
		response.Error(w, r, h.Logger, apperror.NewNotFoundError("Item não encontrado."))
		return
	}
	in.ItemNome = item.Nome

	if op, ok := middleware.OperatorFromContext(ctx); ok {
		if in.Solicitante == "" {
			in.Solicitante = op.Nome
		}
		if in.Matricula == "" {
			in.Matricula = op.Matricula
		}
	}

	req, err := h.Service.CreateRequest(ctx, in)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusCreated, req)
}

// SetStatusHandler godoc
// @Summary Aprova ou rejeita uma solicitação
// @Description A aprovação lança uma saída no razão.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "ID da solicitação"
// @Param change body domain.StatusChange true "Novo status"
// @Success 200 {object} domain.SolicitacaoPeca
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /v1/requests/{id}/status [patch]
func (h *Handler) SetStatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var change domain.StatusChange
	if err := response.Decode(r, &change); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	ok, err := h.Service.SetStatus(ctx, id, change.Status)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	if !ok {
		response.Error(w, r, h.Logger, apperror.NewNotFoundError("Solicitação não encontrada."))
		return
	}

	req, _ := h.Service.GetRequest(ctx, id)
	response.JSON(w, h.Logger, http.StatusOK, req)
}
