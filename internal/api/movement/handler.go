package movement

import (
	"context"
	"net/http"
	"strconv"

	"estoquepecas/internal/api/response"
	"estoquepecas/internal/domain"
	apperror "estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/logger"
	"estoquepecas/internal/pkg/middleware"
)

const defaultRecent = 5

// MovementService define o contrato do razão de movimentações.
type MovementService interface {
	ListMovements(ctx context.Context) []domain.Movement
	RecentMovements(ctx context.Context, n int) []domain.Movement
	RegisterMovement(ctx context.Context, in domain.NewMovement) (domain.Movement, error)
}

// ItemLookup resolve o item antes do lançamento.
type ItemLookup interface {
	GetItem(ctx context.Context, id string) (domain.StockItem, bool)
}

// Handler expõe o razão de movimentações.
type Handler struct {
	Service MovementService
	Items   ItemLookup
	Logger  logger.Logger
}

// NewHandler cria o Handler de movimentações.
func NewHandler(svc MovementService, items ItemLookup, log logger.Logger) *Handler {
	return &Handler{Service: svc, Items: items, Logger: log}
}

// ListMovementsHandler godoc
// @Summary Lista todas as movimentações em ordem de inserção
// @Tags movements
// @Produce json
// @Success 200 {array} domain.Movement
// @Router /v1/movements [get]
func (h *Handler) ListMovementsHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, h.Logger, http.StatusOK, h.Service.ListMovements(r.Context()))
}

// RecentMovementsHandler godoc
// @Summary Lista as movimentações mais recentes
// @Tags movements
// @Produce json
// @Param limit query int false "Quantidade (padrão 5)"
// @Success 200 {array} domain.Movement
// @Failure 400 {object} domain.ErrorResponse
// @Router /v1/movements/recent [get]
func (h *Handler) RecentMovementsHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecent
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.Error(w, r, h.Logger, apperror.NewValidationError("limit deve ser um inteiro positivo."))
			return
		}
		limit = n
	}
	response.JSON(w, h.Logger, http.StatusOK, h.Service.RecentMovements(r.Context(), limit))
}

// RegisterMovementHandler godoc
// @Summary Registra uma entrada ou saída
// @Description A saída é recusada quando excede o saldo do item.
// @Tags movements
// @Accept json
// @Produce json
// @Param movement body domain.NewMovement true "Movimentação"
// @Success 201 {object} domain.Movement
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /v1/movements [post]
func (h *Handler) RegisterMovementHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in domain.NewMovement
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

	// O razão limita o saldo em zero; quem lança a saída recusa o excesso.
	if in.Tipo == domain.MovementSaida && in.Quantidade > item.Quantidade {
		response.Error(w, r, h.Logger, apperror.NewValidationError("Quantidade insuficiente em estoque"))
		return
	}

	in.ItemNome = item.Nome

	if in.Responsavel == "" {
		if op, ok := middleware.OperatorFromContext(ctx); ok {
			in.Responsavel = op.Nome
		}
	}

	mov, err := h.Service.RegisterMovement(ctx, in)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusCreated, mov)
}
