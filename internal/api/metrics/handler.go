package metrics

import (
	"context"
	"net/http"
	"strconv"

	"estoquepecas/internal/api/response"
	"estoquepecas/internal/domain"
	apperror "estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/logger"
)

const (
	defaultDays = 7
	maxDays     = 90
)

// MetricsService define as leituras do painel.
type MetricsService interface {
	GetMetrics(ctx context.Context) domain.StockMetrics
	DailySeries(ctx context.Context, days int) []domain.DailyMovement
	Dashboard(ctx context.Context) domain.Dashboard
}

// Handler expõe as métricas do estoque.
type Handler struct {
	Service MetricsService
	Logger  logger.Logger
}

// NewHandler cria o Handler de métricas.
func NewHandler(svc MetricsService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// GetMetricsHandler godoc
// @Summary Totais do estoque e movimentações dos últimos 30 dias
// @Tags metrics
// @Produce json
// @Success 200 {object} domain.StockMetrics
// @Router /v1/metrics [get]
func (h *Handler) GetMetricsHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, h.Logger, http.StatusOK, h.Service.GetMetrics(r.Context()))
}

// DailySeriesHandler godoc
// @Summary Entradas e saídas por dia
// @Tags metrics
// @Produce json
// @Param days query int false "Dias (padrão 7, máximo 90)"
// @Success 200 {array} domain.DailyMovement
// @Failure 400 {object} domain.ErrorResponse
// @Router /v1/metrics/daily [get]
func (h *Handler) DailySeriesHandler(w http.ResponseWriter, r *http.Request) {
	days := defaultDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxDays {
			response.Error(w, r, h.Logger, apperror.NewValidationError("days deve estar entre 1 e 90."))
			return
		}
		days = n
	}
	response.JSON(w, h.Logger, http.StatusOK, h.Service.DailySeries(r.Context(), days))
}

// DashboardHandler godoc
// @Summary Painel inicial
// @Tags metrics
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Router /v1/dashboard [get]
func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, h.Logger, http.StatusOK, h.Service.Dashboard(r.Context()))
}
