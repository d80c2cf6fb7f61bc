package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"estoquepecas/internal/api/response"
	"estoquepecas/internal/domain"
	apperror "estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/logger"
)

const (
	dateParam = "2006-01-02"

	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportService define o contrato dos relatórios de movimentação.
type ReportService interface {
	Location() *time.Location
	FilterMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.Movement, error)
	FileName(ext string) string
	ExportCSV(ctx context.Context, filter domain.MovementFilter, w io.Writer) (int, error)
	ExportXLSX(ctx context.Context, filter domain.MovementFilter, w io.Writer) (int, error)
}

// Handler expõe os relatórios.
type Handler struct {
	Service ReportService
	Logger  logger.Logger
}

// NewHandler cria o Handler de relatórios.
func NewHandler(svc ReportService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// parseFilter lê start, end (AAAA-MM-DD) e tipo da query string.
func (h *Handler) parseFilter(r *http.Request) (domain.MovementFilter, error) {
	q := r.URL.Query()
	filter := domain.MovementFilter{Tipo: q.Get("tipo")}

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{{"start", &filter.Start}, {"end", &filter.End}} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		t, err := time.ParseInLocation(dateParam, raw, h.Service.Location())
		if err != nil {
			return domain.MovementFilter{}, apperror.NewValidationError(fmt.Sprintf("Data inválida em '%s': use AAAA-MM-DD.", p.name))
		}
		*p.dst = &t
	}
	return filter, nil
}

// ListHandler godoc
// @Summary Movimentações filtradas por período e tipo
// @Tags reports
// @Produce json
// @Param start query string false "Data inicial (AAAA-MM-DD)"
// @Param end query string false "Data final, inclusiva (AAAA-MM-DD)"
// @Param tipo query string false "entrada, saida ou todos"
// @Success 200 {array} domain.Movement
// @Failure 400 {object} domain.ErrorResponse
// @Router /v1/reports/movements [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseFilter(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	movements, err := h.Service.FilterMovements(r.Context(), filter)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, movements)
}

// ExportCSVHandler godoc
// @Summary Exporta as movimentações filtradas em CSV
// @Tags reports
// @Produce text/csv
// @Param start query string false "Data inicial (AAAA-MM-DD)"
// @Param end query string false "Data final, inclusiva (AAAA-MM-DD)"
// @Param tipo query string false "entrada, saida ou todos"
// @Success 200 {file} file
// @Failure 400 {object} domain.ErrorResponse
// @Router /v1/reports/movements.csv [get]
func (h *Handler) ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "csv", contentTypeCSV, h.Service.ExportCSV)
}

// ExportXLSXHandler godoc
// @Summary Exporta as movimentações filtradas em planilha
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start query string false "Data inicial (AAAA-MM-DD)"
// @Param end query string false "Data final, inclusiva (AAAA-MM-DD)"
// @Param tipo query string false "entrada, saida ou todos"
// @Success 200 {file} file
// @Failure 400 {object} domain.ErrorResponse
// @Router /v1/reports/movements.xlsx [get]
func (h *Handler) ExportXLSXHandler(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "xlsx", contentTypeXLSX, h.Service.ExportXLSX)
}

type exporter func(ctx context.Context, filter domain.MovementFilter, w io.Writer) (int, error)

// export monta o arquivo em memória para que um erro ainda possa virar resposta JSON.
func (h *Handler) export(w http.ResponseWriter, r *http.Request, ext, contentType string, fn exporter) {
	filter, err := h.parseFilter(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var buf bytes.Buffer
	if _, err := fn(r.Context(), filter, &buf); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.Service.FileName(ext)))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger.Error("Falha ao enviar relatório", err)
	}
}
