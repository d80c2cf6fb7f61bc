package reportservice

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"estoquepecas/internal/domain"
	apperror "estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/logger"
)

const (
	dateLayout = "02/01/2006 15:04:05"
	sheetName  = "Movimentações"
	utf8BOM    = "\ufeff"
)

var header = []string{"Data", "Tipo", "Item", "Quantidade", "Responsável", "Observação"}

// MovementReader é a parte do Razão usada pelos relatórios.
type MovementReader interface {
	ListMovements(ctx context.Context) []domain.Movement
}

// Service filtra o razão e exporta o resultado em CSV ou XLSX.
type Service struct {
	movements MovementReader
	logger    logger.Logger
	loc       *time.Location
	now       func() time.Time
}

// Option configura o Service.
type Option func(*Service)

// WithLocation define o fuso usado nas datas exportadas e nos limites do filtro.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// WithClock substitui o relógio usado no nome do arquivo.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService cria o serviço de relatórios.
func NewService(movements MovementReader, logger logger.Logger, opts ...Option) *Service {
	s := &Service{movements: movements, logger: logger, loc: time.UTC, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location devolve o fuso dos relatórios.
func (s *Service) Location() *time.Location {
	return s.loc
}

// FilterMovements devolve as movimentações selecionadas, da mais recente para a mais antiga.
// Start é inclusivo; End inclui o dia inteiro.
func (s *Service) FilterMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.Movement, error) {
	tipo := strings.ToLower(strings.TrimSpace(filter.Tipo))
	if tipo == "todos" {
		tipo = ""
	}
	if tipo != "" && !domain.MovementType(tipo).Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Tipo de movimentação inválido: '%s'.", filter.Tipo))
	}

	var end time.Time
	if filter.End != nil {
		e := filter.End.In(s.loc)
		end = time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), s.loc)
	}
	if filter.Start != nil && filter.End != nil && filter.Start.After(end) {
		return nil, apperror.NewValidationError("A data inicial deve ser anterior à data final.")
	}

	all := s.movements.ListMovements(ctx)
	selected := make([]domain.Movement, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		m := all[i]
		if filter.Start != nil && m.Data.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && m.Data.After(end) {
			continue
		}
		if tipo != "" && string(m.Tipo) != tipo {
			continue
		}
		selected = append(selected, m)
	}
	return selected, nil
}

// FileName devolve o nome do arquivo de exportação com a data de hoje.
func (s *Service) FileName(ext string) string {
	return fmt.Sprintf("relatorio_movimentacoes_%s.%s", s.now().In(s.loc).Format("2006-01-02"), ext)
}

// ExportCSV escreve a seleção em CSV separado por ponto e vírgula, com BOM UTF-8.
// Devolve quantas movimentações foram exportadas.
func (s *Service) ExportCSV(ctx context.Context, filter domain.MovementFilter, w io.Writer) (int, error) {
	rows, err := s.selectRows(ctx, filter)
	if err != nil {
		return 0, err
	}

	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return 0, apperror.NewInternalError("Falha ao escrever relatório.", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(header); err != nil {
		return 0, apperror.NewInternalError("Falha ao escrever relatório.", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return 0, apperror.NewInternalError("Falha ao escrever relatório.", err)
	}

	s.logger.Info("Relatório CSV exportado.", map[string]interface{}{"linhas": len(rows)})
	return len(rows), nil
}

// ExportXLSX escreve a seleção em uma planilha com as mesmas colunas do CSV.
func (s *Service) ExportXLSX(ctx context.Context, filter domain.MovementFilter, w io.Writer) (int, error) {
	rows, err := s.selectRows(ctx, filter)
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return 0, apperror.NewInternalError("Falha ao montar planilha.", err)
	}

	if err := setRow(f, 1, header); err != nil {
		return 0, apperror.NewInternalError("Falha ao montar planilha.", err)
	}
	for i, row := range rows {
		if err := setRow(f, i+2, row); err != nil {
			return 0, apperror.NewInternalError("Falha ao montar planilha.", err)
		}
	}

	if err := f.Write(w); err != nil {
		return 0, apperror.NewInternalError("Falha ao escrever planilha.", err)
	}

	s.logger.Info("Relatório XLSX exportado.", map[string]interface{}{"linhas": len(rows)})
	return len(rows), nil
}

func (s *Service) selectRows(ctx context.Context, filter domain.MovementFilter) ([][]string, error) {
	selected, err := s.FilterMovements(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, apperror.NewValidationError("Nenhum dado para exportar.")
	}

	rows := make([][]string, 0, len(selected))
	for _, m := range selected {
		rows = append(rows, []string{
			m.Data.In(s.loc).Format(dateLayout),
			m.Tipo.Label(),
			m.ItemNome,
			strconv.Itoa(m.Quantidade),
			m.Responsavel,
			m.Observacao,
		})
	}
	return rows, nil
}

func setRow(f *excelize.File, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}
