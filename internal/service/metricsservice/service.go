package metricsservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"estoquepecas/internal/domain"
	"estoquepecas/internal/pkg/logger"
)

const (
	// Window é a janela móvel de entradas e saídas.
	Window = 30 * 24 * time.Hour
	// SeriesDays é o tamanho da série diária do painel.
	SeriesDays = 7
	// RecentCount é quantas movimentações o painel lista.
	RecentCount = 5
)

// StockReader é a parte do Catálogo lida pelo agregador.
type StockReader interface {
	ListItems(ctx context.Context, filter domain.StockFilter) []domain.StockItem
	LowStock(ctx context.Context, threshold int) []domain.StockItem
}

// MovementReader é a parte do Razão lida pelo agregador.
type MovementReader interface {
	ListMovements(ctx context.Context) []domain.Movement
	RecentMovements(ctx context.Context, n int) []domain.Movement
}

// Service recalcula as métricas a cada chamada; não há cache.
type Service struct {
	stock     StockReader
	movements MovementReader
	logger    logger.Logger
	now       func() time.Time
	loc       *time.Location
	lowStock  int
}

// Option configura o Service.
type Option func(*Service)

// WithClock substitui o relógio de referência das janelas.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation define o fuso dos dias do calendário da série (padrão UTC).
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// WithLowStockThreshold define o limite de estoque baixo (padrão 20).
func WithLowStockThreshold(n int) Option {
	return func(s *Service) { s.lowStock = n }
}

// NewService cria o agregador.
func NewService(stock StockReader, movements MovementReader, logger logger.Logger, opts ...Option) *Service {
	s := &Service{
		stock:     stock,
		movements: movements,
		logger:    logger,
		now:       time.Now,
		loc:       time.UTC,
		lowStock:  20,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetMetrics calcula os totais sobre o catálogo e o razão atuais.
func (s *Service) GetMetrics(ctx context.Context) domain.StockMetrics {
	return ComputeMetrics(s.stock.ListItems(ctx, domain.StockFilter{}), s.movements.ListMovements(ctx), s.now())
}

// DailySeries devolve a série dos últimos days dias (incluindo hoje), do mais antigo ao mais recente.
func (s *Service) DailySeries(ctx context.Context, days int) []domain.DailyMovement {
	return ComputeDailySeries(s.movements.ListMovements(ctx), s.now(), days, s.loc)
}

// Dashboard reúne métricas, série de 7 dias, últimas movimentações e itens com estoque baixo.
func (s *Service) Dashboard(ctx context.Context) domain.Dashboard {
	items := s.stock.ListItems(ctx, domain.StockFilter{})
	movements := s.movements.ListMovements(ctx)
	now := s.now()

	d := domain.Dashboard{
		Metrics:         ComputeMetrics(items, movements, now),
		Series:          ComputeDailySeries(movements, now, SeriesDays, s.loc),
		RecentMovements: s.movements.RecentMovements(ctx, RecentCount),
		LowStock:        s.stock.LowStock(ctx, s.lowStock),
	}

	s.logger.Debug("Painel calculado.", map[string]interface{}{
		"items":     d.Metrics.ItemsCount,
		"movements": len(movements),
		"low_stock": len(d.LowStock),
	})
	return d
}

// ComputeMetrics soma quantidades e valores do estoque e as movimentações da janela de 30 dias.
// Movimentações com data exatamente no limite da janela ficam de fora.
func ComputeMetrics(items []domain.StockItem, movements []domain.Movement, now time.Time) domain.StockMetrics {
	m := domain.StockMetrics{TotalValue: decimal.Zero, ItemsCount: len(items)}

	for _, item := range items {
		m.TotalItems += item.Quantidade
		m.TotalValue = m.TotalValue.Add(item.TotalValue())
	}
	m.TotalValue = m.TotalValue.Round(2)

	since := now.Add(-Window)
	for _, mv := range movements {
		if !mv.Data.After(since) {
			continue
		}
		switch mv.Tipo {
		case domain.MovementEntrada:
			m.Entradas += mv.Quantidade
		case domain.MovementSaida:
			m.Saidas += mv.Quantidade
		}
	}
	return m
}

// ComputeDailySeries agrupa as movimentações por dia do calendário em loc.
func ComputeDailySeries(movements []domain.Movement, now time.Time, days int, loc *time.Location) []domain.DailyMovement {
	if days <= 0 {
		return []domain.DailyMovement{}
	}

	today := now.In(loc)
	series := make([]domain.DailyMovement, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, -(days - 1 - i))
		key := day.Format("2006-01-02")
		series[i] = domain.DailyMovement{Date: key, Label: day.Format("02/01")}
		index[key] = i
	}

	for _, mv := range movements {
		i, ok := index[mv.Data.In(loc).Format("2006-01-02")]
		if !ok {
			continue
		}
		switch mv.Tipo {
		case domain.MovementEntrada:
			series[i].Entradas += mv.Quantidade
		case domain.MovementSaida:
			series[i].Saidas += mv.Quantidade
		}
	}
	return series
}
