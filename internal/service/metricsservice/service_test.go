package metricsservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estoquepecas/internal/domain"
	"estoquepecas/internal/pkg/logger"
	"estoquepecas/internal/service/metricsservice"
)

type MockStockReader struct {
	mock.Mock
}

func (m *MockStockReader) ListItems(ctx context.Context, filter domain.StockFilter) []domain.StockItem {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.StockItem)
}

func (m *MockStockReader) LowStock(ctx context.Context, threshold int) []domain.StockItem {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]domain.StockItem)
}

type MockMovementReader struct {
	mock.Mock
}

func (m *MockMovementReader) ListMovements(ctx context.Context) []domain.Movement {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Movement)
}

func (m *MockMovementReader) RecentMovements(ctx context.Context, n int) []domain.Movement {
	args := m.Called(ctx, n)
	return args.Get(0).([]domain.Movement)
}

var now = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

func item(qty int, price string) domain.StockItem {
	return domain.StockItem{Quantidade: qty, ValorUnitario: decimal.RequireFromString(price)}
}

func movement(tipo domain.MovementType, qty int, at time.Time) domain.Movement {
	return domain.Movement{Tipo: tipo, Quantidade: qty, Data: at}
}

func TestComputeMetrics_Totals(t *testing.T) {
	m := metricsservice.ComputeMetrics([]domain.StockItem{item(45, "15.0"), item(120, "35.0")}, nil, now)

	assert.Equal(t, 165, m.TotalItems)
	assert.True(t, m.TotalValue.Equal(decimal.RequireFromString("4875.00")), "got %s", m.TotalValue)
	assert.Equal(t, 2, m.ItemsCount)
	assert.Zero(t, m.Entradas)
	assert.Zero(t, m.Saidas)
}

func TestComputeMetrics_RoundsCents(t *testing.T) {
	m := metricsservice.ComputeMetrics([]domain.StockItem{item(3, "0.335")}, nil, now)

	assert.Equal(t, "1.01", m.TotalValue.StringFixed(2))
}

func TestComputeMetrics_ThirtyDayWindow(t *testing.T) {
	movements := []domain.Movement{
		movement(domain.MovementEntrada, 20, now.Add(-24*time.Hour)),
		movement(domain.MovementSaida, 10, now.Add(-12*time.Hour)),
		movement(domain.MovementEntrada, 500, now.Add(-31*24*time.Hour)),
		movement(domain.MovementSaida, 300, now.Add(-30*24*time.Hour)),
	}

	m := metricsservice.ComputeMetrics(nil, movements, now)

	assert.Equal(t, 20, m.Entradas)
	assert.Equal(t, 10, m.Saidas)
	assert.Len(t, movements, 4)
}

func TestComputeDailySeries_BucketsByCalendarDay(t *testing.T) {
	movements := []domain.Movement{
		movement(domain.MovementEntrada, 5, now),
		movement(domain.MovementEntrada, 2, now.Add(-2*time.Hour)),
		movement(domain.MovementSaida, 4, now.AddDate(0, 0, -6)),
		movement(domain.MovementSaida, 9, now.AddDate(0, 0, -7)),
	}

	series := metricsservice.ComputeDailySeries(movements, now, 7, time.UTC)

	require.Len(t, series, 7)
	assert.Equal(t, "2025-03-04", series[0].Date)
	assert.Equal(t, "04/03", series[0].Label)
	assert.Equal(t, 4, series[0].Saidas)
	assert.Equal(t, "2025-03-10", series[6].Date)
	assert.Equal(t, 7, series[6].Entradas)
	assert.Zero(t, series[6].Saidas)
}

func TestComputeDailySeries_UsesLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	late := time.Date(2025, 3, 10, 1, 30, 0, 0, time.UTC) // 09/03 22:30 em BRT

	series := metricsservice.ComputeDailySeries([]domain.Movement{movement(domain.MovementEntrada, 1, late)}, now, 2, loc)

	require.Len(t, series, 2)
	assert.Equal(t, "2025-03-09", series[0].Date)
	assert.Equal(t, 1, series[0].Entradas)
}

func TestComputeDailySeries_NonPositiveDays(t *testing.T) {
	assert.Empty(t, metricsservice.ComputeDailySeries(nil, now, 0, time.UTC))
}

func TestDashboard(t *testing.T) {
	stock := new(MockStockReader)
	movements := new(MockMovementReader)
	svc := metricsservice.NewService(stock, movements, logger.Nop(),
		metricsservice.WithClock(func() time.Time { return now }),
		metricsservice.WithLowStockThreshold(50))

	items := []domain.StockItem{item(45, "15"), item(120, "35")}
	movs := []domain.Movement{movement(domain.MovementSaida, 10, now.Add(-time.Hour))}

	stock.On("ListItems", mock.Anything, domain.StockFilter{}).Return(items)
	stock.On("LowStock", mock.Anything, 50).Return(items[:1])
	movements.On("ListMovements", mock.Anything).Return(movs)
	movements.On("RecentMovements", mock.Anything, metricsservice.RecentCount).Return(movs)

	d := svc.Dashboard(context.Background())

	assert.Equal(t, 165, d.Metrics.TotalItems)
	assert.Equal(t, 10, d.Metrics.Saidas)
	assert.Len(t, d.Series, metricsservice.SeriesDays)
	assert.Equal(t, 10, d.Series[metricsservice.SeriesDays-1].Saidas)
	assert.Equal(t, movs, d.RecentMovements)
	assert.Len(t, d.LowStock, 1)
	stock.AssertExpectations(t)
	movements.AssertExpectations(t)
}
