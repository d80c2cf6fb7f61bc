package stockservice_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estoquepecas/internal/domain"
	apperror "estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/cache"
	"estoquepecas/internal/pkg/logger"
	"estoquepecas/internal/repository/stockrepo"
	"estoquepecas/internal/service/stockservice"
	"estoquepecas/internal/store"
)

// MockStockRepository é uma implementação mock da interface StockRepository
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) FindAll(ctx context.Context) []domain.StockItem {
	args := m.Called(ctx)
	return args.Get(0).([]domain.StockItem)
}

func (m *MockStockRepository) FindByID(ctx context.Context, id string) (domain.StockItem, bool) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.StockItem), args.Bool(1)
}

func (m *MockStockRepository) Insert(ctx context.Context, item domain.StockItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockStockRepository) Update(ctx context.Context, id string, fn func(*domain.StockItem)) (domain.StockItem, bool, error) {
	args := m.Called(ctx, id, fn)
	return args.Get(0).(domain.StockItem), args.Bool(1), args.Error(2)
}

func (m *MockStockRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var fixedNow = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// newSeededService monta o serviço sobre o Store real com os dados iniciais.
func newSeededService(t *testing.T) *stockservice.Service {
	t.Helper()
	s := store.New(store.NewCacheBackend(cache.NewMemoryClient()), logger.Nop(), store.WithClock(clock))
	repo := stockrepo.NewStockRepository(s, logger.Nop())
	return stockservice.NewService(repo, logger.Nop(), stockservice.WithClock(clock))
}

func validItem() domain.NewStockItem {
	return domain.NewStockItem{
		Codigo:        "PC010",
		Nome:          "Teclado",
		Categoria:     "Periféricos",
		Quantidade:    10,
		Localizacao:   "B2-P2",
		ValorUnitario: decimal.RequireFromString("89.90"),
	}
}

// TestCreateItem_Success testa o cadastro com unidade padrão e carimbo de data.
func TestCreateItem_Success(t *testing.T) {
	mockRepo := new(MockStockRepository)
	svc := stockservice.NewService(mockRepo, logger.NewLogger("debug"), stockservice.WithClock(clock))

	mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(item domain.StockItem) bool {
		return item.Codigo == "PC010" && item.Unidade == "UN" && item.ID != ""
	})).Return(nil)

	item, err := svc.CreateItem(context.Background(), validItem())

	assert.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "UN", item.Unidade)
	assert.Equal(t, fixedNow, item.DataAtualizacao)
	mockRepo.AssertExpectations(t)
}

// TestCreateItem_Fail_Validation cobre campos obrigatórios e valores negativos.
func TestCreateItem_Fail_Validation(t *testing.T) {
	cases := map[string]func(*domain.NewStockItem){
		"sem nome":            func(in *domain.NewStockItem) { in.Nome = "  " },
		"sem localizacao":     func(in *domain.NewStockItem) { in.Localizacao = "" },
		"quantidade negativa": func(in *domain.NewStockItem) { in.Quantidade = -1 },
		"valor negativo":      func(in *domain.NewStockItem) { in.ValorUnitario = decimal.NewFromInt(-5) },
		"acima do limite":     func(in *domain.NewStockItem) { in.Quantidade = domain.MaxQuantidade + 1 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			mockRepo := new(MockStockRepository)
			svc := stockservice.NewService(mockRepo, logger.Nop())

			in := validItem()
			mutate(&in)
			_, err := svc.CreateItem(context.Background(), in)

			assert.True(t, apperror.IsValidation(err))
			mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

// TestCreateItem_Fail_RepoError testa a falha de gravação.
func TestCreateItem_Fail_RepoError(t *testing.T) {
	mockRepo := new(MockStockRepository)
	svc := stockservice.NewService(mockRepo, logger.Nop())

	mockRepo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := svc.CreateItem(context.Background(), validItem())

	var internal *apperror.InternalError
	assert.ErrorAs(t, err, &internal)
	mockRepo.AssertExpectations(t)
}

func TestListItems_Search(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	assert.Len(t, svc.ListItems(ctx, domain.StockFilter{}), 3)

	byName := svc.ListItems(ctx, domain.StockFilter{Search: "mouse"})
	require.Len(t, byName, 1)
	assert.Equal(t, "2", byName[0].ID)

	byCode := svc.ListItems(ctx, domain.StockFilter{Search: "pc003"})
	require.Len(t, byCode, 1)
	assert.Equal(t, "3", byCode[0].ID)

	assert.Empty(t, svc.ListItems(ctx, domain.StockFilter{Search: "impressora"}))
}

func TestLowStock(t *testing.T) {
	svc := newSeededService(t)

	low := svc.LowStock(context.Background(), 50)

	require.Len(t, low, 1)
	assert.Equal(t, "Cabo de Rede", low[0].Nome)
}

func TestAdjustQuantity_ClampsAtZero(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	item, found, err := svc.AdjustQuantity(ctx, "1", -100)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 0, item.Quantidade)

	stored, _ := svc.GetItem(ctx, "1")
	assert.Equal(t, 0, stored.Quantidade)
}

func TestAdjustQuantity_RefusesAboveLimit(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()
	before, _ := svc.GetItem(ctx, "1")

	for _, delta := range []int{domain.MaxQuantidade, math.MaxInt} {
		_, found, err := svc.AdjustQuantity(ctx, "1", delta)

		assert.True(t, found)
		assert.True(t, apperror.IsValidation(err))
	}

	stored, _ := svc.GetItem(ctx, "1")
	assert.Equal(t, 45, stored.Quantidade)
	assert.Equal(t, before, stored)
}

func TestAdjustQuantity_ReachesLimit(t *testing.T) {
	svc := newSeededService(t)

	item, _, err := svc.AdjustQuantity(context.Background(), "1", domain.MaxQuantidade-45)

	require.NoError(t, err)
	assert.Equal(t, domain.MaxQuantidade, item.Quantidade)
}

func TestAdjustQuantity_UnknownItem(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()
	before := svc.ListItems(ctx, domain.StockFilter{})

	_, found, err := svc.AdjustQuantity(ctx, "nao-existe", 5)

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, before, svc.ListItems(ctx, domain.StockFilter{}))
}

func TestUpdateItem_AppliesPatchAndKeepsID(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	nome := "Mouse Óptico"
	item, found, err := svc.UpdateItem(ctx, "2", domain.StockItemPatch{Nome: &nome})

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "2", item.ID)
	assert.Equal(t, "Mouse Óptico", item.Nome)
	assert.Equal(t, 120, item.Quantidade)
}

func TestUpdateItem_EmptyPatch(t *testing.T) {
	svc := newSeededService(t)

	_, _, err := svc.UpdateItem(context.Background(), "2", domain.StockItemPatch{})

	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateItem_UnknownItem(t *testing.T) {
	svc := newSeededService(t)

	qty := 3
	_, found, err := svc.UpdateItem(context.Background(), "nao-existe", domain.StockItemPatch{Quantidade: &qty})

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteItem(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	removed, err := svc.DeleteItem(ctx, "3")
	require.NoError(t, err)
	assert.True(t, removed)

	_, ok := svc.GetItem(ctx, "3")
	assert.False(t, ok)

	removed, err = svc.DeleteItem(ctx, "3")
	assert.NoError(t, err)
	assert.False(t, removed)
}
