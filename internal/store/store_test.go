package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estoquepecas/internal/domain"
	apperror "estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/cache"
	"estoquepecas/internal/pkg/logger"
	"estoquepecas/internal/store"
)

type record struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Valor int    `json:"valor"`
}

type failingBackend struct{}

func (failingBackend) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}
func (failingBackend) Set(context.Context, string, []byte) error {
	return errors.New("connection refused")
}

type countingBackend struct {
	store.Backend
	sets int
}

func (b *countingBackend) Set(ctx context.Context, key string, data []byte) error {
	b.sets++
	return b.Backend.Set(ctx, key, data)
}

func newStore(opts ...store.Option) (*store.Store, *cache.MemoryClient) {
	client := cache.NewMemoryClient()
	return store.New(store.NewCacheBackend(client), logger.Nop(), opts...), client
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, _ := newStore(store.WithoutSeed())
	ctx := context.Background()

	want := []record{{ID: "a", Nome: "Cabo", Valor: 1}, {ID: "b", Nome: "Mouse", Valor: 2}, {ID: "c", Nome: "Teclado", Valor: 3}}
	require.NoError(t, store.Save(ctx, s, store.CollectionStock, want))

	got := store.Load[record](ctx, s, store.CollectionStock)
	assert.Equal(t, want, got)
}

func TestLoad_MissingCollectionIsEmpty(t *testing.T) {
	s, _ := newStore(store.WithoutSeed())

	got := store.Load[record](context.Background(), s, store.CollectionRequests)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoad_CorruptJSONFailsClosed(t *testing.T) {
	s, client := newStore(store.WithoutSeed())
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, string(store.CollectionStock), "{not json", 0))

	got := store.Load[record](ctx, s, store.CollectionStock)
	assert.Empty(t, got)
}

func TestLoad_NullDocumentIsEmpty(t *testing.T) {
	s, client := newStore(store.WithoutSeed())
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, string(store.CollectionStock), "null", 0))

	got := store.Load[record](ctx, s, store.CollectionStock)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoad_BackendErrorIsEmpty(t *testing.T) {
	s := store.New(failingBackend{}, logger.Nop())
	ctx := context.Background()

	assert.Empty(t, store.Load[record](ctx, s, store.CollectionStock))
	assert.Error(t, store.Save(ctx, s, store.CollectionStock, []record{{ID: "x"}}))
}

func TestSeed_FirstAccessWritesSampleData(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	s, _ := newStore(store.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	items := store.Load[domain.StockItem](ctx, s, store.CollectionStock)
	require.Len(t, items, 3)
	assert.Equal(t, "PC001", items[0].Codigo)
	assert.Equal(t, 45, items[0].Quantidade)
	assert.Equal(t, "Monitor 24'", items[2].Nome)

	movements := store.Load[domain.Movement](ctx, s, store.CollectionMovements)
	require.Len(t, movements, 2)
	assert.Equal(t, domain.MovementEntrada, movements[0].Tipo)
	assert.True(t, movements[0].Data.Equal(now.Add(-24*time.Hour)))
	assert.Equal(t, domain.MovementSaida, movements[1].Tipo)

	requests := store.Load[domain.SolicitacaoPeca](ctx, s, store.CollectionRequests)
	assert.Empty(t, requests)
}

func TestSeed_OnlyWhenCollectionAbsent(t *testing.T) {
	client := cache.NewMemoryClient()
	ctx := context.Background()
	require.NoError(t, client.Set(ctx, string(store.CollectionStock), "[]", 0))

	backend := &countingBackend{Backend: store.NewCacheBackend(client)}
	s := store.New(backend, logger.Nop())

	assert.Empty(t, store.Load[domain.StockItem](ctx, s, store.CollectionStock))
	store.Load[domain.StockItem](ctx, s, store.CollectionStock)

	// stock já existia: apenas movements e requests são semeadas, e uma única vez.
	assert.Equal(t, 2, backend.sets)
}

func TestSeed_EmptiedCollectionIsNotReseeded(t *testing.T) {
	client := cache.NewMemoryClient()
	ctx := context.Background()

	first := store.New(store.NewCacheBackend(client), logger.Nop())
	require.NoError(t, store.Save(ctx, first, store.CollectionStock, []domain.StockItem{}))

	second := store.New(store.NewCacheBackend(client), logger.Nop())
	assert.Empty(t, store.Load[domain.StockItem](ctx, second, store.CollectionStock))
}

func TestMutate_SavesResult(t *testing.T) {
	s, _ := newStore(store.WithoutSeed())
	ctx := context.Background()

	err := store.Mutate(ctx, s, store.CollectionStock, func(rs []record) ([]record, error) {
		return append(rs, record{ID: "1"}), nil
	})
	require.NoError(t, err)

	assert.Len(t, store.Load[record](ctx, s, store.CollectionStock), 1)
}

func TestMutate_UnchangedSkipsWrite(t *testing.T) {
	client := cache.NewMemoryClient()
	backend := &countingBackend{Backend: store.NewCacheBackend(client)}
	s := store.New(backend, logger.Nop(), store.WithoutSeed())

	err := store.Mutate(context.Background(), s, store.CollectionStock, func(rs []record) ([]record, error) {
		return nil, store.ErrUnchanged
	})
	assert.NoError(t, err)
	assert.Zero(t, backend.sets)
}

func TestMutate_PropagatesError(t *testing.T) {
	s, _ := newStore(store.WithoutSeed())
	boom := errors.New("boom")

	err := store.Mutate(context.Background(), s, store.CollectionStock, func(rs []record) ([]record, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestWithPrefix(t *testing.T) {
	client := cache.NewMemoryClient()
	s := store.New(store.NewCacheBackend(client), logger.Nop(), store.WithoutSeed(), store.WithPrefix("pecas:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, s, store.CollectionMovements, []record{{ID: "1"}}))

	raw, err := client.Get(ctx, "pecas:stock_movements")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","nome":"","valor":0}]`, raw)
}

func TestWithSeeds_ReplacesDefaults(t *testing.T) {
	s, _ := newStore(store.WithSeeds(map[store.Collection]store.SeedFunc{
		store.CollectionStock: func(now time.Time) interface{} {
			return []domain.StockItem{{ID: "9", Nome: "Roteador", Quantidade: 4, DataAtualizacao: now}}
		},
	}))
	ctx := context.Background()

	items := store.Load[domain.StockItem](ctx, s, store.CollectionStock)
	require.Len(t, items, 1)
	assert.Equal(t, "Roteador", items[0].Nome)

	assert.Empty(t, store.Load[domain.Movement](ctx, s, store.CollectionMovements))
}

func TestPostgresBackend_WrapsDriverErrors(t *testing.T) {
	db, err := sqlx.Open("postgres", "postgres://estoque@127.0.0.1:1/estoque?sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.Close())
	backend := store.NewPostgresBackend(db, time.Second)
	ctx := context.Background()

	_, err = backend.Get(ctx, "stock")
	var internal *apperror.InternalError
	require.ErrorAs(t, err, &internal)
	assert.Contains(t, internal.Msg, "(DB)")
	assert.False(t, errors.Is(err, store.ErrNotFound))

	err = backend.Set(ctx, "stock", []byte(`[]`))
	require.ErrorAs(t, err, &internal)
	assert.Contains(t, internal.Msg, "stock")
}
