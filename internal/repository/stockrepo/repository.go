package stockrepo

import (
	"context"

	"estoquepecas/internal/domain"
	"estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/logger"
	"estoquepecas/internal/store"
)

// StockRepository dá acesso à coleção stock_items.
type StockRepository struct {
	store  *store.Store
	logger logger.Logger
}

// NewStockRepository cria o repositório sobre o Store compartilhado.
func NewStockRepository(s *store.Store, logger logger.Logger) *StockRepository {
	return &StockRepository{store: s, logger: logger}
}

// FindAll devolve todos os itens na ordem de inserção.
func (r *StockRepository) FindAll(ctx context.Context) []domain.StockItem {
	return store.Load[domain.StockItem](ctx, r.store, store.CollectionStock)
}

// FindByID busca um item pelo ID.
func (r *StockRepository) FindByID(ctx context.Context, id string) (domain.StockItem, bool) {
	for _, item := range r.FindAll(ctx) {
		if item.ID == id {
			return item, true
		}
	}
	return domain.StockItem{}, false
}

// Insert acrescenta o item ao final da coleção.
func (r *StockRepository) Insert(ctx context.Context, item domain.StockItem) error {
	err := store.Mutate(ctx, r.store, store.CollectionStock, func(items []domain.StockItem) ([]domain.StockItem, error) {
		return append(items, item), nil
	})
	if err != nil {
		return errors.NewStoreError(string(store.CollectionStock), err)
	}

	r.logger.Debug("Item gravado na coleção.", map[string]interface{}{"id": item.ID})
	return nil
}

// Update aplica fn ao item com o ID informado e grava a coleção.
// O bool é false quando o item não existe; nesse caso nada é gravado.
func (r *StockRepository) Update(ctx context.Context, id string, fn func(*domain.StockItem)) (domain.StockItem, bool, error) {
	var (
		updated domain.StockItem
		found   bool
	)

	err := store.Mutate(ctx, r.store, store.CollectionStock, func(items []domain.StockItem) ([]domain.StockItem, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			fn(&items[i])
			items[i].ID = id
			updated, found = items[i], true
			return items, nil
		}
		return nil, store.ErrUnchanged
	})
	if err != nil {
		return domain.StockItem{}, false, errors.NewStoreError(string(store.CollectionStock), err)
	}
	return updated, found, nil
}

// Delete remove o item. Referências em movimentações e solicitações são mantidas.
func (r *StockRepository) Delete(ctx context.Context, id string) (bool, error) {
	var removed bool

	err := store.Mutate(ctx, r.store, store.CollectionStock, func(items []domain.StockItem) ([]domain.StockItem, error) {
		kept := items[:0]
		for _, item := range items {
			if item.ID == id {
				removed = true
				continue
			}
			kept = append(kept, item)
		}
		if !removed {
			return nil, store.ErrUnchanged
		}
		return kept, nil
	})
	if err != nil {
		return false, errors.NewStoreError(string(store.CollectionStock), err)
	}
	return removed, nil
}
