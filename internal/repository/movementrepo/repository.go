package movementrepo

import (
	"context"

	"estoquepecas/internal/domain"
	"estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/logger"
	"estoquepecas/internal/store"
)

// MovementRepository dá acesso à coleção stock_movements. Só há leitura e acréscimo.
type MovementRepository struct {
	store  *store.Store
	logger logger.Logger
}

// NewMovementRepository cria o repositório sobre o Store compartilhado.
func NewMovementRepository(s *store.Store, logger logger.Logger) *MovementRepository {
	return &MovementRepository{store: s, logger: logger}
}

// FindAll devolve as movimentações da mais antiga para a mais recente.
func (r *MovementRepository) FindAll(ctx context.Context) []domain.Movement {
	return store.Load[domain.Movement](ctx, r.store, store.CollectionMovements)
}

// Append acrescenta a movimentação ao final do razão.
func (r *MovementRepository) Append(ctx context.Context, m domain.Movement) error {
	err := store.Mutate(ctx, r.store, store.CollectionMovements, func(ms []domain.Movement) ([]domain.Movement, error) {
		return append(ms, m), nil
	})
	if err != nil {
		return errors.NewStoreError(string(store.CollectionMovements), err)
	}

	r.logger.Debug("Movimentação gravada no razão.", map[string]interface{}{"id": m.ID, "item_id": m.ItemID})
	return nil
}
