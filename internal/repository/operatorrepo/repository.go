package operatorrepo

import (
	"context"
	"fmt"
	"strings"

	"estoquepecas/internal/domain"
	"estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/logger"
	"estoquepecas/internal/store"
)

// OperatorRepository dá acesso à coleção stock_operators.
type OperatorRepository struct {
	store  *store.Store
	logger logger.Logger
}

// NewOperatorRepository cria o repositório sobre o Store compartilhado.
func NewOperatorRepository(s *store.Store, logger logger.Logger) *OperatorRepository {
	return &OperatorRepository{store: s, logger: logger}
}

// FindByEmail busca um operador pelo e-mail, sem diferenciar maiúsculas.
func (r *OperatorRepository) FindByEmail(ctx context.Context, email string) (domain.Operator, bool) {
	for _, op := range store.Load[domain.Operator](ctx, r.store, store.CollectionOperators) {
		if strings.EqualFold(op.Email, email) {
			return op, true
		}
	}
	return domain.Operator{}, false
}

// Save grava um novo operador. E-mail repetido resulta em ConflictError.
func (r *OperatorRepository) Save(ctx context.Context, op domain.Operator) (domain.Operator, error) {
	var conflict error

	err := store.Mutate(ctx, r.store, store.CollectionOperators, func(ops []domain.Operator) ([]domain.Operator, error) {
		for _, existing := range ops {
			if strings.EqualFold(existing.Email, op.Email) {
				conflict = errors.NewConflictError(fmt.Sprintf("O email '%s' já está em uso.", op.Email))
				return nil, conflict
			}
		}
		return append(ops, op), nil
	})
	if conflict != nil {
		return domain.Operator{}, conflict
	}
	if err != nil {
		return domain.Operator{}, errors.NewStoreError(string(store.CollectionOperators), err)
	}

	r.logger.Info("Operador cadastrado.", map[string]interface{}{"id": op.ID, "matricula": op.Matricula})
	return op, nil
}
