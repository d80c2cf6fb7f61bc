package requestrepo

import (
	"context"

	"estoquepecas/internal/domain"
	"estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/logger"
	"estoquepecas/internal/store"
)

// RequestRepository dá acesso à coleção stock_requests.
type RequestRepository struct {
	store  *store.Store
	logger logger.Logger
}

// NewRequestRepository cria o repositório sobre o Store compartilhado.
func NewRequestRepository(s *store.Store, logger logger.Logger) *RequestRepository {
	return &RequestRepository{store: s, logger: logger}
}

// FindAll devolve as solicitações na ordem de criação.
func (r *RequestRepository) FindAll(ctx context.Context) []domain.SolicitacaoPeca {
	return store.Load[domain.SolicitacaoPeca](ctx, r.store, store.CollectionRequests)
}

// FindByID busca uma solicitação pelo ID.
func (r *RequestRepository) FindByID(ctx context.Context, id string) (domain.SolicitacaoPeca, bool) {
	for _, req := range r.FindAll(ctx) {
		if req.ID == id {
			return req, true
		}
	}
	return domain.SolicitacaoPeca{}, false
}

// Insert acrescenta a solicitação.
func (r *RequestRepository) Insert(ctx context.Context, req domain.SolicitacaoPeca) error {
	err := store.Mutate(ctx, r.store, store.CollectionRequests, func(reqs []domain.SolicitacaoPeca) ([]domain.SolicitacaoPeca, error) {
		return append(reqs, req), nil
	})
	if err != nil {
		return errors.NewStoreError(string(store.CollectionRequests), err)
	}
	return nil
}

// Update aplica fn à solicitação e grava a coleção. Um erro de fn é devolvido
// sem gravar; o bool é false quando o ID não existe.
func (r *RequestRepository) Update(ctx context.Context, id string, fn func(*domain.SolicitacaoPeca) error) (domain.SolicitacaoPeca, bool, error) {
	var (
		updated domain.SolicitacaoPeca
		found   bool
		fnErr   error
	)

	err := store.Mutate(ctx, r.store, store.CollectionRequests, func(reqs []domain.SolicitacaoPeca) ([]domain.SolicitacaoPeca, error) {
		for i := range reqs {
			if reqs[i].ID != id {
				continue
			}
			found = true
			if fnErr = fn(&reqs[i]); fnErr != nil {
				return nil, fnErr
			}
			reqs[i].ID = id
			updated = reqs[i]
			return reqs, nil
		}
		return nil, store.ErrUnchanged
	})
	if fnErr != nil {
		return domain.SolicitacaoPeca{}, found, fnErr
	}
	if err != nil {
		return domain.SolicitacaoPeca{}, false, errors.NewStoreError(string(store.CollectionRequests), err)
	}
	return updated, found, nil
}
