package movementservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"estoquepecas/internal/domain"
	apperror "estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/logger"
)

// defaultResponsavel é usado quando nenhum operador é informado.
const defaultResponsavel = "Usuário"

// MovementRepository define o contrato que o Razão espera da camada de persistência.
type MovementRepository interface {
	FindAll(ctx context.Context) []domain.Movement
	Append(ctx context.Context, m domain.Movement) error
}

// Catalog é a parte do Catálogo de Estoque que o Razão movimenta.
type Catalog interface {
	AdjustQuantity(ctx context.Context, id string, delta int) (domain.StockItem, bool, error)
}

// Service é o Razão de Movimentações: só acrescenta, nunca altera nem remove.
type Service struct {
	repo        MovementRepository
	catalog     Catalog
	logger      logger.Logger
	now         func() time.Time
	strictItems bool
}

// Option configura o Service.
type Option func(*Service)

// WithClock substitui o relógio usado em Movement.Data.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithStrictItems recusa movimentações para itens inexistentes.
func WithStrictItems(strict bool) Option {
	return func(s *Service) { s.strictItems = strict }
}

// NewService cria e retorna uma nova instância do Razão.
func NewService(repo MovementRepository, catalog Catalog, logger logger.Logger, opts ...Option) *Service {
	s := &Service{repo: repo, catalog: catalog, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListMovements devolve o razão da movimentação mais antiga para a mais recente.
func (s *Service) ListMovements(ctx context.Context) []domain.Movement {
	return s.repo.FindAll(ctx)
}

// RecentMovements devolve até n movimentações, da mais recente para a mais antiga.
func (s *Service) RecentMovements(ctx context.Context, n int) []domain.Movement {
	all := s.repo.FindAll(ctx)
	if n <= 0 || n > len(all) {
		n = len(all)
	}

	recent := make([]domain.Movement, 0, n)
	for i := len(all) - 1; i >= len(all)-n; i-- {
		recent = append(recent, all[i])
	}
	return recent
}

// RegisterMovement lança uma movimentação.
//
// A ordem das gravações é fixa: primeiro o estoque do item, depois o razão.
// Se a segunda gravação falhar o estoque já foi alterado e o erro informa isso.
// Um item inexistente não recebe efeito de estoque, mas a movimentação é
// registrada (a menos que WithStrictItems esteja ligado).
func (s *Service) RegisterMovement(ctx context.Context, in domain.NewMovement) (domain.Movement, error) {
	s.logger.Debug("Iniciando lançamento de movimentação no serviço.", map[string]interface{}{
		"item_id":    in.ItemID,
		"tipo":       in.Tipo,
		"quantidade": in.Quantidade,
	})

	if err := validateMovement(in); err != nil {
		s.logger.Warn("Movimentação rejeitada.", map[string]interface{}{"item_id": in.ItemID, "error": err.Error()})
		return domain.Movement{}, err
	}

	item, found, err := s.catalog.AdjustQuantity(ctx, in.ItemID, in.Tipo.Delta(in.Quantidade))
	if err != nil {
		return domain.Movement{}, err
	}
	if !found {
		if s.strictItems {
			return domain.Movement{}, apperror.NewNotFoundError(fmt.Sprintf("Item com ID %s não encontrado.", in.ItemID))
		}
		s.logger.Warn("Movimentação para item inexistente; estoque não alterado.", map[string]interface{}{"item_id": in.ItemID})
	}

	itemNome := strings.TrimSpace(in.ItemNome)
	if itemNome == "" && found {
		itemNome = item.Nome
	}
	responsavel := strings.TrimSpace(in.Responsavel)
	if responsavel == "" {
		responsavel = defaultResponsavel
	}

	m := domain.Movement{
		ID:          domain.NewID(),
		ItemID:      in.ItemID,
		ItemNome:    itemNome,
		Tipo:        in.Tipo,
		Quantidade:  in.Quantidade,
		Data:        s.now().UTC(),
		Responsavel: responsavel,
		Observacao:  strings.TrimSpace(in.Observacao),
	}

	if err := s.repo.Append(ctx, m); err != nil {
		s.logger.Error("Estoque ajustado, mas a movimentação não foi registrada.", err)
		return domain.Movement{}, apperror.NewInternalError("Estoque ajustado, mas a movimentação não foi registrada.", err)
	}

	s.logger.Info("Movimentação registrada com sucesso.", map[string]interface{}{
		"id":         m.ID,
		"item_id":    m.ItemID,
		"tipo":       m.Tipo,
		"quantidade": m.Quantidade,
		"estoque":    item.Quantidade,
	})
	return m, nil
}

func validateMovement(in domain.NewMovement) error {
	if strings.TrimSpace(in.ItemID) == "" {
		return apperror.NewValidationError("Preencha todos os campos obrigatórios.")
	}
	if !in.Tipo.Valid() {
		return apperror.NewValidationError(fmt.Sprintf("Tipo de movimentação inválido: '%s'.", in.Tipo))
	}
	if in.Quantidade <= 0 {
		return apperror.NewValidationError("Quantidade deve ser maior que zero.")
	}
	if in.Quantidade > domain.MaxQuantidade {
		return apperror.NewValidationError(fmt.Sprintf("Quantidade deve ser no máximo %d.", domain.MaxQuantidade))
	}
	return nil
}
