package stockservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"estoquepecas/internal/domain"
	apperror "estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/logger"
)

// StockRepository define o contrato que o Catálogo espera da camada de persistência.
type StockRepository interface {
	FindAll(ctx context.Context) []domain.StockItem
	FindByID(ctx context.Context, id string) (domain.StockItem, bool)
	Insert(ctx context.Context, item domain.StockItem) error
	Update(ctx context.Context, id string, fn func(*domain.StockItem)) (domain.StockItem, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Service é o Catálogo de Estoque.
type Service struct {
	repo   StockRepository
	logger logger.Logger
	now    func() time.Time
}

// Option configura o Service.
type Option func(*Service)

// WithClock substitui o relógio usado em DataAtualizacao.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService cria e retorna uma nova instância do Catálogo.
func NewService(repo StockRepository, logger logger.Logger, opts ...Option) *Service {
	s := &Service{repo: repo, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListItems devolve os itens na ordem de inserção, opcionalmente filtrados por
// nome, código ou categoria.
func (s *Service) ListItems(ctx context.Context, filter domain.StockFilter) []domain.StockItem {
	items := s.repo.FindAll(ctx)

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	if term == "" {
		return items
	}

	filtered := make([]domain.StockItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Nome), term) ||
			strings.Contains(strings.ToLower(item.Codigo), term) ||
			strings.Contains(strings.ToLower(item.Categoria), term) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// GetItem busca um item pelo ID.
func (s *Service) GetItem(ctx context.Context, id string) (domain.StockItem, bool) {
	return s.repo.FindByID(ctx, id)
}

// LowStock devolve os itens com quantidade abaixo do limite.
func (s *Service) LowStock(ctx context.Context, threshold int) []domain.StockItem {
	low := []domain.StockItem{}
	for _, item := range s.repo.FindAll(ctx) {
		if item.Quantidade < threshold {
			low = append(low, item)
		}
	}
	return low
}

// CreateItem valida, gera o ID, carimba DataAtualizacao e acrescenta o item ao catálogo.
func (s *Service) CreateItem(ctx context.Context, in domain.NewStockItem) (domain.StockItem, error) {
	s.logger.Debug("Iniciando cadastro de item no serviço.", map[string]interface{}{"codigo": in.Codigo, "nome": in.Nome})

	item := domain.StockItem{
		ID:            domain.NewID(),
		Codigo:        strings.TrimSpace(in.Codigo),
		Nome:          strings.TrimSpace(in.Nome),
		Categoria:     strings.TrimSpace(in.Categoria),
		Quantidade:    in.Quantidade,
		Unidade:       strings.TrimSpace(in.Unidade),
		Localizacao:   strings.TrimSpace(in.Localizacao),
		ValorUnitario: in.ValorUnitario,
	}
	if item.Unidade == "" {
		item.Unidade = "UN"
	}

	if err := validateItem(item); err != nil {
		s.logger.Warn("Cadastro de item rejeitado.", map[string]interface{}{"codigo": in.Codigo, "error": err.Error()})
		return domain.StockItem{}, err
	}

	item.DataAtualizacao = s.now().UTC()

	if err := s.repo.Insert(ctx, item); err != nil {
		s.logger.Error("Falha ao gravar item no repositório.", err)
		return domain.StockItem{}, apperror.NewInternalError("Falha interna ao cadastrar item.", err)
	}

	s.logger.Info("Item cadastrado com sucesso.", map[string]interface{}{"id": item.ID, "codigo": item.Codigo})
	return item, nil
}

// UpdateItem aplica o patch sobre o item e recarimba DataAtualizacao.
// O bool é false quando o ID não existe.
func (s *Service) UpdateItem(ctx context.Context, id string, patch domain.StockItemPatch) (domain.StockItem, bool, error) {
	if patch.IsEmpty() {
		return domain.StockItem{}, false, apperror.NewValidationError("Nenhum campo informado para atualização.")
	}

	current, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return domain.StockItem{}, false, nil
	}
	patch.ApplyTo(&current)
	if err := validateItem(current); err != nil {
		s.logger.Warn("Atualização de item rejeitada.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.StockItem{}, true, err
	}

	now := s.now().UTC()
	updated, found, err := s.repo.Update(ctx, id, func(item *domain.StockItem) {
		patch.ApplyTo(item)
		item.DataAtualizacao = now
	})
	if err != nil {
		s.logger.Error("Falha ao atualizar item no repositório.", err)
		return domain.StockItem{}, false, apperror.NewInternalError("Falha interna ao atualizar item.", err)
	}
	if !found {
		return domain.StockItem{}, false, nil
	}

	s.logger.Info("Item atualizado com sucesso.", map[string]interface{}{"id": id})
	return updated, true, nil
}

// AdjustQuantity soma delta à quantidade do item, limitando o resultado a zero,
// e recarimba DataAtualizacao. O bool é false quando o item não existe.
// Um acréscimo que ultrapassaria domain.MaxQuantidade é recusado sem alterar o item.
func (s *Service) AdjustQuantity(ctx context.Context, id string, delta int) (domain.StockItem, bool, error) {
	now := s.now().UTC()
	exceeded := false
	updated, found, err := s.repo.Update(ctx, id, func(item *domain.StockItem) {
		if delta > 0 && item.Quantidade > domain.MaxQuantidade-delta {
			exceeded = true
			return
		}
		item.Quantidade = max(0, item.Quantidade+delta)
		item.DataAtualizacao = now
	})
	if err != nil {
		s.logger.Error("Falha ao ajustar quantidade no repositório.", err)
		return domain.StockItem{}, false, apperror.NewInternalError("Falha interna ao ajustar estoque.", err)
	}
	if exceeded {
		s.logger.Warn("Ajuste de estoque recusado: limite excedido.", map[string]interface{}{"id": id, "delta": delta, "quantidade": updated.Quantidade})
		return updated, true, apperror.NewValidationError(fmt.Sprintf("Quantidade em estoque não pode passar de %d.", domain.MaxQuantidade))
	}
	if found {
		s.logger.Debug("Quantidade ajustada.", map[string]interface{}{"id": id, "delta": delta, "quantidade": updated.Quantidade})
	}
	return updated, found, nil
}

// DeleteItem remove o item. Não há cascata para movimentações e solicitações.
func (s *Service) DeleteItem(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao remover item no repositório.", err)
		return false, apperror.NewInternalError("Falha interna ao remover item.", err)
	}
	if removed {
		s.logger.Info("Item removido do estoque.", map[string]interface{}{"id": id})
	}
	return removed, nil
}

func validateItem(item domain.StockItem) error {
	if item.Codigo == "" || item.Nome == "" || item.Categoria == "" || item.Localizacao == "" {
		return apperror.NewValidationError("Preencha todos os campos obrigatórios (código, nome, categoria e localização).")
	}
	if item.Quantidade < 0 || item.ValorUnitario.IsNegative() {
		return apperror.NewValidationError(fmt.Sprintf("Valores devem ser positivos (quantidade %d, valor %s).", item.Quantidade, item.ValorUnitario.String()))
	}
	if item.Quantidade > domain.MaxQuantidade {
		return apperror.NewValidationError(fmt.Sprintf("Quantidade deve ser no máximo %d.", domain.MaxQuantidade))
	}
	return nil
}
