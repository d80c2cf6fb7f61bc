package requestservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"estoquepecas/internal/domain"
	apperror "estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/logger"
)

// RequestRepository define o contrato que o Fluxo de Solicitações espera da persistência.
type RequestRepository interface {
	FindAll(ctx context.Context) []domain.SolicitacaoPeca
	FindByID(ctx context.Context, id string) (domain.SolicitacaoPeca, bool)
	Insert(ctx context.Context, req domain.SolicitacaoPeca) error
	Update(ctx context.Context, id string, fn func(*domain.SolicitacaoPeca) error) (domain.SolicitacaoPeca, bool, error)
}

// Ledger é o Razão de Movimentações acionado pela aprovação.
type Ledger interface {
	RegisterMovement(ctx context.Context, in domain.NewMovement) (domain.Movement, error)
}

// Service é o Fluxo de Solicitações: pendente -> aprovada | rejeitada.
type Service struct {
	repo   RequestRepository
	ledger Ledger
	logger logger.Logger
	now    func() time.Time
	strict bool
}

// Option configura o Service.
type Option func(*Service)

// WithClock substitui o relógio usado em SolicitacaoPeca.Data.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithStrictTransitions recusa mudança de estado em solicitações já finalizadas.
func WithStrictTransitions(strict bool) Option {
	return func(s *Service) { s.strict = strict }
}

// NewService cria e retorna uma nova instância do Fluxo de Solicitações.
func NewService(repo RequestRepository, ledger Ledger, logger logger.Logger, opts ...Option) *Service {
	s := &Service{repo: repo, ledger: ledger, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListRequests devolve as solicitações na ordem de criação. status vazio não filtra.
func (s *Service) ListRequests(ctx context.Context, status domain.RequestStatus) []domain.SolicitacaoPeca {
	all := s.repo.FindAll(ctx)
	if status == "" {
		return all
	}

	filtered := []domain.SolicitacaoPeca{}
	for _, req := range all {
		if req.Status == status {
			filtered = append(filtered, req)
		}
	}
	return filtered
}

// GetRequest busca uma solicitação pelo ID.
func (s *Service) GetRequest(ctx context.Context, id string) (domain.SolicitacaoPeca, bool) {
	return s.repo.FindByID(ctx, id)
}

// CreateRequest registra uma solicitação no estado pendente.
func (s *Service) CreateRequest(ctx context.Context, in domain.NewSolicitacao) (domain.SolicitacaoPeca, error) {
	s.logger.Debug("Iniciando criação de solicitação no serviço.", map[string]interface{}{"item_id": in.ItemID, "matricula": in.Matricula})

	req := domain.SolicitacaoPeca{
		ID:          domain.NewID(),
		ItemID:      strings.TrimSpace(in.ItemID),
		ItemNome:    strings.TrimSpace(in.ItemNome),
		Quantidade:  in.Quantidade,
		Solicitante: strings.TrimSpace(in.Solicitante),
		Matricula:   strings.TrimSpace(in.Matricula),
		Status:      domain.StatusPendente,
		Observacao:  strings.TrimSpace(in.Observacao),
	}

	if req.ItemID == "" || req.Solicitante == "" || req.Matricula == "" {
		return domain.SolicitacaoPeca{}, apperror.NewValidationError("Preencha todos os campos obrigatórios.")
	}
	if req.Quantidade <= 0 {
		return domain.SolicitacaoPeca{}, apperror.NewValidationError("Quantidade deve ser maior que zero.")
	}
	if req.Quantidade > domain.MaxQuantidade {
		return domain.SolicitacaoPeca{}, apperror.NewValidationError(fmt.Sprintf("Quantidade deve ser no máximo %d.", domain.MaxQuantidade))
	}

	req.Data = s.now().UTC()

	if err := s.repo.Insert(ctx, req); err != nil {
		s.logger.Error("Falha ao gravar solicitação no repositório.", err)
		return domain.SolicitacaoPeca{}, apperror.NewInternalError("Falha interna ao criar solicitação.", err)
	}

	s.logger.Info("Solicitação enviada.", map[string]interface{}{"id": req.ID, "item_id": req.ItemID, "quantidade": req.Quantidade})
	return req, nil
}

// SetStatus aprova ou rejeita uma solicitação. Devolve false quando o ID não existe.
//
// O novo estado é gravado antes do efeito colateral: na aprovação, uma saída
// com a quantidade da solicitação é lançada no razão em seguida. Se o
// lançamento falhar, a solicitação continua aprovada e o erro é devolvido
// junto com true.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.RequestStatus) (bool, error) {
	if !status.IsTerminal() {
		return false, apperror.NewValidationError(fmt.Sprintf("Status inválido: '%s'. Use aprovada ou rejeitada.", status))
	}

	req, found, err := s.repo.Update(ctx, id, func(r *domain.SolicitacaoPeca) error {
		if s.strict && r.Status != domain.StatusPendente {
			return apperror.NewConflictError(fmt.Sprintf("Solicitação %s já está %s.", r.ID, r.Status))
		}
		r.Status = status
		return nil
	})
	if err != nil {
		s.logger.Warn("Mudança de status recusada.", map[string]interface{}{"id": id, "status": status, "error": err.Error()})
		return found, err
	}
	if !found {
		s.logger.Info("Solicitação não encontrada para mudança de status.", map[string]interface{}{"id": id})
		return false, nil
	}

	s.logger.Info("Status da solicitação atualizado.", map[string]interface{}{"id": id, "status": status})

	if status != domain.StatusAprovada {
		return true, nil
	}

	_, err = s.ledger.RegisterMovement(ctx, domain.NewMovement{
		ItemID:      req.ItemID,
		ItemNome:    req.ItemNome,
		Tipo:        domain.MovementSaida,
		Quantidade:  req.Quantidade,
		Responsavel: req.Solicitante,
		Observacao:  approvalNote(req.Observacao),
	})
	if err != nil {
		s.logger.Error("Solicitação aprovada, mas a baixa de estoque falhou.", err)
		return true, apperror.NewInternalError("Solicitação aprovada, mas a baixa de estoque falhou.", err)
	}
	return true, nil
}

func approvalNote(observacao string) string {
	if observacao == "" {
		return "Solicitação aprovada"
	}
	return "Solicitação aprovada - " + observacao
}
