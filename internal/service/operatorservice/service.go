package operatorservice

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"estoquepecas/internal/domain"
	apperror "estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/logger"
)

const minPasswordLen = 6

// OperatorRepository define o contrato de persistência dos operadores.
type OperatorRepository interface {
	Save(ctx context.Context, op domain.Operator) (domain.Operator, error)
	FindByEmail(ctx context.Context, email string) (domain.Operator, bool)
}

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(op domain.OperatorProfile) (string, error)
}

// Service cadastra operadores e emite o token de sessão. O login é cosmético:
// ele só identifica quem lança movimentações e solicitações.
type Service struct {
	repo     OperatorRepository
	tokenSvc TokenService
	logger   logger.Logger
	cost     int
}

// NewService cria uma nova instância do serviço de operadores.
func NewService(repo OperatorRepository, tokenSvc TokenService, logger logger.Logger) *Service {
	return &Service{repo: repo, tokenSvc: tokenSvc, logger: logger, cost: bcrypt.DefaultCost}
}

// Register cadastra um operador com a senha em hash bcrypt.
func (s *Service) Register(ctx context.Context, reg domain.OperatorRegistration) (domain.OperatorProfile, error) {
	nome := strings.TrimSpace(reg.Nome)
	email := strings.TrimSpace(reg.Email)
	matricula := strings.TrimSpace(reg.Matricula)

	if nome == "" || email == "" || reg.Senha == "" || matricula == "" {
		return domain.OperatorProfile{}, apperror.NewValidationError("Preencha todos os campos.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.OperatorProfile{}, apperror.NewValidationError("Email inválido.")
	}
	if len(reg.Senha) < minPasswordLen {
		return domain.OperatorProfile{}, apperror.NewValidationError("A senha deve ter no mínimo 6 caracteres.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Senha), s.cost)
	if err != nil {
		return domain.OperatorProfile{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	op, err := s.repo.Save(ctx, domain.Operator{
		ID:           domain.NewID(),
		Nome:         nome,
		Email:        email,
		Matricula:    matricula,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return domain.OperatorProfile{}, err
	}

	return op.Profile(), nil
}

// Login confere a senha e devolve o token com nome e matrícula do operador.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Senha == "" {
		return domain.LoginResponse{}, apperror.NewValidationError("Preencha todos os campos.")
	}

	op, found := s.repo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if !found {
		return domain.LoginResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(req.Senha)); err != nil {
		return domain.LoginResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	tokenString, err := s.tokenSvc.GenerateToken(op.Profile())
	if err != nil {
		return domain.LoginResponse{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Operador autenticado.", map[string]interface{}{"id": op.ID, "matricula": op.Matricula})
	return domain.LoginResponse{Token: tokenString, Operator: op.Profile()}, nil
}
