package operator

import (
	"context"
	"net/http"

	"estoquepecas/internal/api/response"
	"estoquepecas/internal/domain"
	"estoquepecas/internal/pkg/logger"
)

// OperatorService define o cadastro e o login de operadores.
type OperatorService interface {
	Register(ctx context.Context, reg domain.OperatorRegistration) (domain.OperatorProfile, error)
	Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
}

// Handler expõe as rotas de autenticação.
type Handler struct {
	Service OperatorService
	Logger  logger.Logger
}

// NewHandler cria o Handler de operadores.
func NewHandler(svc OperatorService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// RegisterHandler godoc
// @Summary Cadastra um operador
// @Tags auth
// @Accept json
// @Produce json
// @Param operator body domain.OperatorRegistration true "Dados do operador"
// @Success 201 {object} domain.OperatorProfile
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /v1/auth/register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var reg domain.OperatorRegistration
	if err := response.Decode(r, &reg); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	profile, err := h.Service.Register(r.Context(), reg)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusCreated, profile)
}

// LoginHandler godoc
// @Summary Autentica um operador
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "Credenciais"
// @Success 200 {object} domain.LoginResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /v1/auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	resp, err := h.Service.Login(r.Context(), req)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, resp)
}
