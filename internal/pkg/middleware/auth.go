package middleware

import (
	"context"
	"net/http"
	"strings"

	"estoquepecas/internal/pkg/logger"
	"estoquepecas/internal/pkg/token"
)

type contextKey int

const operatorKey contextKey = iota

// Operator é a identidade anexada ao contexto quando a requisição traz um token válido.
type Operator struct {
	ID        string
	Nome      string
	Matricula string
}

// TokenValidator define o contrato de validação necessário para o middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// Identity anexa o operador do token "Authorization: Bearer" ao contexto.
// Nenhuma rota exige login: sem header, ou com token malformado ou expirado,
// a requisição segue anônima.
func Identity(tokenSvc TokenValidator, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				log.Debug("Header de autorização malformado; seguindo como anônimo.", map[string]interface{}{"path": r.URL.Path})
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				log.Debug("Token inválido ou expirado; seguindo como anônimo.", map[string]interface{}{"path": r.URL.Path, "error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithOperator(r.Context(), Operator{ID: claims.OperatorID, Nome: claims.Nome, Matricula: claims.Matricula})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithOperator devolve um contexto com o operador anexado.
func WithOperator(ctx context.Context, op Operator) context.Context {
	return context.WithValue(ctx, operatorKey, op)
}

// OperatorFromContext extrai o operador anexado por Identity.
func OperatorFromContext(ctx context.Context) (Operator, bool) {
	op, ok := ctx.Value(operatorKey).(Operator)
	return op, ok
}
