package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estoquepecas/internal/api/response"
	"estoquepecas/internal/domain"
	"estoquepecas/internal/pkg/cache"
	"estoquepecas/internal/pkg/logger"
	"estoquepecas/internal/pkg/middleware"
	"estoquepecas/internal/pkg/token"
)

func echoOperator() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		op, ok := middleware.OperatorFromContext(r.Context())
		if !ok {
			w.Write([]byte("anonimo"))
			return
		}
		w.Write([]byte(op.Nome + "/" + op.Matricula))
	})
}

func TestIdentity_AnonymousPassesThrough(t *testing.T) {
	h := middleware.Identity(token.NewService("s", time.Hour), logger.Nop())(echoOperator())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonimo", rec.Body.String())
}

func TestIdentity_ValidTokenAttachesOperator(t *testing.T) {
	svc := token.NewService("s", time.Hour)
	tok, err := svc.GenerateToken(domain.OperatorProfile{ID: "1", Nome: "Lucas", Matricula: "999"})
	require.NoError(t, err)

	h := middleware.Identity(svc, logger.Nop())(echoOperator())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "Lucas/999", rec.Body.String())
}

func TestIdentity_InvalidTokenIsAnonymous(t *testing.T) {
	h := middleware.Identity(token.NewService("s", time.Hour), logger.Nop())(echoOperator())

	expired, err := token.NewService("s", -time.Minute).GenerateToken(domain.OperatorProfile{ID: "1", Nome: "Lucas", Matricula: "999"})
	require.NoError(t, err)

	for _, header := range []string{"Bearer lixo", "Basic abc", "Bearer ", "Bearer " + expired} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, header)
		assert.Equal(t, "anonimo", rec.Body.String(), header)
	}
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := middleware.RateLimiter(cache.NewMemoryClient(), 2, time.Minute, response.Status(logger.Nop()), logger.Nop())(ok)

	codes := []int{}
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		last = httptest.NewRecorder()
		h.ServeHTTP(last, req)
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.Contains(t, last.Header().Get("Content-Type"), "application/json")

	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(last.Body.Bytes(), &body))
	assert.Equal(t, http.StatusTooManyRequests, body.Code)
	assert.Equal(t, "Too Many Requests", body.Category)
	assert.NotEmpty(t, body.Message)
}
