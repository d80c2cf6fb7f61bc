package router_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	_ "estoquepecas/docs"
)

// TestSwaggerDocMatchesRoutes garante que /swagger descreve exatamente as rotas de /v1.
func TestSwaggerDocMatchesRoutes(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	documented := map[string]bool{}
	for path, ops := range doc.Paths {
		for method := range ops {
			documented[strings.ToUpper(method)+" "+path] = true
		}
	}

	routes, ok := newApp(t).(chi.Routes)
	require.True(t, ok)

	served := map[string]bool{}
	err = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.HasPrefix(route, "/v1/") {
			served[method+" "+strings.TrimSuffix(route, "/")] = true
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, served, documented)
}
