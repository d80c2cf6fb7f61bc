package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"estoquepecas/internal/api/metrics"
	"estoquepecas/internal/api/movement"
	"estoquepecas/internal/api/operator"
	"estoquepecas/internal/api/report"
	"estoquepecas/internal/api/request"
	"estoquepecas/internal/api/response"
	"estoquepecas/internal/api/stock"
	"estoquepecas/internal/pkg/cache"
	"estoquepecas/internal/pkg/logger"
	"estoquepecas/internal/pkg/middleware"
)

// Handlers reúne os handlers já montados pela injeção de dependências.
type Handlers struct {
	Stock     *stock.Handler
	Movements *movement.Handler
	Requests  *request.Handler
	Metrics   *metrics.Handler
	Reports   *report.Handler
	Operators *operator.Handler
}

// RateLimit configura o limitador por IP das rotas /v1.
type RateLimit struct {
	MaxRequests int
	Period      time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, tokenSvc middleware.TokenValidator, cacheClient cache.Client, limit RateLimit, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))

	r.Get("/ping", PingHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.RateLimiter(cacheClient, limit.MaxRequests, limit.Period, response.Status(log), log))
		r.Use(middleware.Identity(tokenSvc, log))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Operators.RegisterHandler)
			r.Post("/login", h.Operators.LoginHandler)
		})

		r.Route("/stock", func(r chi.Router) {
			r.Get("/", h.Stock.ListItemsHandler)
			r.Post("/", h.Stock.CreateItemHandler)
			r.Get("/low", h.Stock.LowStockHandler)
			r.Get("/{id}", h.Stock.GetItemHandler)
			r.Put("/{id}", h.Stock.UpdateItemHandler)
			r.Delete("/{id}", h.Stock.DeleteItemHandler)
		})

		r.Route("/movements", func(r chi.Router) {
			r.Get("/", h.Movements.ListMovementsHandler)
			r.Post("/", h.Movements.RegisterMovementHandler)
			r.Get("/recent", h.Movements.RecentMovementsHandler)
		})

		r.Route("/requests", func(r chi.Router) {
			r.Get("/", h.Requests.ListRequestsHandler)
			r.Post("/", h.Requests.CreateRequestHandler)
			r.Patch("/{id}/status", h.Requests.SetStatusHandler)
		})

		r.Get("/metrics", h.Metrics.GetMetricsHandler)
		r.Get("/metrics/daily", h.Metrics.DailySeriesHandler)
		r.Get("/dashboard", h.Metrics.DashboardHandler)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/movements", h.Reports.ListHandler)
			r.Get("/movements.csv", h.Reports.ExportCSVHandler)
			r.Get("/movements.xlsx", h.Reports.ExportXLSXHandler)
		})
	})

	return r
}

// PingHandler é o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
