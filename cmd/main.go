package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"estoquepecas/config"
	_ "estoquepecas/docs" // registra a especificação servida em /swagger
	"estoquepecas/internal/pkg/cache"
	"estoquepecas/internal/pkg/database"
	"estoquepecas/internal/pkg/logger"
	"estoquepecas/internal/pkg/token"
	"estoquepecas/internal/store"

	// Camadas para Injeção de Dependências
	"estoquepecas/internal/api/metrics"
	"estoquepecas/internal/api/movement"
	"estoquepecas/internal/api/operator"
	"estoquepecas/internal/api/report"
	"estoquepecas/internal/api/request"
	"estoquepecas/internal/api/router"
	"estoquepecas/internal/api/stock"
	"estoquepecas/internal/repository/movementrepo"
	"estoquepecas/internal/repository/operatorrepo"
	"estoquepecas/internal/repository/requestrepo"
	"estoquepecas/internal/repository/stockrepo"
	"estoquepecas/internal/service/metricsservice"
	"estoquepecas/internal/service/movementservice"
	"estoquepecas/internal/service/operatorservice"
	"estoquepecas/internal/service/reportservice"
	"estoquepecas/internal/service/requestservice"
	"estoquepecas/internal/service/stockservice"
)

// @title Estoque de Peças API
// @version 1.0
// @description Controle de estoque, movimentações e solicitações de peças.
// @BasePath /
func main() {
	log.Println("⚡ Inicializando serviço de estoque de peças...")
	if err := godotenv.Load(); err != nil {
		// As variáveis podem vir do ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{"store_backend": cfg.StoreBackend, "strict_workflow": cfg.StrictWorkflow})

	loc := cfg.Location()

	// 1. Infraestrutura: backend das coleções e cliente do rate limiter
	var (
		backend     store.Backend
		limiterKV   cache.Client
		cleanupFunc []func() error
	)

	switch cfg.StoreBackend {
	case config.BackendRedis:
		redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			log.Fatal("Falha ao conectar ao Redis.", err)
		}
		cleanupFunc = append(cleanupFunc, redisClient.Close)
		log.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
		backend = store.NewCacheBackend(redisClient)
		limiterKV = redisClient

	case config.BackendPostgres:
		db, err := database.NewPostgresSQLX(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Falha ao conectar ao banco de dados.", err)
		}
		cleanupFunc = append(cleanupFunc, db.Close)
		log.Info("Conexão PostgreSQL estabelecida.", nil)

		if cfg.AutoMigrate {
			migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
			err := database.Migrate(migrateCtx, db.DB, log, "up")
			cancel()
			if err != nil {
				log.Fatal("Falha ao aplicar migrações.", err)
			}
		}
		backend = store.NewPostgresBackend(db, cfg.DBTimeout)

		// O Redis é opcional aqui: sem ele o rate limiter fica em memória.
		if redisClient, err := cache.NewRedisClient(cfg.RedisAddr); err == nil {
			cleanupFunc = append(cleanupFunc, redisClient.Close)
			limiterKV = redisClient
		} else {
			log.Warn("Redis indisponível; rate limiter em memória.", map[string]interface{}{"error": err.Error()})
			limiterKV = cache.NewMemoryClient()
		}

	default:
		mem := cache.NewMemoryClient()
		backend = store.NewCacheBackend(mem)
		limiterKV = mem
		log.Warn("Armazenamento em memória: os dados se perdem ao reiniciar.", nil)
	}
	defer func() {
		for _, closeFn := range cleanupFunc {
			if err := closeFn(); err != nil {
				log.Error("Falha ao liberar recurso.", err)
			}
		}
	}()

	st := store.New(backend, log, store.WithPrefix(cfg.StoreKeyPrefix))

	// 2. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	stockRepo := stockrepo.NewStockRepository(st, log)
	movementRepo := movementrepo.NewMovementRepository(st, log)
	requestRepo := requestrepo.NewRequestRepository(st, log)
	operatorRepo := operatorrepo.NewOperatorRepository(st, log)
	log.Debug("Repositórios inicializados.", nil)

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)

	stockSvc := stockservice.NewService(stockRepo, log)
	movementSvc := movementservice.NewService(movementRepo, stockSvc, log,
		movementservice.WithStrictItems(cfg.StrictWorkflow))
	requestSvc := requestservice.NewService(requestRepo, movementSvc, log,
		requestservice.WithStrictTransitions(cfg.StrictWorkflow))
	metricsSvc := metricsservice.NewService(stockSvc, movementSvc, log,
		metricsservice.WithLocation(loc),
		metricsservice.WithLowStockThreshold(cfg.LowStockThreshold))
	reportSvc := reportservice.NewService(movementSvc, log, reportservice.WithLocation(loc))
	operatorSvc := operatorservice.NewService(operatorRepo, tokenSvc, log)
	log.Debug("Serviços inicializados.", nil)

	handlers := router.Handlers{
		Stock:     stock.NewHandler(stockSvc, log, cfg.LowStockThreshold),
		Movements: movement.NewHandler(movementSvc, stockSvc, log),
		Requests:  request.NewHandler(requestSvc, stockSvc, log),
		Metrics:   metrics.NewHandler(metricsSvc, log),
		Reports:   report.NewHandler(reportSvc, log),
		Operators: operator.NewHandler(operatorSvc, log),
	}

	// 3. Roteador e Servidor
	r := router.NewRouter(handlers, tokenSvc, limiterKV,
		router.RateLimit{MaxRequests: cfg.RateLimitMaxRequests, Period: cfg.RateLimitPeriod}, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 70 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 4. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
