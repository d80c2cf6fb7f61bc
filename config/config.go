package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Backends de armazenamento aceitos em STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

const devJWTSecret = "dev-secret-change-me"

// Config armazena todas as configurações do serviço de estoque.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Armazenamento das coleções
	StoreBackend   string
	StoreKeyPrefix string

	// Banco de Dados (PostgreSQL), exigido apenas com STORE_BACKEND=postgres
	DatabaseURL string
	DBTimeout   time.Duration
	AutoMigrate bool

	// Cache (Redis)
	RedisAddr string

	// Segurança (JWT)
	JWTSecretKey string
	TokenExpiry  time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Regras de negócio
	LowStockThreshold int
	StrictWorkflow    bool
	ReportTimezone    string
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Armazenamento
		StoreBackend:   strings.ToLower(getEnv("STORE_BACKEND", BackendMemory)),
		StoreKeyPrefix: getEnv("STORE_KEY_PREFIX", ""),

		// 3. Banco de Dados
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBTimeout:   getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,
		AutoMigrate: getBoolEnv("DB_AUTO_MIGRATE", true),

		// 4. Cache
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		// 5. Segurança
		JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
		TokenExpiry:  getDurationEnv("JWT_EXPIRY_MIN", 480) * time.Minute,

		// 6. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,

		// 7. Regras de negócio
		LowStockThreshold: getIntEnv("LOW_STOCK_THRESHOLD", 20),
		StrictWorkflow:    getBoolEnv("STRICT_WORKFLOW", false),
		ReportTimezone:    getEnv("REPORT_TIMEZONE", "America/Sao_Paulo"),
	}

	if cfg.StoreBackend == "" {
		cfg.StoreBackend = BackendMemory
	}

	switch cfg.StoreBackend {
	case BackendMemory, BackendRedis:
	case BackendPostgres:
		// Sem credenciais de DB a aplicação não inicia.
		cfg.DatabaseURL = mustGetEnv("DATABASE_URL")
	default:
		log.Fatalf("❌ Erro de Configuração: STORE_BACKEND '%s' inválido (use memory, redis ou postgres).", cfg.StoreBackend)
	}

	secret, err := resolveJWTSecret(cfg.Environment, cfg.JWTSecretKey)
	if err != nil {
		log.Fatalf("❌ Erro de Configuração: %v", err)
	}
	cfg.JWTSecretKey = secret

	return cfg
}

// resolveJWTSecret exige a chave em produção; fora dela cai na chave de desenvolvimento.
func resolveJWTSecret(environment, secret string) (string, error) {
	if secret != "" {
		return secret, nil
	}
	if environment == "production" {
		return "", errors.New("variável de ambiente obrigatória JWT_SECRET_KEY não definida em produção")
	}
	log.Println("⚠️ Aviso: JWT_SECRET_KEY não definida. Usando chave de desenvolvimento.")
	return devJWTSecret, nil
}

// Location resolve o fuso dos relatórios e do painel. Fuso inválido cai em UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ReportTimezone)
	if err != nil {
		log.Printf("⚠️ Aviso: Fuso '%s' inválido. Usando UTC.", c.ReportTimezone)
		return time.UTC
	}
	return loc
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// mustGetEnv lê a variável de ambiente, fatal se não estiver presente.
func mustGetEnv(key string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	log.Fatalf("❌ Erro de Configuração: A variável de ambiente %s deve ser definida.", key)
	return ""
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getBoolEnv aceita os formatos de strconv.ParseBool.
func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é booleano. Usando padrão (%t).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
