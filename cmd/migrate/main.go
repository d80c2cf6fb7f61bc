package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"estoquepecas/config"
	"estoquepecas/internal/pkg/database"
	"estoquepecas/internal/pkg/logger"
)

// Executa um comando do goose sobre as migrações embutidas no binário.
// Uso: go run ./cmd/migrate [-timeout 1m] [up|down|status|version|redo|reset|up-to N|down-to N]
func main() {
	timeout := flag.Duration("timeout", time.Minute, "tempo máximo para concluir o comando")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: .env não encontrado; usando apenas o ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	appLog := logger.NewLogger(cfg.LogLevel)

	command, args := "up", []string(nil)
	if flag.NArg() > 0 {
		command, args = flag.Arg(0), flag.Args()[1:]
	}

	if err := run(cfg, appLog, *timeout, command, args); err != nil {
		appLog.Fatal("Migração falhou.", err)
	}
	appLog.Info("Migração concluída.", map[string]interface{}{"command": command})
}

func run(cfg *config.Config, appLog logger.Logger, timeout time.Duration, command string, args []string) error {
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL deve ser definida para rodar migrações")
	}

	db, err := database.NewPostgresSQLX(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLog.Error("Falha ao fechar o pool do DB.", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return database.Migrate(ctx, db.DB, appLog, command, args...)
}
