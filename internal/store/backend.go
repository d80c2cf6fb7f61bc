package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	apperror "estoquepecas/internal/errors"
	"estoquepecas/internal/pkg/cache"
)

// ErrNotFound indica que a coleção ainda não existe no backend.
var ErrNotFound = errors.New("store: coleção ausente")

// Backend é o armazenamento durável de documentos inteiros por chave.
// Não há atualização parcial nem transação: Set substitui o documento.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

// CacheBackend guarda cada coleção como uma chave do cache.Client
// (Redis em produção, MemoryClient em desenvolvimento e testes).
type CacheBackend struct {
	client cache.Client
}

// NewCacheBackend cria um backend sobre um cache.Client.
func NewCacheBackend(client cache.Client) *CacheBackend {
	return &CacheBackend{client: client}
}

func (b *CacheBackend) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := b.client.Get(ctx, key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(val), nil
}

func (b *CacheBackend) Set(ctx context.Context, key string, data []byte) error {
	return b.client.Set(ctx, key, data, 0)
}

// PostgresBackend guarda cada coleção como uma linha jsonb da tabela collections
// (criada pela migração 00001).
type PostgresBackend struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewPostgresBackend cria um backend sobre o pool sqlx.
func NewPostgresBackend(db *sqlx.DB, timeout time.Duration) *PostgresBackend {
	return &PostgresBackend{db: db, timeout: timeout}
}

func (b *PostgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	var payload []byte
	err := b.db.GetContext(ctxTimeout, &payload, `SELECT payload FROM collections WHERE name = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, apperror.NewDBError(fmt.Sprintf("falha ao ler a coleção %s", key), err)
	}
	return payload, nil
}

func (b *PostgresBackend) Set(ctx context.Context, key string, data []byte) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	const upsert = `
        INSERT INTO collections (name, payload, updated_at)
        VALUES ($1, $2::jsonb, NOW())
        ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`

	if _, err := b.db.ExecContext(ctxTimeout, upsert, key, string(data)); err != nil {
		return apperror.NewDBError(fmt.Sprintf("falha ao gravar a coleção %s", key), err)
	}
	return nil
}
