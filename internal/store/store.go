// Package store implementa o armazenamento persistente das coleções do estoque:
// cada coleção é um documento JSON inteiro (get/set), semeado uma única vez no
// primeiro acesso quando ausente.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"estoquepecas/internal/pkg/logger"
)

// Collection é o nome lógico de uma coleção persistida.
type Collection string

const (
	CollectionStock     Collection = "stock_items"
	CollectionMovements Collection = "stock_movements"
	CollectionRequests  Collection = "stock_requests"
	CollectionOperators Collection = "stock_operators"
)

// ErrUnchanged pode ser devolvido pela função de Mutate para pular a gravação.
var ErrUnchanged = errors.New("store: coleção inalterada")

// SeedFunc produz os registros iniciais de uma coleção.
type SeedFunc func(now time.Time) interface{}

// Store é injetado uma vez por processo nos repositórios.
type Store struct {
	backend Backend
	logger  logger.Logger
	prefix  string
	seeds   map[Collection]SeedFunc
	now     func() time.Time

	seedOnce sync.Once
	// mu serializa os ciclos ler-modificar-gravar dos goroutines HTTP.
	mu sync.Mutex
}

// Option configura o Store.
type Option func(*Store)

// WithPrefix prefixa as chaves (útil para compartilhar um Redis).
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithoutSeed desliga a semeadura inicial.
func WithoutSeed() Option {
	return func(s *Store) { s.seeds = nil }
}

// WithSeeds substitui os dados iniciais.
func WithSeeds(seeds map[Collection]SeedFunc) Option {
	return func(s *Store) { s.seeds = seeds }
}

// WithClock define o relógio usado nos dados iniciais.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New cria o Store sobre um backend.
func New(backend Backend, log logger.Logger, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  log,
		seeds:   DefaultSeeds(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) key(c Collection) string {
	return s.prefix + string(c)
}

// ensureSeeded grava a semente de cada coleção ausente. Roda uma vez por Store;
// a presença da coleção, e não o seu conteúdo, decide.
func (s *Store) ensureSeeded(ctx context.Context) {
	s.seedOnce.Do(func() {
		for _, c := range seedOrder {
			seed, ok := s.seeds[c]
			if !ok {
				continue
			}

			_, err := s.backend.Get(ctx, s.key(c))
			if err == nil {
				continue
			}
			if !errors.Is(err, ErrNotFound) {
				s.logger.Warn("Falha ao verificar coleção para semeadura.", map[string]interface{}{"collection": string(c), "error": err.Error()})
				continue
			}

			data, err := json.Marshal(seed(s.now().UTC()))
			if err != nil {
				s.logger.Error("Falha ao serializar dados iniciais.", err)
				continue
			}
			if err := s.backend.Set(ctx, s.key(c), data); err != nil {
				s.logger.Error("Falha ao gravar dados iniciais.", err)
				continue
			}
			s.logger.Info("Coleção semeada com dados iniciais.", map[string]interface{}{"collection": string(c)})
		}
	})
}

// Load devolve a coleção inteira na ordem de gravação. Nunca falha:
// coleção ausente, JSON corrompido ou erro do backend resultam em sequência vazia.
func Load[T any](ctx context.Context, s *Store, c Collection) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load[T](ctx, s, c)
}

// Save substitui a coleção inteira (last-writer-wins).
func Save[T any](ctx context.Context, s *Store, c Collection, records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureSeeded(ctx)
	return save(ctx, s, c, records)
}

// Mutate carrega a coleção, aplica fn e grava o resultado sob o mutex do Store.
// Se fn devolver ErrUnchanged nada é gravado e Mutate devolve nil.
func Mutate[T any](ctx context.Context, s *Store, c Collection, fn func([]T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := fn(load[T](ctx, s, c))
	if errors.Is(err, ErrUnchanged) {
		return nil
	}
	if err != nil {
		return err
	}
	return save(ctx, s, c, records)
}

func load[T any](ctx context.Context, s *Store, c Collection) []T {
	s.ensureSeeded(ctx)

	data, err := s.backend.Get(ctx, s.key(c))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("Falha ao ler coleção; tratando como vazia.", map[string]interface{}{"collection": string(c), "error": err.Error()})
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("Coleção corrompida; tratando como vazia.", map[string]interface{}{"collection": string(c), "error": err.Error()})
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

func save[T any](ctx context.Context, s *Store, c Collection, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if err := s.backend.Set(ctx, s.key(c), data); err != nil {
		s.logger.Error("Falha ao gravar coleção.", err)
		return err
	}
	return nil
}
