package database

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estoquepecas/internal/pkg/logger"
	migrations "estoquepecas/sql"
)

func TestEmbeddedMigrations(t *testing.T) {
	goose.SetBaseFS(migrations.FS)
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	found, err := goose.CollectMigrations(".", 0, goose.MaxVersion)

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(1), found[0].Version)
}

func TestGooseLogger_WritesStructuredInfo(t *testing.T) {
	var buf bytes.Buffer
	g := gooseLogger{log: logger.NewWithWriter("info", &buf)}

	g.Printf("OK   %s (%v)\n", "00001_create_collections.sql", "12ms")

	var entry logger.LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "OK   00001_create_collections.sql (12ms)", entry.Message)
	assert.Equal(t, "goose", entry.Fields["component"])
}
