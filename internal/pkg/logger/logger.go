package logger

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger define a interface para logging estruturado.
// Services, repositórios e handlers dependem apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// LogEntry é uma linha de log serializada em JSON.
type LogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
	"fatal": 4,
}

// JSONLogger escreve uma entrada JSON por linha no writer configurado.
type JSONLogger struct {
	mu       sync.Mutex
	out      *log.Logger
	minLevel int
}

// NewLogger cria um logger em stdout filtrado pelo nível informado ("debug", "info", ...).
func NewLogger(level string) Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter cria um logger que escreve em w. Útil nos testes.
func NewWithWriter(level string, w io.Writer) Logger {
	min, ok := levels[strings.ToLower(level)]
	if !ok {
		min = levels["info"]
	}
	return &JSONLogger{out: log.New(w, "", 0), minLevel: min}
}

// Nop descarta tudo.
func Nop() Logger {
	return NewWithWriter("fatal", io.Discard)
}

func (l *JSONLogger) logf(level, msg string, fields map[string]interface{}, err error) {
	if levels[level] < l.minLevel {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     strings.ToUpper(level),
		Message:   msg,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	jsonBytes, _ := json.Marshal(entry)

	l.mu.Lock()
	l.out.Println(string(jsonBytes))
	l.mu.Unlock()

	if level == "fatal" {
		os.Exit(1)
	}
}

func (l *JSONLogger) Debug(msg string, fields map[string]interface{}) {
	l.logf("debug", msg, fields, nil)
}

func (l *JSONLogger) Info(msg string, fields map[string]interface{}) {
	l.logf("info", msg, fields, nil)
}

func (l *JSONLogger) Warn(msg string, fields map[string]interface{}) {
	l.logf("warn", msg, fields, nil)
}

func (l *JSONLogger) Error(msg string, err error) {
	l.logf("error", msg, nil, err)
}

func (l *JSONLogger) Fatal(msg string, err error) {
	l.logf("fatal", msg, nil, err)
}
