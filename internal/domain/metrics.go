package domain

import "github.com/shopspring/decimal"

// StockMetrics são os totais do painel.
// Entradas e Saidas cobrem a janela móvel dos últimos 30 dias.
type StockMetrics struct {
	TotalItems int             `json:"totalItems"`
	TotalValue decimal.Decimal `json:"totalValue"`
	Entradas   int             `json:"entradas"`
	Saidas     int             `json:"saidas"`
	ItemsCount int             `json:"itemsCount"`
}

// DailyMovement é um ponto da série diária.
type DailyMovement struct {
	Date     string `json:"date"`  // 2006-01-02
	Label    string `json:"label"` // dd/mm
	Entradas int    `json:"entradas"`
	Saidas   int    `json:"saidas"`
}

// Dashboard agrega tudo que a tela inicial exibe.
type Dashboard struct {
	Metrics         StockMetrics    `json:"metrics"`
	Series          []DailyMovement `json:"series"`
	RecentMovements []Movement      `json:"recentMovements"`
	LowStock        []StockItem     `json:"lowStock"`
}
