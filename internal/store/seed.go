package store

import (
	"time"

	"github.com/shopspring/decimal"

	"estoquepecas/internal/domain"
)

var seedOrder = []Collection{CollectionStock, CollectionMovements, CollectionRequests}

// DefaultSeeds devolve os dados de exemplo: três itens, duas movimentações e nenhuma solicitação.
func DefaultSeeds() map[Collection]SeedFunc {
	return map[Collection]SeedFunc{
		CollectionStock:     seedStock,
		CollectionMovements: seedMovements,
		CollectionRequests: func(time.Time) interface{} {
			return []domain.SolicitacaoPeca{}
		},
	}
}

func seedStock(now time.Time) interface{} {
	return []domain.StockItem{
		{
			ID:              "1",
			Codigo:          "PC001",
			Nome:            "Cabo de Rede",
			Categoria:       "Cabos",
			Quantidade:      45,
			Unidade:         "UN",
			Localizacao:     "A1-P3",
			ValorUnitario:   decimal.NewFromInt(15),
			DataAtualizacao: now,
		},
		{
			ID:              "2",
			Codigo:          "PC002",
			Nome:            "Mouse",
			Categoria:       "Periféricos",
			Quantidade:      120,
			Unidade:         "UN",
			Localizacao:     "B2-P1",
			ValorUnitario:   decimal.NewFromInt(35),
			DataAtualizacao: now,
		},
		{
			ID:              "3",
			Codigo:          "PC003",
			Nome:            "Monitor 24'",
			Categoria:       "Componentes",
			Quantidade:      78,
			Unidade:         "UN",
			Localizacao:     "C3-P2",
			ValorUnitario:   decimal.NewFromInt(680),
			DataAtualizacao: now,
		},
	}
}

func seedMovements(now time.Time) interface{} {
	return []domain.Movement{
		{
			ID:          "1",
			ItemID:      "1",
			ItemNome:    "Cabo de Rede",
			Tipo:        domain.MovementEntrada,
			Quantidade:  20,
			Data:        now.Add(-24 * time.Hour),
			Responsavel: "Hebert",
			Observacao:  "Compra programada",
		},
		{
			ID:          "2",
			ItemID:      "2",
			ItemNome:    "Mouse",
			Tipo:        domain.MovementSaida,
			Quantidade:  10,
			Data:        now.Add(-12 * time.Hour),
			Responsavel: "Lucas",
			Observacao:  "Reposição para setor de TI",
		},
	}
}
