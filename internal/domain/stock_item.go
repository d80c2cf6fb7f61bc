package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Valores monetários são persistidos como número JSON (15.5), não como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// MaxQuantidade é o teto aceito para quantidades de itens, movimentações e
// solicitações. Mantém somas de estoque e métricas longe do limite do int.
const MaxQuantidade = 1_000_000_000

// StockItem é uma peça rastreável do estoque.
// Quantidade nunca fica negativa: decrementos são limitados a zero.
type StockItem struct {
	ID              string          `json:"id"`
	Codigo          string          `json:"codigo"` // informado pelo usuário, não é único
	Nome            string          `json:"nome"`
	Categoria       string          `json:"categoria"`
	Quantidade      int             `json:"quantidade"`
	Unidade         string          `json:"unidade"`
	Localizacao     string          `json:"localizacao"`
	ValorUnitario   decimal.Decimal `json:"valorUnitario"`
	DataAtualizacao time.Time       `json:"dataAtualizacao"`
}

// TotalValue é quantidade × valor unitário.
func (i StockItem) TotalValue() decimal.Decimal {
	return i.ValorUnitario.Mul(decimal.NewFromInt(int64(i.Quantidade)))
}

// NewStockItem é o payload de criação (sem ID e sem DataAtualizacao).
type NewStockItem struct {
	Codigo        string          `json:"codigo"`
	Nome          string          `json:"nome"`
	Categoria     string          `json:"categoria"`
	Quantidade    int             `json:"quantidade"`
	Unidade       string          `json:"unidade"`
	Localizacao   string          `json:"localizacao"`
	ValorUnitario decimal.Decimal `json:"valorUnitario"`
}

// StockItemPatch enumera os campos mutáveis de um item. Campos nil ficam inalterados.
// O ID nunca muda; DataAtualizacao é sempre recarimbada pelo catálogo.
type StockItemPatch struct {
	Codigo        *string          `json:"codigo,omitempty"`
	Nome          *string          `json:"nome,omitempty"`
	Categoria     *string          `json:"categoria,omitempty"`
	Quantidade    *int             `json:"quantidade,omitempty"`
	Unidade       *string          `json:"unidade,omitempty"`
	Localizacao   *string          `json:"localizacao,omitempty"`
	ValorUnitario *decimal.Decimal `json:"valorUnitario,omitempty"`
}

// IsEmpty informa se nenhum campo foi enviado.
func (p StockItemPatch) IsEmpty() bool {
	return p.Codigo == nil && p.Nome == nil && p.Categoria == nil && p.Quantidade == nil &&
		p.Unidade == nil && p.Localizacao == nil && p.ValorUnitario == nil
}

// ApplyTo copia os campos presentes para o item.
func (p StockItemPatch) ApplyTo(item *StockItem) {
	if p.Codigo != nil {
		item.Codigo = *p.Codigo
	}
	if p.Nome != nil {
		item.Nome = *p.Nome
	}
	if p.Categoria != nil {
		item.Categoria = *p.Categoria
	}
	if p.Quantidade != nil {
		item.Quantidade = *p.Quantidade
	}
	if p.Unidade != nil {
		item.Unidade = *p.Unidade
	}
	if p.Localizacao != nil {
		item.Localizacao = *p.Localizacao
	}
	if p.ValorUnitario != nil {
		item.ValorUnitario = *p.ValorUnitario
	}
}

// StockFilter filtra a listagem do catálogo.
// Search casa, sem diferenciar maiúsculas, com nome, código ou categoria.
type StockFilter struct {
	Search string
}
