package domain

import "time"

// MovementType é o sentido de uma movimentação.
type MovementType string

const (
	MovementEntrada MovementType = "entrada"
	MovementSaida   MovementType = "saida"
)

// Valid informa se o tipo é entrada ou saida.
func (t MovementType) Valid() bool {
	return t == MovementEntrada || t == MovementSaida
}

// Delta converte a quantidade da movimentação na variação de estoque.
func (t MovementType) Delta(quantidade int) int {
	if t == MovementEntrada {
		return quantidade
	}
	return -quantidade
}

// Label é o rótulo usado nos relatórios.
func (t MovementType) Label() string {
	if t == MovementEntrada {
		return "Entrada"
	}
	return "Saída"
}

// Movement é um registro imutável do razão de movimentações.
// ItemNome é uma cópia do nome no momento da movimentação e não acompanha renomeações.
type Movement struct {
	ID          string       `json:"id"`
	ItemID      string       `json:"itemId"`
	ItemNome    string       `json:"itemNome"`
	Tipo        MovementType `json:"tipo"`
	Quantidade  int          `json:"quantidade"`
	Data        time.Time    `json:"data"`
	Responsavel string       `json:"responsavel"`
	Observacao  string       `json:"observacao,omitempty"`
}

// NewMovement é o payload de lançamento no razão.
// Quando ItemNome vem vazio, o razão copia o nome atual do item.
type NewMovement struct {
	ItemID      string       `json:"itemId"`
	ItemNome    string       `json:"itemNome,omitempty"`
	Tipo        MovementType `json:"tipo"`
	Quantidade  int          `json:"quantidade"`
	Responsavel string       `json:"responsavel"`
	Observacao  string       `json:"observacao,omitempty"`
}

// MovementFilter seleciona movimentações para relatórios.
// End é inclusivo até o fim do dia. Tipo vazio ou "todos" não filtra.
type MovementFilter struct {
	Start *time.Time
	End   *time.Time
	Tipo  string
}
