package domain

import "time"

// RequestStatus é o estado de uma solicitação de peça.
type RequestStatus string

const (
	StatusPendente  RequestStatus = "pendente"
	StatusAprovada  RequestStatus = "aprovada"
	StatusRejeitada RequestStatus = "rejeitada"
)

// IsTerminal informa se o estado é aprovada ou rejeitada.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusAprovada || s == StatusRejeitada
}

// SolicitacaoPeca é um pedido de redistribuição sujeito a aprovação.
type SolicitacaoPeca struct {
	ID          string        `json:"id"`
	ItemID      string        `json:"itemId"`
	ItemNome    string        `json:"itemNome"`
	Quantidade  int           `json:"quantidade"`
	Solicitante string        `json:"solicitante"`
	Matricula   string        `json:"matricula"`
	Data        time.Time     `json:"data"`
	Status      RequestStatus `json:"status"`
	Observacao  string        `json:"observacao,omitempty"`
}

// NewSolicitacao é o payload de criação de uma solicitação.
type NewSolicitacao struct {
	ItemID      string `json:"itemId"`
	ItemNome    string `json:"itemNome"`
	Quantidade  int    `json:"quantidade"`
	Solicitante string `json:"solicitante"`
	Matricula   string `json:"matricula"`
	Observacao  string `json:"observacao,omitempty"`
}

// StatusChange é o payload da transição de estado.
type StatusChange struct {
	Status RequestStatus `json:"status"`
}
