package domain

import "time"

// Operator é o usuário que opera o sistema. Nome e matrícula identificam quem
// lança movimentações e solicitações; o login não protege nenhuma rota.
type Operator struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	Matricula    string    `json:"matricula"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile devolve os dados públicos do operador.
func (o Operator) Profile() OperatorProfile {
	return OperatorProfile{ID: o.ID, Nome: o.Nome, Email: o.Email, Matricula: o.Matricula}
}

// OperatorProfile é a visão do operador sem o hash da senha.
type OperatorProfile struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Matricula string `json:"matricula"`
}

// OperatorRegistration é o payload de cadastro.
type OperatorRegistration struct {
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Senha     string `json:"senha"`
	Matricula string `json:"matricula"`
}

// LoginRequest é o payload de login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse devolve o token e o perfil do operador.
type LoginResponse struct {
	Token    string          `json:"token"`
	Operator OperatorProfile `json:"operator"`
}
