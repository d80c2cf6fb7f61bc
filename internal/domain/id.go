package domain

import "github.com/google/uuid"

// NewID gera um identificador ordenado pelo tempo de criação (UUIDv7).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
