package shared

import (
	"github.com/google/uuid"
)

// UserSnapshot carries what login needs, including the password hash.
type UserSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
}
