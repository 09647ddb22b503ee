package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office operator account. Passwords are stored as bcrypt
// hashes; sessions are stateless JWTs.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
