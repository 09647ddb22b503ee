package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a shopper's store-facing account record. It is created by the
// consumer app at signup; the credential record lives in the identity
// provider and only the email is merged in at read time.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	FullName      string    `json:"full_name"`
	Phone         string    `json:"phone"`
	AvatarURL     *string   `json:"avatar_url"`
	WalletBalance float64   `json:"wallet_balance"`
	IsBlocked     bool      `json:"is_blocked"`
	CreatedAt     time.Time `json:"created_at"`

	// Email is sourced from the identity provider, never stored with the
	// profile. Empty when enrichment fails or the shopper has no match.
	Email string `json:"email"`
}
