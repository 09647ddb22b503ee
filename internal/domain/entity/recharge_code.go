package entity

import (
	"time"

	"github.com/google/uuid"
)

// RechargeCode is a prepaid wallet top-up code. Only the SHA-256 hash of
// the normalized code is ever persisted; the plaintext exists once, in the
// issue-batch response. Redemption happens in the consumer app by hashing
// the entered code the same way and comparing.
type RechargeCode struct {
	ID        uuid.UUID  `json:"id"`
	CodeHash  string     `json:"code_hash"`
	Amount    int64      `json:"amount"`
	IsUsed    bool       `json:"is_used"`
	UsedBy    *uuid.UUID `json:"used_by"`
	UsedAt    *time.Time `json:"used_at"`
	BatchID   uuid.UUID  `json:"batch_id"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}
