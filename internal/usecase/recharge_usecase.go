package usecase

import (
	"context"
	"time"

	"raseed/internal/domain/entity"

	"github.com/google/uuid"
)

// IssueBatchInput describes one recharge code issuance request.
type IssueBatchInput struct {
	Amount      int64
	Count       int
	ExpiresDays *int
	WithQR      bool
}

// IssuedBatch is the one-time issuance result. The plaintext codes exist
// nowhere else; only their hashes are persisted.
type IssuedBatch struct {
	BatchID   uuid.UUID  `json:"batch_id"`
	Codes     []string   `json:"codes"`
	Amount    int64      `json:"amount"`
	Count     int        `json:"count"`
	ExpiresAt *time.Time `json:"expires_at"`

	// QRCodes holds base64-encoded PNG images aligned with Codes, present
	// only when requested at issue time.
	QRCodes []string `json:"qr_codes,omitempty"`
}

// ListCodesInput narrows and pages a recharge code listing.
type ListCodesInput struct {
	Page    int
	Limit   int
	BatchID string
	Status  string
}

// RechargeUsecase defines the interface for recharge code use cases
type RechargeUsecase interface {
	// IssueBatch generates, persists and returns a batch of recharge codes
	IssueBatch(ctx context.Context, input *IssueBatchInput) (*IssuedBatch, error)

	// ListCodes retrieves a page of issued code rows (hashes only)
	ListCodes(ctx context.Context, input *ListCodesInput) ([]*entity.RechargeCode, int64, error)
}
