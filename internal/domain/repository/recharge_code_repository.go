package repository

import (
	"context"

	"raseed/internal/domain/entity"
)

// Recharge code status filters accepted by ListRechargeCodes.
const (
	RechargeStatusUsed   = "used"
	RechargeStatusUnused = "unused"
)

// ListRechargeCodesQuery narrows and pages a recharge code listing.
type ListRechargeCodesQuery struct {
	// BatchID scopes the listing to one issuance batch when non-empty.
	BatchID string

	// Status is "used", "unused", or empty for all.
	Status string

	Limit  int
	Offset int
}

// RechargeCodeRepository defines the operations for recharge code persistence.
// Rows only ever contain code hashes; plaintext codes never reach this layer.
type RechargeCodeRepository interface {
	// ListRechargeCodes returns a page of code rows, newest first, plus the
	// exact total for the filter.
	ListRechargeCodes(ctx context.Context, query ListRechargeCodesQuery) ([]*entity.RechargeCode, int64, error)

	// CreateBatch inserts all rows of an issuance batch in a single
	// statement. Any failure aborts the whole batch; there is no
	// partial-insert recovery.
	CreateBatch(ctx context.Context, codes []*entity.RechargeCode) error
}
