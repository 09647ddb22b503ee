package repository

import (
	"context"
	"errors"

	"raseed/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// ListOrdersQuery narrows and pages an order listing.
type ListOrdersQuery struct {
	// Status filters by order status when non-empty.
	Status string

	Limit  int
	Offset int
}

// OrderUpdate carries the admin-mutable order fields. Nil fields are left
// untouched; AdminReply distinguishes "not provided" (nil) from "clear the
// reply" (pointer to empty string).
type OrderUpdate struct {
	Status     *entity.OrderStatus
	AdminReply *string
}

// OrderRepository defines the standard operations for order persistence.
// The joined and flat listings are deliberately two named operations so the
// caller can degrade explicitly instead of retrying implicitly.
type OrderRepository interface {
	// ListOrdersWithCustomer returns a page of orders, newest first, with
	// the minimal customer profile joined, plus the exact total.
	ListOrdersWithCustomer(ctx context.Context, query ListOrdersQuery) ([]*entity.Order, int64, error)

	// ListOrders returns the same page without the profile join. Used as
	// the degraded-but-available fallback when the join fails.
	ListOrders(ctx context.Context, query ListOrdersQuery) ([]*entity.Order, int64, error)

	// UpdateOrder applies the given field updates, bumps updated_at, and
	// returns the joined record.
	UpdateOrder(ctx context.Context, id uuid.UUID, update OrderUpdate) (*entity.Order, error)

	// DeleteOrder permanently removes an order. No recovery.
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
