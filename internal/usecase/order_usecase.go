package usecase

import (
	"context"

	"raseed/internal/domain/entity"

	"github.com/google/uuid"
)

// ListOrdersInput narrows and pages an order listing.
type ListOrdersInput struct {
	Page   int
	Limit  int
	Status string
}

// UpdateOrderInput carries the admin-mutable order fields. Nil fields are
// left untouched; AdminReply distinguishes "not provided" from "clear it".
type UpdateOrderInput struct {
	ID         uuid.UUID
	Status     *string
	AdminReply *string
}

// OrderUsecase defines the interface for order ledger use cases
type OrderUsecase interface {
	// ListOrders retrieves a page of orders with the customer profile joined,
	// degrading to a flat listing when the joined read fails
	ListOrders(ctx context.Context, input *ListOrdersInput) ([]*entity.Order, int64, error)

	// UpdateOrder validates and applies status/admin reply changes
	UpdateOrder(ctx context.Context, input *UpdateOrderInput) (*entity.Order, error)

	// DeleteOrder permanently removes an order
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
