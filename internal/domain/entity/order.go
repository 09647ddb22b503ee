package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the two-value order lifecycle the admin can toggle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// ValidOrderStatus reports whether s is an accepted order status value.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusCompleted:
		return true
	}

	return false
}

// Order is placed by the consumer app; the admin backend only mutates
// status and the admin reply, or deletes. Product name, price and total
// are snapshots taken at order time and are never recomputed here.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	ProductName string      `json:"product_name"`
	Price       float64     `json:"price"`
	Quantity    int         `json:"quantity"`
	Total       float64     `json:"total"`
	Status      OrderStatus `json:"status"`
	AdminReply  *string     `json:"admin_reply"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Customer carries the joined profile fields; nil on flat reads.
	Customer *OrderCustomer `json:"profiles,omitempty"`
}

// OrderCustomer is the minimal profile projection joined onto orders.
type OrderCustomer struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}
