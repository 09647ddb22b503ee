package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a purchasable digital good. Price is a snapshot in the
// product's currency; the consumer app performs the actual wallet debit.
type Product struct {
	ID            uuid.UUID `json:"id"`
	CategoryID    uuid.UUID `json:"category_id"`
	NameAr        string    `json:"name_ar"`
	DescriptionAr *string   `json:"description_ar"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	ImageURL      *string   `json:"image_url"`
	Icon          string    `json:"icon"`
	FilterTag     *string   `json:"filter_tag"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// CategoryNameAr is populated on joined reads only.
	CategoryNameAr string `json:"category_name_ar,omitempty"`
}
