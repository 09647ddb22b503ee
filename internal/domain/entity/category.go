// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products in the storefront catalog. Names and
// descriptions are stored in Arabic, matching the consumer app.
type Category struct {
	ID            uuid.UUID `json:"id"`
	NameAr        string    `json:"name_ar"`
	DescriptionAr *string   `json:"description_ar"`
	Icon          string    `json:"icon"`
	SortOrder     int       `json:"sort_order"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
