// Package model holds the GORM persistence models mirroring the store's
// tables. They are exported so the GORM Gen tool can consume them from
// cmd/gen.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type CategoryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NameAr        string    `gorm:"column:name_ar;type:varchar(255);not null"`
	DescriptionAr *string   `gorm:"column:description_ar;type:text"`
	Icon          string    `gorm:"type:varchar(50);not null;default:'Package'"`
	SortOrder     int       `gorm:"not null;default:0"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Products []ProductModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
