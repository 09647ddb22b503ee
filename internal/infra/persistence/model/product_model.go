package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. CategoryID references
// categories.id; the FK constraint lives in the schema, the app layer does
// not re-validate it on create/update.
type ProductModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CategoryID    uuid.UUID `gorm:"type:uuid;not null;index"`
	NameAr        string    `gorm:"column:name_ar;type:varchar(255);not null"`
	DescriptionAr *string   `gorm:"column:description_ar;type:text"`
	Price         float64   `gorm:"type:numeric(12,2);not null"`
	Currency      string    `gorm:"type:varchar(8);not null;default:'IQD'"`
	ImageURL      *string   `gorm:"column:image_url;type:text"`
	Icon          string    `gorm:"type:varchar(50);not null;default:'Package'"`
	FilterTag     *string   `gorm:"column:filter_tag;type:varchar(100);index"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
