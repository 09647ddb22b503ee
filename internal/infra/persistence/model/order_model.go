package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Rows are created by the consumer
// app; the admin backend mutates status/admin_reply or deletes. Product
// name, price and total are order-time snapshots.
type OrderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Price       float64   `gorm:"type:numeric(12,2);not null"`
	Quantity    int       `gorm:"not null;default:1"`
	Total       float64   `gorm:"type:numeric(12,2);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending','completed')"`
	AdminReply  *string   `gorm:"column:admin_reply;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Profile *ProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
