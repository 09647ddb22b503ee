package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel mirrors the 'admin_accounts' table.
type AdminModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admin_accounts"
}
