package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. The ID matches the shopper's
// identity-provider UID; emails stay with the provider and are merged in at
// read time by the directory usecase.
type ProfileModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	FullName      string    `gorm:"column:full_name;type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(32);not null;index"`
	AvatarURL     *string   `gorm:"column:avatar_url;type:text"`
	WalletBalance float64   `gorm:"column:wallet_balance;type:numeric(14,2);not null;default:0"`
	IsBlocked     bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
