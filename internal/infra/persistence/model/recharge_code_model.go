package model

import (
	"time"

	"github.com/google/uuid"
)

// RechargeCodeModel mirrors the 'recharge_codes' table. CodeHash is the
// only identity of a code; plaintext never reaches this table. The
// is_used/used_by/used_at fields are written by the consumer app's
// redemption flow, never by the admin backend.
type RechargeCodeModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CodeHash  string     `gorm:"column:code_hash;type:char(64);not null;uniqueIndex"`
	Amount    int64      `gorm:"not null"`
	IsUsed    bool       `gorm:"not null;default:false"`
	UsedBy    *uuid.UUID `gorm:"column:used_by;type:uuid"`
	UsedAt    *time.Time `gorm:"column:used_at"`
	BatchID   uuid.UUID  `gorm:"column:batch_id;type:uuid;not null;index"`
	ExpiresAt *time.Time `gorm:"column:expires_at"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RechargeCodeModel) TableName() string {
	return "recharge_codes"
}
