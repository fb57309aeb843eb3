package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradingSetting is the per-user account configuration. One row per user.
type TradingSetting struct {
	UserID         string          `gorm:"primaryKey" json:"user_id"`
	InitialBalance decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"initial_balance"`
	Currency       string          `gorm:"type:char(3);not null" json:"currency"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TradingSetting) TableName() string {
	return "trading_settings"
}
