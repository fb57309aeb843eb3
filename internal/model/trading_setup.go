package model

import (
	"time"

	"gorm.io/datatypes"
)

// TradingSetup is a reusable strategy template trades can point at.
type TradingSetup struct {
	ID          string                      `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string                      `gorm:"not null;index" json:"user_id"`
	Name        string                      `gorm:"not null" json:"name"`
	Description string                      `json:"description"`
	MarketType  string                      `gorm:"not null" json:"market_type"`
	Timeframe   string                      `gorm:"not null" json:"timeframe"`
	RiskReward  float64                     `json:"risk_reward"`
	WinRate     float64                     `json:"win_rate"`
	Notes       string                      `json:"notes"`
	ImageURL    string                      `json:"image_url"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TradingSetup) TableName() string {
	return "trading_setups"
}
