package model

import (
	"time"

	"trading-journal/internal/analytics"

	"github.com/shopspring/decimal"
)

type Trade struct {
	ID         string          `gorm:"primaryKey;type:uuid" json:"id"`
	UserID     string          `gorm:"not null;index" json:"user_id"`
	Date       time.Time       `gorm:"not null" json:"date"`
	Symbol     string          `gorm:"not null" json:"symbol"`
	EntryPrice decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"entry_price"`
	ExitPrice  decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"exit_price"`
	LotSize    decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"lot_size"`
	Direction  string          `gorm:"not null" json:"direction"`
	Pnl        decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"pnl"`
	Notes      string          `json:"notes"`
	Screenshot string          `json:"screenshot"`
	Session    string          `json:"session"`
	SetupID    *string         `gorm:"type:uuid" json:"setup_id"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Trade) TableName() string {
	return "trades"
}

// ToAnalytics flattens the stored row into the value the metrics engine works on.
func (t Trade) ToAnalytics() analytics.Trade {
	out := analytics.Trade{
		ID:         t.ID,
		Date:       t.Date,
		Symbol:     t.Symbol,
		EntryPrice: t.EntryPrice.InexactFloat64(),
		ExitPrice:  t.ExitPrice.InexactFloat64(),
		LotSize:    t.LotSize.InexactFloat64(),
		Direction:  analytics.Direction(t.Direction),
		Pnl:        t.Pnl.InexactFloat64(),
		Notes:      t.Notes,
		Screenshot: t.Screenshot,
		Session:    t.Session,
	}
	if t.SetupID != nil {
		out.SetupID = *t.SetupID
	}
	return out
}

func ToAnalyticsTrades(trades []Trade) []analytics.Trade {
	out := make([]analytics.Trade, 0, len(trades))
	for _, t := range trades {
		out = append(out, t.ToAnalytics())
	}
	return out
}
