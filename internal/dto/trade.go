package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type GetTradesParam struct {
	UserID  string
	From    *time.Time
	To      *time.Time
	Symbol  string
	SetupID string
	Limit   int
}

// ListTradesQuery is bound from the query string of GET /trades and the metrics endpoints.
type ListTradesQuery struct {
	From   string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Symbol string `query:"symbol" validate:"omitempty,max=20"`
	Setup  string `query:"setup_id" validate:"omitempty,uuid"`
}

// SaveTradeRequest creates a trade when ID is empty and replaces it otherwise.
// Pnl is derived from prices when AutoPnl is set or Pnl is omitted.
type SaveTradeRequest struct {
	ID         string           `json:"id" param:"id"`
	Date       time.Time        `json:"date" validate:"required"`
	Symbol     string           `json:"symbol" validate:"required,max=20"`
	EntryPrice decimal.Decimal  `json:"entry_price"`
	ExitPrice  decimal.Decimal  `json:"exit_price"`
	LotSize    decimal.Decimal  `json:"lot_size"`
	Direction  string           `json:"direction" validate:"required,oneof=buy sell"`
	Pnl        *decimal.Decimal `json:"pnl"`
	AutoPnl    bool             `json:"auto_pnl"`
	Notes      string           `json:"notes" validate:"max=2000"`
	Screenshot string           `json:"screenshot" validate:"omitempty,url"`
	Session    string           `json:"session" validate:"omitempty,oneof=Asian European American Overnight"`
	SetupID    *string          `json:"setup_id" validate:"omitempty,uuid"`
}

type ClearMonthResponse struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"`
	Deleted int64 `json:"deleted"`
}
