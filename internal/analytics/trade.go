// Package analytics folds journal trades into calendar days, performance
// statistics and chart series. Every function here is pure: inputs are never
// mutated and nothing is cached between calls.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionBuy  Direction = "buy"
	DirectionSell Direction = "sell"
)

const (
	SessionAsian     = "Asian"
	SessionEuropean  = "European"
	SessionAmerican  = "American"
	SessionOvernight = "Overnight"
	SessionUnknown   = "Unknown"
)

// Trade is one closed position as seen by the journal.
type Trade struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Symbol     string    `json:"symbol"`
	EntryPrice float64   `json:"entry_price"`
	ExitPrice  float64   `json:"exit_price"`
	LotSize    float64   `json:"lot_size"`
	Direction  Direction `json:"direction"`
	Pnl        float64   `json:"pnl"`
	Notes      string    `json:"notes,omitempty"`
	Screenshot string    `json:"screenshot,omitempty"`
	Session    string    `json:"session,omitempty"`
	SetupID    string    `json:"setup_id,omitempty"`
}

// SessionKey returns the grouping key used for session statistics.
func (t Trade) SessionKey() string {
	if t.Session == "" {
		return SessionUnknown
	}
	return t.Session
}

// ClassifySession maps the UTC hour of an entry time to a trading session.
func ClassifySession(t time.Time) string {
	hour := t.UTC().Hour()
	switch {
	case hour < 8:
		return SessionAsian
	case hour < 16:
		return SessionEuropean
	case hour < 21:
		return SessionAmerican
	default:
		return SessionOvernight
	}
}

var pnlMultiplier = decimal.NewFromInt(100)

// CalculatePnl derives P&L from prices the way the entry form does:
// (exit - entry) * lot * 100 for a buy, negated for a sell, rounded to cents.
func CalculatePnl(direction Direction, entry, exit, lotSize decimal.Decimal) decimal.Decimal {
	diff := exit.Sub(entry)
	if direction == DirectionSell {
		diff = diff.Neg()
	}
	return diff.Mul(lotSize).Mul(pnlMultiplier).Round(2)
}

// sortedByDate returns a chronologically ordered copy. Trades sharing a
// timestamp keep their relative input order.
func sortedByDate(trades []Trade) []Trade {
	sorted := make([]Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
