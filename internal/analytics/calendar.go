package analytics

import "time"

type DayStatus string

const (
	DayProfit  DayStatus = "profit"
	DayLoss    DayStatus = "loss"
	DayNeutral DayStatus = "neutral"
	DayNoTrade DayStatus = "no-trade"
)

type DailySummary struct {
	Date     time.Time `json:"date"`
	Status   DayStatus `json:"status"`
	Trades   []Trade   `json:"trades"`
	TotalPnl float64   `json:"total_pnl"`
}

// StartOfMonth returns midnight of the first day of t's month, in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func DaysInMonth(t time.Time) int {
	return StartOfMonth(t).AddDate(0, 1, -1).Day()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// GenerateDailySummaries returns one summary per day of the month containing
// monthAnchor, including days without trades. Trade dates are compared in the
// anchor's location.
func GenerateDailySummaries(trades []Trade, monthAnchor time.Time) []DailySummary {
	loc := monthAnchor.Location()
	start := StartOfMonth(monthAnchor)
	days := DaysInMonth(monthAnchor)

	summaries := make([]DailySummary, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		summary := DailySummary{Date: day, Trades: []Trade{}}
		for _, trade := range trades {
			if sameDay(trade.Date.In(loc), day) {
				summary.Trades = append(summary.Trades, trade)
				summary.TotalPnl += trade.Pnl
			}
		}
		summary.Status = dayStatus(len(summary.Trades), summary.TotalPnl)
		summaries = append(summaries, summary)
	}
	return summaries
}

func dayStatus(count int, totalPnl float64) DayStatus {
	switch {
	case count == 0:
		return DayNoTrade
	case totalPnl > 0:
		return DayProfit
	case totalPnl < 0:
		return DayLoss
	default:
		return DayNeutral
	}
}
