package analytics

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// axisPadding is the share of the largest cumulative magnitude added on both chart ends.
const axisPadding = 0.1

var ErrUnknownPeriod = errors.New("unknown period")

func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
	}
}

type SeriesPoint struct {
	Date          string  `json:"date"`
	Pnl           float64 `json:"pnl"`
	Positive      float64 `json:"positive"`
	Negative      float64 `json:"negative"`
	CumulativePnl float64 `json:"cumulative_pnl"`
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func bucketKey(t time.Time, period Period) string {
	switch period {
	case PeriodWeekly:
		return StartOfWeek(t).Format("2006-01-02")
	case PeriodMonthly:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// Bucketize groups trades into chronological P&L buckets for charting. Bucket
// boundaries are taken in loc, UTC when nil. Only periods that contain at least
// one trade produce a point.
func Bucketize(trades []Trade, period Period, loc *time.Location) []SeriesPoint {
	if loc == nil {
		loc = time.UTC
	}
	points := []SeriesPoint{}
	index := make(map[string]int)

	for _, trade := range sortedByDate(trades) {
		key := bucketKey(trade.Date.In(loc), period)
		i, ok := index[key]
		if !ok {
			i = len(points)
			index[key] = i
			points = append(points, SeriesPoint{Date: key})
		}
		points[i].Pnl += trade.Pnl
	}

	var cumulative float64
	for i := range points {
		if points[i].Pnl > 0 {
			points[i].Positive = points[i].Pnl
		} else if points[i].Pnl < 0 {
			points[i].Negative = points[i].Pnl
		}
		cumulative += points[i].Pnl
		points[i].CumulativePnl = cumulative
	}
	return points
}

// AxisDomain returns the padded [min, max] range of the cumulative curve. Zero
// is always inside the range.
func AxisDomain(points []SeriesPoint) (float64, float64) {
	var maxValue, minValue float64
	for _, p := range points {
		maxValue = math.Max(maxValue, p.CumulativePnl)
		minValue = math.Min(minValue, p.CumulativePnl)
	}
	buffer := math.Max(math.Abs(maxValue), math.Abs(minValue)) * axisPadding
	return minValue - buffer, maxValue + buffer
}
