package dto

import "trading-journal/internal/analytics"

type SeriesQuery struct {
	Period string `query:"period"`
}

// SeriesResponse carries the bucketed points plus the padded y-axis range for charting.
type SeriesResponse struct {
	Period analytics.Period        `json:"period"`
	Points []analytics.SeriesPoint `json:"points"`
	Domain [2]float64              `json:"domain"`
}

type CalendarQuery struct {
	Month string `query:"month" validate:"omitempty,datetime=2006-01"`
}

type CalendarResponse struct {
	Month string                   `json:"month"`
	Days  []analytics.DailySummary `json:"days"`
}

type PerformanceResponse struct {
	Metrics  analytics.PerformanceMetrics `json:"metrics"`
	Currency string                       `json:"currency"`
}
