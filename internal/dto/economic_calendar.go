package dto

import "time"

type EconomicEvent struct {
	Time     string  `json:"time"`
	Currency string  `json:"currency"`
	Title    string  `json:"title"`
	Impact   string  `json:"impact"`
	Actual   *string `json:"actual"`
	Forecast *string `json:"forecast"`
	Previous *string `json:"previous"`
}

type EconomicEventFilter struct {
	Impact   string `query:"impact" validate:"omitempty,oneof=High Medium Low"`
	Currency string `query:"currency" validate:"omitempty,len=3"`
	Search   string `query:"search" validate:"max=100"`
}

type EconomicCalendarResponse struct {
	Events      []EconomicEvent `json:"events"`
	LastUpdated time.Time       `json:"last_updated"`
	Cached      bool            `json:"cached"`
	Stale       bool            `json:"stale"`
}

type CurrencyStrength struct {
	Currency string  `json:"currency"`
	Strength float64 `json:"strength"`
	Change   float64 `json:"change"`
}
