package dto

type SaveSetupRequest struct {
	ID          string   `json:"id" param:"id"`
	Name        string   `json:"name" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=2000"`
	MarketType  string   `json:"market_type" validate:"required,oneof=forex metals crypto indices stocks commodities"`
	Timeframe   string   `json:"timeframe" validate:"required,max=10"`
	RiskReward  float64  `json:"risk_reward" validate:"gte=0"`
	WinRate     float64  `json:"win_rate" validate:"gte=0,lte=100"`
	Notes       string   `json:"notes" validate:"max=5000"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
	Tags        []string `json:"tags" validate:"max=20,dive,max=40"`
}
