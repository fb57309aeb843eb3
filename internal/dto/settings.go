package dto

type SaveSettingsRequest struct {
	InitialBalance float64 `json:"initial_balance" validate:"gte=0"`
	Currency       string  `json:"currency" validate:"required,len=3,alpha"`
}
