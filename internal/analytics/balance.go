package analytics

const (
	DefaultInitialBalance = 10000
	DefaultCurrency       = "USD"
)

// Settings is the per-user account configuration the balance overlay reads.
type Settings struct {
	InitialBalance float64 `json:"initial_balance"`
	Currency       string  `json:"currency"`
}

func DefaultSettings() Settings {
	return Settings{InitialBalance: DefaultInitialBalance, Currency: DefaultCurrency}
}

type Balance struct {
	InitialBalance float64 `json:"initial_balance"`
	CurrentBalance float64 `json:"current_balance"`
	TotalPnl       float64 `json:"total_pnl"`
	Change         float64 `json:"change"`
	Currency       string  `json:"currency"`
}

// BalanceOverlay applies the account settings to a realised P&L total.
// Change is a percentage of the initial balance and stays 0 when that is not positive.
func BalanceOverlay(totalPnl float64, settings Settings) Balance {
	balance := Balance{
		InitialBalance: settings.InitialBalance,
		CurrentBalance: settings.InitialBalance + totalPnl,
		TotalPnl:       totalPnl,
		Currency:       settings.Currency,
	}
	if settings.InitialBalance > 0 {
		balance.Change = totalPnl / settings.InitialBalance * 100
	}
	return balance
}
