package common

// Cache keys. The %s placeholder is the user id.
const (
	KEY_TRADING_SETTINGS   = "trading_settings:%s"
	KEY_CURRENCY_STRENGTH  = "currency_strength"
	KEY_ECONOMIC_CALENDAR  = "economic_calendar"
	KEY_TELEGRAM_USER_LINK = "telegram_user:%d"
)

// KEY_LOG_HOOK_SEND_ALERT marks a log entry that should also be pushed to the alert chat.
const KEY_LOG_HOOK_SEND_ALERT = "send_alert"

const (
	IMPACT_HIGH   = "High"
	IMPACT_MEDIUM = "Medium"
	IMPACT_LOW    = "Low"
)

func GetImpactList() []string {
	return []string{
		IMPACT_HIGH,
		IMPACT_MEDIUM,
		IMPACT_LOW,
	}
}

// Major currencies tracked by the currency strength meter.
func GetMajorCurrencies() []string {
	return []string{"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "NZD"}
}
