package telegram

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"trading-journal/internal/analytics"
	"trading-journal/internal/dto"
	"trading-journal/pkg/utils"
)

var dayStatusIcon = map[analytics.DayStatus]string{
	analytics.DayProfit:  "🟢",
	analytics.DayLoss:    "🔴",
	analytics.DayNeutral: "⚪",
}

var impactIcon = map[string]string{
	"High":   "🔴",
	"Medium": "🟠",
	"Low":    "🟡",
}

func FormatReport(m analytics.PerformanceMetrics, currency string, symbols []analytics.SymbolStats) string {
	sb := &strings.Builder{}
	sb.WriteString("📊 <b>Trading Report</b>\n")

	sb.WriteString(fmt.Sprintf("\n🟢 <b>Win</b>: %d | 🔴 Lose: %d | Total: %d", m.WinningTrades, m.LosingTrades, m.TotalTrades))
	sb.WriteString(fmt.Sprintf("\n🏆 <b>Win Rate</b>: %.2f%%", m.WinRate))
	sb.WriteString(fmt.Sprintf("\n📈 <b>Total PnL</b>: %s", utils.FormatMoney(m.TotalPnl, currency)))
	sb.WriteString(fmt.Sprintf("\n⚖️ <b>Profit Factor</b>: %s", formatProfitFactor(m.ProfitFactor)))
	sb.WriteString(fmt.Sprintf("\n📉 <b>Max Drawdown</b>: %s", utils.FormatMoney(-m.MaxDrawdown, currency)))
	sb.WriteString(fmt.Sprintf("\n➕ Avg Win: %s | ➖ Avg Loss: %s",
		utils.FormatMoney(m.AverageWin, currency),
		utils.FormatMoney(-m.AverageLoss, currency),
	))

	if len(m.SessionPerformance) > 0 {
		sb.WriteString("\n\n🕒 <b>Sessions</b>\n")
		sessions := make([]string, 0, len(m.SessionPerformance))
		for name := range m.SessionPerformance {
			sessions = append(sessions, name)
		}
		sort.Strings(sessions)
		for _, name := range sessions {
			s := m.SessionPerformance[name]
			sb.WriteString(fmt.Sprintf("%s: %d trades, %s, %.0f%% win\n",
				utils.EscapeHTML(name), s.Count, utils.FormatMoney(s.Pnl, currency), s.WinRate))
		}
	}

	if len(symbols) > 0 {
		sb.WriteString("\n🔎 <b>Symbols</b>\n")
		for _, s := range symbols {
			sb.WriteString(fmt.Sprintf("<b>%s</b>: %d trades, %s, %.0f%% win\n",
				utils.EscapeHTML(s.Symbol), s.Count, utils.FormatMoney(s.Pnl, currency), s.WinRate))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatProfitFactor(pf float64) string {
	if pf >= analytics.ProfitFactorSentinel {
		return "∞"
	}
	return fmt.Sprintf("%.2f", pf)
}

func FormatBalance(b analytics.Balance) string {
	sb := &strings.Builder{}
	sb.WriteString("💰 <b>Account Balance</b>\n")
	sb.WriteString(fmt.Sprintf("\nInitial: %s", strings.TrimPrefix(utils.FormatMoney(b.InitialBalance, b.Currency), "+")))
	sb.WriteString(fmt.Sprintf("\nCurrent: <b>%s</b>", strings.TrimPrefix(utils.FormatMoney(b.CurrentBalance, b.Currency), "+")))
	sb.WriteString(fmt.Sprintf("\nRealised P&amp;L: %s (%s)", utils.FormatMoney(b.TotalPnl, b.Currency), utils.FormatPercentage(b.Change)))
	return sb.String()
}

// FormatCalendar lists only the days that had trades, followed by the month total.
func FormatCalendar(month time.Time, days []analytics.DailySummary, currency string) string {
	sb := &strings.Builder{}
	sb.WriteString(fmt.Sprintf("📅 <b>%s %d</b>\n", month.Month().String(), month.Year()))

	var total float64
	var traded, green int
	for _, day := range days {
		if day.Status == analytics.DayNoTrade {
			continue
		}
		traded++
		total += day.TotalPnl
		if day.Status == analytics.DayProfit {
			green++
		}
		sb.WriteString(fmt.Sprintf("\n%s %s %s: %s (%d)",
			dayStatusIcon[day.Status],
			day.Date.Format("Mon"),
			day.Date.Format("02"),
			utils.FormatMoney(day.TotalPnl, currency),
			len(day.Trades),
		))
	}

	if traded == 0 {
		sb.WriteString("\nNo trades this month.")
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf("\n\n<b>Total</b>: %s over %d days, %d green", utils.FormatMoney(total, currency), traded, green))
	return sb.String()
}

func FormatEvents(resp *dto.EconomicCalendarResponse, limit int) string {
	sb := &strings.Builder{}
	sb.WriteString("🗓 <b>Economic Calendar</b>\n")
	if resp.Stale {
		sb.WriteString("<i>Source unavailable, showing last known data.</i>\n")
	}

	if len(resp.Events) == 0 {
		sb.WriteString("\nNo events match.")
		return sb.String()
	}

	events := resp.Events
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	for _, e := range events {
		sb.WriteString(fmt.Sprintf("\n%s %s <b>%s</b> %s",
			impactIcon[e.Impact],
			utils.EscapeHTML(e.Time),
			utils.EscapeHTML(e.Currency),
			utils.EscapeHTML(e.Title),
		))
		if e.Forecast != nil {
			sb.WriteString(fmt.Sprintf(" (f: %s)", utils.EscapeHTML(*e.Forecast)))
		}
	}
	if hidden := len(resp.Events) - len(events); hidden > 0 {
		sb.WriteString(fmt.Sprintf("\n\n…and %d more", hidden))
	}
	if !resp.LastUpdated.IsZero() {
		sb.WriteString(fmt.Sprintf("\n\n<i>Updated %s</i>", utils.PrettyDate(resp.LastUpdated)))
	}
	return sb.String()
}
