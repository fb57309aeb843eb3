package analytics

import (
	"math"
	"sort"
)

// ProfitFactorSentinel is reported instead of +Inf when there are wins but no losses.
const ProfitFactorSentinel = 999

type SessionStats struct {
	Count   int     `json:"count"`
	Pnl     float64 `json:"pnl"`
	WinRate float64 `json:"win_rate"`
}

type SymbolStats struct {
	Symbol  string  `json:"symbol"`
	Count   int     `json:"count"`
	Pnl     float64 `json:"pnl"`
	WinRate float64 `json:"win_rate"`
}

// PerformanceMetrics is the aggregate view over an arbitrary set of trades.
type PerformanceMetrics struct {
	TotalTrades        int                     `json:"total_trades"`
	WinningTrades      int                     `json:"winning_trades"`
	LosingTrades       int                     `json:"losing_trades"`
	TotalPnl           float64                 `json:"total_pnl"`
	GrossProfit        float64                 `json:"gross_profit"`
	GrossLoss          float64                 `json:"gross_loss"`
	WinRate            float64                 `json:"win_rate"`
	AverageWin         float64                 `json:"average_win"`
	AverageLoss        float64                 `json:"average_loss"`
	ProfitFactor       float64                 `json:"profit_factor"`
	MaxDrawdown        float64                 `json:"max_drawdown"`
	SessionPerformance map[string]SessionStats `json:"session_performance"`
	InitialBalance     float64                 `json:"initial_balance"`
	CurrentBalance     float64                 `json:"current_balance"`
	BalanceChange      float64                 `json:"balance_change"`
}

type sessionTally struct {
	count int
	pnl   float64
	wins  int
}

// ComputeMetrics folds trades into PerformanceMetrics. The drawdown walk runs
// over a chronologically sorted copy, so the result does not depend on the
// order the caller loaded the trades in.
func ComputeMetrics(trades []Trade, initialBalance float64) PerformanceMetrics {
	if len(trades) == 0 {
		return PerformanceMetrics{
			SessionPerformance: map[string]SessionStats{},
			InitialBalance:     initialBalance,
			CurrentBalance:     initialBalance,
		}
	}

	var (
		totalPnl    float64
		winCount    int
		lossCount   int
		totalWins   float64
		totalLosses float64
		sessions    = make(map[string]*sessionTally)
	)

	for _, trade := range trades {
		totalPnl += trade.Pnl
		if trade.Pnl > 0 {
			winCount++
			totalWins += trade.Pnl
		} else if trade.Pnl < 0 {
			lossCount++
			totalLosses += math.Abs(trade.Pnl)
		}

		key := trade.SessionKey()
		tally, ok := sessions[key]
		if !ok {
			tally = &sessionTally{}
			sessions[key] = tally
		}
		tally.count++
		tally.pnl += trade.Pnl
		if trade.Pnl > 0 {
			tally.wins++
		}
	}

	result := PerformanceMetrics{
		TotalTrades:        len(trades),
		WinningTrades:      winCount,
		LosingTrades:       lossCount,
		TotalPnl:           totalPnl,
		GrossProfit:        totalWins,
		GrossLoss:          totalLosses,
		WinRate:            float64(winCount) / float64(len(trades)) * 100,
		ProfitFactor:       profitFactor(totalWins, totalLosses),
		MaxDrawdown:        maxDrawdown(sortedByDate(trades)),
		SessionPerformance: make(map[string]SessionStats, len(sessions)),
	}
	if winCount > 0 {
		result.AverageWin = totalWins / float64(winCount)
	}
	if lossCount > 0 {
		result.AverageLoss = totalLosses / float64(lossCount)
	}
	for key, tally := range sessions {
		result.SessionPerformance[key] = SessionStats{
			Count:   tally.count,
			Pnl:     tally.pnl,
			WinRate: float64(tally.wins) / float64(tally.count) * 100,
		}
	}

	balance := BalanceOverlay(totalPnl, Settings{InitialBalance: initialBalance})
	result.InitialBalance = balance.InitialBalance
	result.CurrentBalance = balance.CurrentBalance
	result.BalanceChange = balance.Change
	return result
}

func profitFactor(totalWins, totalLosses float64) float64 {
	switch {
	case totalLosses > 0:
		return totalWins / totalLosses
	case totalWins > 0:
		return ProfitFactorSentinel
	default:
		return 0
	}
}

// maxDrawdown walks trades in the given order. The peak starts at zero, so an
// opening loss already counts as drawdown.
func maxDrawdown(trades []Trade) float64 {
	var peak, cumulative, drawdown float64
	for _, trade := range trades {
		cumulative += trade.Pnl
		peak = math.Max(peak, cumulative)
		drawdown = math.Max(drawdown, peak-cumulative)
	}
	return drawdown
}

// SymbolPerformance groups trades by symbol, best performer first.
func SymbolPerformance(trades []Trade) []SymbolStats {
	index := make(map[string]int)
	wins := make(map[string]int)
	stats := []SymbolStats{}

	for _, trade := range trades {
		i, ok := index[trade.Symbol]
		if !ok {
			i = len(stats)
			index[trade.Symbol] = i
			stats = append(stats, SymbolStats{Symbol: trade.Symbol})
		}
		stats[i].Count++
		stats[i].Pnl += trade.Pnl
		if trade.Pnl > 0 {
			wins[trade.Symbol]++
		}
	}

	for i := range stats {
		stats[i].WinRate = float64(wins[stats[i].Symbol]) / float64(stats[i].Count) * 100
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Pnl != stats[j].Pnl {
			return stats[i].Pnl > stats[j].Pnl
		}
		return stats[i].Symbol < stats[j].Symbol
	})
	return stats
}
