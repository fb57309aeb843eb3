package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"trading-journal/config"
	"trading-journal/internal/analytics"
	"trading-journal/internal/dto"
	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSetupID = "5f0c3b8e-3d7a-4a43-9d61-0c1f4a3e2b10"

func newTestJournal(trades ...model.Trade) (JournalService, *fakeTradeRepo, *fakeSettingRepo) {
	tradeRepo := newFakeTradeRepo(trades...)
	setupRepo := &fakeSetupRepo{setups: map[string]model.TradingSetup{
		testSetupID: {ID: testSetupID, UserID: "u1", Name: "London breakout"},
	}}
	settingRepo := &fakeSettingRepo{}
	log := logger.NewNop()
	svc := NewJournalService(config.Default(), log, tradeRepo, setupRepo, NewSettingsService(log, settingRepo))
	return svc, tradeRepo, settingRepo
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func storedTrade(id, date string, pnl string) model.Trade {
	d, err := time.Parse(time.RFC3339, date)
	if err != nil {
		panic(err)
	}
	return model.Trade{
		ID:         id,
		UserID:     "u1",
		Date:       d,
		Symbol:     "EUR/USD",
		EntryPrice: dec("1"),
		ExitPrice:  dec("1"),
		LotSize:    dec("1"),
		Direction:  "buy",
		Pnl:        dec(pnl),
	}
}

func validTradeRequest() dto.SaveTradeRequest {
	return dto.SaveTradeRequest{
		Date:       time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		Symbol:     "EUR/USD",
		EntryPrice: dec("1.0850"),
		ExitPrice:  dec("1.0900"),
		LotSize:    dec("2"),
		Direction:  "buy",
	}
}

func TestSaveTrade_DerivesSessionAndPnl(t *testing.T) {
	svc, repo, _ := newTestJournal()

	got, err := svc.SaveTrade(context.Background(), "u1", validTradeRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, analytics.SessionEuropean, got.Session)
	assert.True(t, dec("1").Equal(got.Pnl), "pnl %s", got.Pnl)
	assert.Nil(t, got.SetupID)
	assert.Len(t, repo.trades, 1)
}

func TestSaveTrade_ExplicitPnlAndSession(t *testing.T) {
	svc, _, _ := newTestJournal()
	req := validTradeRequest()
	pnl := dec("-12.345")
	req.Pnl = &pnl
	req.Session = analytics.SessionAsian
	setup := testSetupID
	req.SetupID = &setup

	got, err := svc.SaveTrade(context.Background(), "u1", req)

	require.NoError(t, err)
	assert.True(t, dec("-12.35").Equal(got.Pnl), "pnl %s", got.Pnl)
	assert.Equal(t, analytics.SessionAsian, got.Session)
	require.NotNil(t, got.SetupID)
	assert.Equal(t, testSetupID, *got.SetupID)
}

func TestSaveTrade_AutoPnlOverridesProvidedPnl(t *testing.T) {
	svc, _, _ := newTestJournal()
	req := validTradeRequest()
	pnl := dec("500")
	req.Pnl = &pnl
	req.AutoPnl = true
	req.Direction = "sell"

	got, err := svc.SaveTrade(context.Background(), "u1", req)

	require.NoError(t, err)
	assert.True(t, dec("-1").Equal(got.Pnl), "pnl %s", got.Pnl)
}

func TestSaveTrade_Invalid(t *testing.T) {
	unknown := "0b5f1f0e-7c1e-4a9b-8f4e-1d2c3b4a5f60"
	tests := []struct {
		name   string
		mutate func(r *dto.SaveTradeRequest)
	}{
		{name: "zero entry", mutate: func(r *dto.SaveTradeRequest) { r.EntryPrice = decimal.Zero }},
		{name: "negative exit", mutate: func(r *dto.SaveTradeRequest) { r.ExitPrice = dec("-1") }},
		{name: "zero lot", mutate: func(r *dto.SaveTradeRequest) { r.LotSize = decimal.Zero }},
		{name: "bad direction", mutate: func(r *dto.SaveTradeRequest) { r.Direction = "long" }},
		{name: "unknown setup", mutate: func(r *dto.SaveTradeRequest) { r.SetupID = &unknown }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestJournal()
			req := validTradeRequest()
			tt.mutate(&req)

			_, err := svc.SaveTrade(context.Background(), "u1", req)

			assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
			assert.Empty(t, repo.trades)
		})
	}
}

func TestSaveTrade_UpdateMissing(t *testing.T) {
	svc, _, _ := newTestJournal()
	req := validTradeRequest()
	req.ID = "missing"

	_, err := svc.SaveTrade(context.Background(), "u1", req)

	assert.ErrorIs(t, err, repository.ErrTradeNotFound)
}

func TestDeleteTrade(t *testing.T) {
	svc, repo, _ := newTestJournal(storedTrade("a", "2024-03-01T09:00:00Z", "10"))

	assert.ErrorIs(t, svc.DeleteTrade(context.Background(), "u2", "a"), repository.ErrTradeNotFound)
	require.NoError(t, svc.DeleteTrade(context.Background(), "u1", "a"))
	assert.Empty(t, repo.trades)
}

func TestClearMonth(t *testing.T) {
	svc, repo, _ := newTestJournal(
		storedTrade("feb", "2024-02-29T23:59:00Z", "1"),
		storedTrade("mar1", "2024-03-01T00:00:00Z", "2"),
		storedTrade("mar31", "2024-03-31T23:00:00Z", "3"),
		storedTrade("apr", "2024-04-01T00:00:00Z", "4"),
	)

	deleted, err := svc.ClearMonth(context.Background(), "u1", 2024, time.March)

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Contains(t, repo.trades, "feb")
	assert.Contains(t, repo.trades, "apr")

	_, err = svc.ClearMonth(context.Background(), "u1", 2024, time.Month(13))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMonthlyCalendar(t *testing.T) {
	svc, _, _ := newTestJournal(
		storedTrade("a", "2024-03-01T09:00:00Z", "100"),
		storedTrade("b", "2024-03-01T14:00:00Z", "-30"),
		storedTrade("c", "2024-04-02T03:00:00Z", "20"),
	)

	days, err := svc.MonthlyCalendar(context.Background(), "u1", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, days, 31)
	assert.Equal(t, analytics.DayProfit, days[0].Status)
	assert.InDelta(t, 70, days[0].TotalPnl, 1e-9)
	assert.Len(t, days[0].Trades, 2)
	assert.Equal(t, analytics.DayNoTrade, days[1].Status)
}

func TestMetricsUsesStoredSettings(t *testing.T) {
	svc, _, settings := newTestJournal(
		storedTrade("a", "2024-03-01T09:00:00Z", "100"),
		storedTrade("b", "2024-03-01T14:00:00Z", "-30"),
		storedTrade("c", "2024-03-02T03:00:00Z", "20"),
	)
	settings.settings = map[string]model.TradingSetting{
		"u1": {UserID: "u1", InitialBalance: dec("5000"), Currency: "EUR"},
	}

	got, err := svc.Metrics(context.Background(), dto.GetTradesParam{UserID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, 3, got.Metrics.TotalTrades)
	assert.InDelta(t, 90, got.Metrics.TotalPnl, 1e-9)
	assert.InDelta(t, 30, got.Metrics.MaxDrawdown, 1e-9)
	assert.InDelta(t, 5090, got.Metrics.CurrentBalance, 1e-9)
	assert.InDelta(t, 1.8, got.Metrics.BalanceChange, 1e-9)
}

func TestSeries(t *testing.T) {
	svc, _, _ := newTestJournal(
		storedTrade("a", "2024-03-01T09:00:00Z", "50"),
		storedTrade("b", "2024-03-02T09:00:00Z", "-100"),
	)

	got, err := svc.Series(context.Background(), "u1", analytics.PeriodDaily, time.UTC)

	require.NoError(t, err)
	require.Len(t, got.Points, 2)
	assert.Equal(t, "2024-03-01", got.Points[0].Date)
	assert.InDelta(t, -50, got.Points[1].CumulativePnl, 1e-9)
	assert.InDelta(t, -55, got.Domain[0], 1e-9)
	assert.InDelta(t, 55, got.Domain[1], 1e-9)
}

func TestSeries_DaysMatchCalendar(t *testing.T) {
	late := storedTrade("late", "2024-03-01T20:00:00Z", "40")
	late.Date = late.Date.In(time.FixedZone("WIB", 7*60*60))
	svc, _, _ := newTestJournal(late)

	utc, err := svc.Series(context.Background(), "u1", analytics.PeriodDaily, time.UTC)
	require.NoError(t, err)
	days, err := svc.MonthlyCalendar(context.Background(), "u1", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, utc.Points, 1)
	assert.Equal(t, "2024-03-01", utc.Points[0].Date)
	assert.Equal(t, analytics.DayProfit, days[0].Status)

	jakarta, err := svc.Series(context.Background(), "u1", analytics.PeriodDaily, time.FixedZone("WIB", 7*60*60))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02", jakarta.Points[0].Date)
}

func TestSymbolBreakdown(t *testing.T) {
	gold := storedTrade("g", "2024-03-01T09:00:00Z", "-10")
	gold.Symbol = "XAU/USD"
	svc, _, _ := newTestJournal(storedTrade("e", "2024-03-01T10:00:00Z", "25"), gold)

	got, err := svc.SymbolBreakdown(context.Background(), dto.GetTradesParam{UserID: "u1"})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "EUR/USD", got[0].Symbol)
	assert.Equal(t, "XAU/USD", got[1].Symbol)
}
