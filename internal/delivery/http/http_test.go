package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trading-journal/config"
	"trading-journal/internal/analytics"
	"trading-journal/internal/dto"
	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/internal/service"
	"trading-journal/pkg/common"
	"trading-journal/pkg/logger"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJournal struct {
	service.JournalService
	lastParam  dto.GetTradesParam
	lastSave   dto.SaveTradeRequest
	lastUser   string
	lastAnchor time.Time
	lastPeriod analytics.Period
	lastLoc    *time.Location
	err        error
}

func (f *fakeJournal) ListTrades(_ context.Context, param dto.GetTradesParam) ([]model.Trade, error) {
	f.lastParam = param
	return []model.Trade{{ID: "t1", UserID: param.UserID, Symbol: "EUR/USD"}}, f.err
}

func (f *fakeJournal) SaveTrade(_ context.Context, userID string, req dto.SaveTradeRequest) (*model.Trade, error) {
	f.lastUser, f.lastSave = userID, req
	if f.err != nil {
		return nil, f.err
	}
	id := req.ID
	if id == "" {
		id = "new-id"
	}
	return &model.Trade{ID: id, UserID: userID, Symbol: req.Symbol}, nil
}

func (f *fakeJournal) DeleteTrade(_ context.Context, userID, id string) error {
	f.lastUser = userID
	return f.err
}

func (f *fakeJournal) ClearMonth(_ context.Context, userID string, year int, month time.Month) (int64, error) {
	f.lastUser = userID
	return 4, f.err
}

func (f *fakeJournal) MonthlyCalendar(_ context.Context, userID string, anchor time.Time) ([]analytics.DailySummary, error) {
	f.lastAnchor = anchor
	return analytics.GenerateDailySummaries(nil, anchor), f.err
}

func (f *fakeJournal) Series(_ context.Context, userID string, period analytics.Period, loc *time.Location) (*dto.SeriesResponse, error) {
	f.lastPeriod = period
	f.lastLoc = loc
	return &dto.SeriesResponse{Period: period}, f.err
}

type fakeCalendar struct {
	service.EconomicCalendarService
	lastFilter dto.EconomicEventFilter
	err        error
}

func (f *fakeCalendar) Events(_ context.Context, filter dto.EconomicEventFilter) (*dto.EconomicCalendarResponse, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return &dto.EconomicCalendarResponse{Events: []dto.EconomicEvent{}}, nil
}

type fakeSettings struct {
	service.SettingsService
}

func (fakeSettings) Get(_ context.Context, userID string) (analytics.Settings, error) {
	return analytics.Settings{InitialBalance: 2500, Currency: "GBP"}, nil
}

func newTestServer(journal *fakeJournal, calendar *fakeCalendar) *echo.Echo {
	cfg := config.Default()
	cfg.API.RateLimitPerSec = 1000
	cfg.API.RateLimitBurst = 1000
	e := echo.New()
	h := NewHttpAPIHandler(context.Background(), cfg, logger.NewNop(), e, goValidator.New(), &service.Service{
		JournalService:          journal,
		SettingsService:         fakeSettings{},
		EconomicCalendarService: calendar,
	})
	h.SetupRoutes()
	return e
}

func do(e *echo.Echo, method, target, body string, withUser bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if withUser {
		req.Header.Set("X-User-ID", "user-1")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_RequireUserHeader(t *testing.T) {
	e := newTestServer(&fakeJournal{}, &fakeCalendar{})

	rec := do(e, http.MethodGet, "/api/v1/trades", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListTrades_Filters(t *testing.T) {
	journal := &fakeJournal{}
	e := newTestServer(journal, &fakeCalendar{})

	rec := do(e, http.MethodGet, "/api/v1/trades?from=2024-03-01&to=2024-03-31&symbol=XAU/USD", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", journal.lastParam.UserID)
	assert.Equal(t, "XAU/USD", journal.lastParam.Symbol)
	require.NotNil(t, journal.lastParam.From)
	require.NotNil(t, journal.lastParam.To)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *journal.lastParam.From)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), *journal.lastParam.To, "to is inclusive")
}

func TestListTrades_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "malformed date", query: "from=03-01-2024"},
		{name: "reversed range", query: "from=2024-03-10&to=2024-03-01"},
		{name: "setup not uuid", query: "setup_id=abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(&fakeJournal{}, &fakeCalendar{})
			rec := do(e, http.MethodGet, "/api/v1/trades?"+tt.query, "", true)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateTrade(t *testing.T) {
	journal := &fakeJournal{}
	e := newTestServer(journal, &fakeCalendar{})
	body := `{"id":"ignored","date":"2024-03-01T09:30:00Z","symbol":"EUR/USD","entry_price":"1.085","exit_price":"1.09","lot_size":"2","direction":"buy","auto_pnl":true}`

	rec := do(e, http.MethodPost, "/api/v1/trades", body, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, journal.lastSave.ID)
	assert.True(t, journal.lastSave.EntryPrice.Equal(decimal.RequireFromString("1.085")))
	assert.True(t, journal.lastSave.AutoPnl)

	var resp struct {
		Data model.Trade `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "new-id", resp.Data.ID)
}

func TestCreateTrade_Validation(t *testing.T) {
	e := newTestServer(&fakeJournal{}, &fakeCalendar{})

	rec := do(e, http.MethodPost, "/api/v1/trades", `{"date":"2024-03-01T09:30:00Z","symbol":"EUR/USD","direction":"hold"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTrade_UsesPathID(t *testing.T) {
	journal := &fakeJournal{}
	e := newTestServer(journal, &fakeCalendar{})
	body := `{"id":"other","date":"2024-03-01T09:30:00Z","symbol":"EUR/USD","entry_price":"1","exit_price":"2","lot_size":"1","direction":"sell"}`

	rec := do(e, http.MethodPut, "/api/v1/trades/abc", body, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", journal.lastSave.ID)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: service.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "missing trade", err: repository.ErrTradeNotFound, want: http.StatusNotFound},
		{name: "missing setup", err: repository.ErrSetupNotFound, want: http.StatusNotFound},
		{name: "unexpected", err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(&fakeJournal{err: tt.err}, &fakeCalendar{})
			rec := do(e, http.MethodDelete, "/api/v1/trades/abc", "", true)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestClearMonth(t *testing.T) {
	e := newTestServer(&fakeJournal{}, &fakeCalendar{})

	rec := do(e, http.MethodDelete, "/api/v1/trades/month/2024/3", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data dto.ClearMonthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dto.ClearMonthResponse{Year: 2024, Month: 3, Deleted: 4}, resp.Data)

	rec = do(e, http.MethodDelete, "/api/v1/trades/month/2024/march", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMonthlyCalendar(t *testing.T) {
	journal := &fakeJournal{}
	e := newTestServer(journal, &fakeCalendar{})

	rec := do(e, http.MethodGet, "/api/v1/calendar?month=2024-02", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data struct {
			Month string            `json:"month"`
			Days  []json.RawMessage `json:"days"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-02", resp.Data.Month)
	assert.Len(t, resp.Data.Days, 29)

	rec = do(e, http.MethodGet, "/api/v1/calendar?month=2024-13", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeries_Period(t *testing.T) {
	journal := &fakeJournal{}
	e := newTestServer(journal, &fakeCalendar{})

	rec := do(e, http.MethodGet, "/api/v1/metrics/series", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, analytics.PeriodDaily, journal.lastPeriod)

	rec = do(e, http.MethodGet, "/api/v1/metrics/series?period=Weekly", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, analytics.PeriodWeekly, journal.lastPeriod)

	rec = do(e, http.MethodGet, "/api/v1/metrics/series?period=hourly", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeries_Location(t *testing.T) {
	journal := &fakeJournal{}
	e := newTestServer(journal, &fakeCalendar{})

	rec := do(e, http.MethodGet, "/api/v1/metrics/series", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.UTC, journal.lastLoc)

	rec = do(e, http.MethodGet, "/api/v1/metrics/series?tz=Asia/Jakarta", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Asia/Jakarta", journal.lastLoc.String())
}

func TestSettings_Get(t *testing.T) {
	e := newTestServer(&fakeJournal{}, &fakeCalendar{})

	rec := do(e, http.MethodGet, "/api/v1/settings", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"currency":"GBP"`)
}

func TestEconomicCalendar(t *testing.T) {
	calendar := &fakeCalendar{}
	e := newTestServer(&fakeJournal{}, calendar)

	rec := do(e, http.MethodGet, "/api/v1/economic-calendar?impact=High&currency=USD&search=cpi", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.EconomicEventFilter{Impact: "High", Currency: "USD", Search: "cpi"}, calendar.lastFilter)

	rec = do(e, http.MethodGet, "/api/v1/economic-calendar?impact=Extreme", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	calendar.err = service.ErrCalendarUnavailable
	rec = do(e, http.MethodGet, "/api/v1/economic-calendar", "", true)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSymbols(t *testing.T) {
	e := newTestServer(&fakeJournal{}, &fakeCalendar{})

	rec := do(e, http.MethodGet, "/api/v1/symbols?category=metals", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data []common.MarketSymbol `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 6)
	assert.Equal(t, "XAU/USD", resp.Data[0].Symbol)

	rec = do(e, http.MethodGet, "/api/v1/symbols", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"symbol":"BTC/USD"`)

	rec = do(e, http.MethodGet, "/api/v1/symbols?category=bonds", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
