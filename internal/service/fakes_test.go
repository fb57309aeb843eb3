package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"trading-journal/internal/dto"
	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fakeTradeRepo struct {
	mu     sync.Mutex
	trades map[string]model.Trade
}

func newFakeTradeRepo(trades ...model.Trade) *fakeTradeRepo {
	r := &fakeTradeRepo{trades: map[string]model.Trade{}}
	for _, t := range trades {
		r.trades[t.ID] = t
	}
	return r
}

func (r *fakeTradeRepo) Get(_ context.Context, param dto.GetTradesParam, _ ...utils.DBOption) ([]model.Trade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Trade{}
	for _, t := range r.trades {
		if t.UserID != param.UserID {
			continue
		}
		if param.From != nil && t.Date.Before(*param.From) {
			continue
		}
		if param.To != nil && !t.Date.Before(*param.To) {
			continue
		}
		if param.Symbol != "" && t.Symbol != param.Symbol {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeTradeRepo) FindByID(_ context.Context, userID, id string, _ ...utils.DBOption) (*model.Trade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trades[id]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeTradeRepo) Save(_ context.Context, trade *model.Trade, _ ...utils.DBOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if trade.ID == "" {
		trade.ID = uuid.NewString()
	} else if existing, ok := r.trades[trade.ID]; !ok || existing.UserID != trade.UserID {
		return repository.ErrTradeNotFound
	}
	r.trades[trade.ID] = *trade
	return nil
}

func (r *fakeTradeRepo) Delete(_ context.Context, userID, id string, _ ...utils.DBOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trades[id]
	if !ok || t.UserID != userID {
		return repository.ErrTradeNotFound
	}
	delete(r.trades, id)
	return nil
}

func (r *fakeTradeRepo) DeleteBetween(_ context.Context, userID string, from, to time.Time, _ ...utils.DBOption) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, t := range r.trades {
		if t.UserID == userID && !t.Date.Before(from) && t.Date.Before(to) {
			delete(r.trades, id)
			n++
		}
	}
	return n, nil
}

type fakeSetupRepo struct {
	setups map[string]model.TradingSetup
	saved  int
}

func (r *fakeSetupRepo) List(_ context.Context, userID string, _ ...utils.DBOption) ([]model.TradingSetup, error) {
	out := []model.TradingSetup{}
	for _, s := range r.setups {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSetupRepo) FindByID(_ context.Context, userID, id string, _ ...utils.DBOption) (*model.TradingSetup, error) {
	s, ok := r.setups[id]
	if !ok || s.UserID != userID {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSetupRepo) Save(_ context.Context, setup *model.TradingSetup, _ ...utils.DBOption) error {
	if r.setups == nil {
		r.setups = map[string]model.TradingSetup{}
	}
	if setup.ID == "" {
		setup.ID = uuid.NewString()
	} else if _, ok := r.setups[setup.ID]; !ok {
		return repository.ErrSetupNotFound
	}
	r.setups[setup.ID] = *setup
	r.saved++
	return nil
}

func (r *fakeSetupRepo) Delete(_ context.Context, userID, id string, opts ...utils.DBOption) error {
	s, ok := r.setups[id]
	if !ok || s.UserID != userID {
		return repository.ErrSetupNotFound
	}
	delete(r.setups, id)
	return nil
}

type fakeSettingRepo struct {
	settings map[string]model.TradingSetting
}

func (r *fakeSettingRepo) Get(_ context.Context, userID string, _ ...utils.DBOption) (*model.TradingSetting, error) {
	if s, ok := r.settings[userID]; ok {
		return &s, nil
	}
	return &model.TradingSetting{UserID: userID, InitialBalance: decimal.NewFromInt(10000), Currency: "USD"}, nil
}

func (r *fakeSettingRepo) Save(_ context.Context, setting *model.TradingSetting, _ ...utils.DBOption) error {
	if r.settings == nil {
		r.settings = map[string]model.TradingSetting{}
	}
	r.settings[setting.UserID] = *setting
	return nil
}

type fakeEventRepo struct {
	events    []dto.EconomicEvent
	fetchedAt time.Time
	replaced  int
}

func (r *fakeEventRepo) Latest(_ context.Context, _ ...utils.DBOption) ([]dto.EconomicEvent, time.Time, error) {
	return r.events, r.fetchedAt, nil
}

func (r *fakeEventRepo) Replace(_ context.Context, events []dto.EconomicEvent, fetchedAt time.Time, _ ...utils.DBOption) error {
	r.events, r.fetchedAt = events, fetchedAt
	r.replaced++
	return nil
}

type fakeSourceRepo struct {
	mu    sync.Mutex
	weeks map[string][]dto.EconomicEvent
	err   error
	calls int
}

func (r *fakeSourceRepo) Fetch(ctx context.Context, week string) ([]dto.EconomicEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.weeks[week], nil
}

type fakeUnitOfWork struct {
	runs int
}

func (u *fakeUnitOfWork) Run(_ context.Context, fn func(opts ...utils.DBOption) error) error {
	u.runs++
	return fn()
}

type fakeUserRepo struct {
	users   map[int64]model.User
	touched int
}

func (r *fakeUserRepo) GetUserByTelegramID(_ context.Context, telegramID int64, _ ...utils.DBOption) (*model.User, error) {
	u, ok := r.users[telegramID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User, _ ...utils.DBOption) error {
	if r.users == nil {
		r.users = map[int64]model.User{}
	}
	user.ID = uint(len(r.users) + 1)
	r.users[user.TelegramID] = *user
	return nil
}

func (r *fakeUserRepo) UpdateJournalUserID(_ context.Context, telegramID int64, journalUserID string, _ ...utils.DBOption) error {
	u := r.users[telegramID]
	u.JournalUserID = journalUserID
	r.users[telegramID] = u
	return nil
}

func (r *fakeUserRepo) Touch(_ context.Context, telegramID int64, at time.Time, _ ...utils.DBOption) error {
	r.touched++
	return nil
}
