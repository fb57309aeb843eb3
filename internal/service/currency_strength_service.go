package service

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"trading-journal/config"
	"trading-journal/internal/dto"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/common"
	"trading-journal/pkg/logger"
)

type CurrencyStrengthService interface {
	Get(ctx context.Context) ([]dto.CurrencyStrength, error)
}

// strengthBase is the [low, low+spread) band each currency's simulated strength is drawn from.
var strengthBase = map[string][2]float64{
	"USD": {70, 12},
	"EUR": {65, 15},
	"GBP": {62, 14},
	"JPY": {55, 20},
	"AUD": {58, 18},
	"CAD": {60, 16},
	"CHF": {63, 14},
	"NZD": {56, 17},
}

type currencyStrengthService struct {
	cfg           *config.Config
	log           *logger.Logger
	inmemoryCache cache.Cache
	mu            sync.Mutex
	rnd           *rand.Rand
}

// NewCurrencyStrengthService builds the simulated strength meter. A nil rnd seeds from the clock.
func NewCurrencyStrengthService(cfg *config.Config, log *logger.Logger, inmemoryCache cache.Cache, rnd *rand.Rand) CurrencyStrengthService {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &currencyStrengthService{cfg: cfg, log: log, inmemoryCache: inmemoryCache, rnd: rnd}
}

func (s *currencyStrengthService) Get(ctx context.Context) ([]dto.CurrencyStrength, error) {
	if val, found := cache.GetFromCache[[]dto.CurrencyStrength](s.inmemoryCache, common.KEY_CURRENCY_STRENGTH); found {
		return val, nil
	}

	s.mu.Lock()
	out := make([]dto.CurrencyStrength, 0, len(strengthBase))
	for _, currency := range common.GetMajorCurrencies() {
		base := strengthBase[currency]
		strength := base[0] + s.rnd.Float64()*base[1]
		out = append(out, dto.CurrencyStrength{
			Currency: currency,
			Strength: round2(math.Min(100, math.Max(0, strength))),
			Change:   round2(s.rnd.Float64()*4 - 2),
		})
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Strength > out[j].Strength
	})

	s.inmemoryCache.Set(common.KEY_CURRENCY_STRENGTH, out, s.cfg.Cache.DefaultExpiration)
	s.log.DebugContext(ctx, "Generated currency strength", logger.StringField("strongest", out[0].Currency))
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
