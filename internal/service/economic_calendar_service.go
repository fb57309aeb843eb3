package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"trading-journal/config"
	"trading-journal/internal/dto"
	"trading-journal/internal/repository"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/common"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/metrics"
	"trading-journal/pkg/utils"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var ErrCalendarUnavailable = errors.New("economic calendar unavailable")

type EconomicCalendarService interface {
	// Events serves the cached calendar while it is fresh, scrapes otherwise and
	// falls back to the stale copy when scraping fails.
	Events(ctx context.Context, filter dto.EconomicEventFilter) (*dto.EconomicCalendarResponse, error)
	Refresh(ctx context.Context) (*dto.EconomicCalendarResponse, error)
}

type economicCalendarService struct {
	cfg           *config.Config
	log           *logger.Logger
	inmemoryCache cache.Cache
	sourceRepo    repository.EconomicCalendarSourceRepository
	eventRepo     repository.EconomicEventRepository
	unitOfWork    repository.UnitOfWork
	group         singleflight.Group
	now           func() time.Time
}

func NewEconomicCalendarService(
	cfg *config.Config,
	log *logger.Logger,
	inmemoryCache cache.Cache,
	sourceRepo repository.EconomicCalendarSourceRepository,
	eventRepo repository.EconomicEventRepository,
	unitOfWork repository.UnitOfWork,
) *economicCalendarService {
	return &economicCalendarService{
		cfg:           cfg,
		log:           log,
		inmemoryCache: inmemoryCache,
		sourceRepo:    sourceRepo,
		eventRepo:     eventRepo,
		unitOfWork:    unitOfWork,
		now:           time.Now,
	}
}

func (s *economicCalendarService) Events(ctx context.Context, filter dto.EconomicEventFilter) (*dto.EconomicCalendarResponse, error) {
	resp, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := *resp
	out.Events = FilterEvents(resp.Events, filter)
	return &out, nil
}

func (s *economicCalendarService) load(ctx context.Context) (*dto.EconomicCalendarResponse, error) {
	if resp, found := cache.GetFromCache[dto.EconomicCalendarResponse](s.inmemoryCache, common.KEY_ECONOMIC_CALENDAR); found {
		resp.Cached = true
		return &resp, nil
	}

	events, fetchedAt, err := s.eventRepo.Latest(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "Failed to read cached economic calendar", logger.ErrorField(err))
	}
	hasCache := err == nil && !fetchedAt.IsZero()

	if hasCache {
		if age := s.now().Sub(fetchedAt); age < s.cfg.Calendar.Freshness {
			resp := dto.EconomicCalendarResponse{Events: events, LastUpdated: fetchedAt, Cached: true}
			s.inmemoryCache.Set(common.KEY_ECONOMIC_CALENDAR, resp, s.cfg.Calendar.Freshness-age)
			return &resp, nil
		}
	}

	fresh, err := s.Refresh(ctx)
	if err == nil {
		return fresh, nil
	}

	if hasCache {
		metrics.CalendarScrapes.WithLabelValues("stale").Inc()
		s.log.WarnContext(ctx, "Serving stale economic calendar",
			logger.ErrorField(err),
			logger.TimeField("fetched_at", fetchedAt),
		)
		return &dto.EconomicCalendarResponse{Events: events, LastUpdated: fetchedAt, Cached: true, Stale: true}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
}

// Refresh scrapes every configured week concurrently and replaces the stored calendar.
// Concurrent callers share one scrape, which outlives the caller that started it.
func (s *economicCalendarService) Refresh(ctx context.Context) (*dto.EconomicCalendarResponse, error) {
	v, err, _ := s.group.Do("refresh", func() (interface{}, error) {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.refreshTimeout())
		defer cancel()
		return s.refresh(sctx)
	})
	if err != nil {
		return nil, err
	}
	resp := v.(dto.EconomicCalendarResponse)
	return &resp, nil
}

func (s *economicCalendarService) refreshTimeout() time.Duration {
	if s.cfg.Calendar.RefreshTimeout > 0 {
		return s.cfg.Calendar.RefreshTimeout
	}
	return time.Minute
}

func (s *economicCalendarService) refresh(ctx context.Context) (dto.EconomicCalendarResponse, error) {
	start := time.Now()
	defer func() {
		metrics.CalendarScrapeDuration.Observe(time.Since(start).Seconds())
	}()

	weeks := s.cfg.Calendar.Weeks
	if len(weeks) == 0 {
		weeks = []string{""}
	}

	results := make([][]dto.EconomicEvent, len(weeks))
	g, gctx := errgroup.WithContext(ctx)
	for i, week := range weeks {
		i, week := i, week
		g.Go(func() error {
			events, err := s.sourceRepo.Fetch(gctx, week)
			if err != nil {
				return fmt.Errorf("scrape week %q: %w", week, err)
			}
			results[i] = events
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.CalendarScrapes.WithLabelValues("error").Inc()
		s.log.ErrorContext(ctx, "Failed to scrape economic calendar", logger.ErrorField(err), logger.AlertField())
		return dto.EconomicCalendarResponse{}, err
	}

	events := []dto.EconomicEvent{}
	for _, r := range results {
		events = append(events, r...)
	}

	fetchedAt := s.now().UTC()
	err := s.unitOfWork.Run(ctx, func(opts ...utils.DBOption) error {
		return s.eventRepo.Replace(ctx, events, fetchedAt, opts...)
	})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to store economic calendar", logger.ErrorField(err))
		return dto.EconomicCalendarResponse{}, err
	}

	resp := dto.EconomicCalendarResponse{Events: events, LastUpdated: fetchedAt}
	s.inmemoryCache.Set(common.KEY_ECONOMIC_CALENDAR, resp, s.cfg.Calendar.Freshness)
	metrics.CalendarScrapes.WithLabelValues("ok").Inc()
	s.log.InfoContext(ctx, "Economic calendar refreshed",
		logger.IntField("events", len(events)),
		logger.IntField("weeks", len(weeks)),
	)
	return resp, nil
}

// FilterEvents keeps events matching every non-empty filter field. Search matches title or currency.
func FilterEvents(events []dto.EconomicEvent, filter dto.EconomicEventFilter) []dto.EconomicEvent {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]dto.EconomicEvent, 0, len(events))
	for _, e := range events {
		if filter.Impact != "" && !strings.EqualFold(e.Impact, filter.Impact) {
			continue
		}
		if filter.Currency != "" && !strings.EqualFold(e.Currency, filter.Currency) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Title), search) &&
			!strings.Contains(strings.ToLower(e.Currency), search) {
			continue
		}
		out = append(out, e)
	}
	return out
}
