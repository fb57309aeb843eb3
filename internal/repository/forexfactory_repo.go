package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"trading-journal/config"
	"trading-journal/internal/dto"
	"trading-journal/pkg/common"
	"trading-journal/pkg/httpclient"
	"trading-journal/pkg/logger"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

type EconomicCalendarSourceRepository interface {
	// Fetch scrapes one calendar week ("this", "next", ...) from ForexFactory.
	Fetch(ctx context.Context, week string) ([]dto.EconomicEvent, error)
}

type forexFactoryRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     httpclient.Client
	requestLimiter *rate.Limiter
	mu             sync.Mutex
	rnd            *rand.Rand
}

func NewForexFactoryRepository(cfg *config.Config, log *logger.Logger) EconomicCalendarSourceRepository {
	return newForexFactoryRepository(cfg, log, httpclient.New(cfg.Calendar.SourceURL, cfg.Calendar.Timeout, cfg.Calendar.Retries))
}

func newForexFactoryRepository(cfg *config.Config, log *logger.Logger, client httpclient.Client) *forexFactoryRepository {
	perMin := cfg.Calendar.MaxRequestPerMin
	if perMin <= 0 {
		perMin = 20
	}
	return &forexFactoryRepository{
		cfg:            cfg,
		log:            log,
		httpClient:     client,
		requestLimiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), 1),
		rnd:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *forexFactoryRepository) userAgent() string {
	agents := r.cfg.Calendar.UserAgents
	if len(agents) == 0 {
		return "Mozilla/5.0"
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return agents[r.rnd.Intn(len(agents))]
}

func (r *forexFactoryRepository) Fetch(ctx context.Context, week string) ([]dto.EconomicEvent, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := map[string]string{}
	if week != "" {
		query["week"] = week
	}
	headers := map[string]string{
		"User-Agent":      r.userAgent(),
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.5",
		"Referer":         "https://www.google.com/",
	}

	resp, err := r.httpClient.Get(ctx, "/calendar", query, headers, nil)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to request ForexFactory calendar", logger.ErrorField(err), logger.StringField("week", week))
		return nil, err
	}
	if err := resp.CheckStatus(); err != nil {
		return nil, fmt.Errorf("forexfactory calendar: %w", err)
	}

	events, err := ParseCalendarHTML(bytes.NewReader(resp.Body))
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to parse ForexFactory calendar", logger.ErrorField(err), logger.StringField("week", week))
		return nil, err
	}

	r.log.DebugContext(ctx, "Scraped ForexFactory calendar",
		logger.StringField("week", week),
		logger.IntField("events", len(events)),
	)
	return events, nil
}

// ParseCalendarHTML extracts events from a ForexFactory calendar page.
// Rows missing a time, currency, event or impact cell are skipped. ForexFactory leaves the time cell
// empty for events sharing the previous row's slot, so the last seen time is carried forward.
func ParseCalendarHTML(r io.Reader) ([]dto.EconomicEvent, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("read calendar html: %w", err)
	}

	table := doc.Find("table.calendar__table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("calendar table not found")
	}

	events := []dto.EconomicEvent{}
	lastTime := ""
	table.Find("tr.calendar__row").Each(func(_ int, row *goquery.Selection) {
		timeCell := row.Find("td.calendar__time")
		currencyCell := row.Find("td.calendar__currency")
		eventCell := row.Find("td.calendar__event")
		impactCell := row.Find("td.calendar__impact")
		if timeCell.Length() == 0 || currencyCell.Length() == 0 || eventCell.Length() == 0 || impactCell.Length() == 0 {
			return
		}

		eventTime := cellText(timeCell)
		if eventTime == "" {
			eventTime = lastTime
		}
		lastTime = eventTime

		events = append(events, dto.EconomicEvent{
			Time:     eventTime,
			Currency: cellText(currencyCell),
			Title:    cellText(eventCell),
			Impact:   parseImpact(impactCell),
			Actual:   optionalText(row.Find("td.calendar__actual")),
			Forecast: optionalText(row.Find("td.calendar__forecast")),
			Previous: optionalText(row.Find("td.calendar__previous")),
		})
	})

	return events, nil
}

func parseImpact(cell *goquery.Selection) string {
	switch {
	case cell.Find("span.high").Length() > 0:
		return common.IMPACT_HIGH
	case cell.Find("span.medium").Length() > 0:
		return common.IMPACT_MEDIUM
	default:
		return common.IMPACT_LOW
	}
}

func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

func optionalText(s *goquery.Selection) *string {
	if s.Length() == 0 {
		return nil
	}
	text := cellText(s)
	if text == "" {
		return nil
	}
	return &text
}
