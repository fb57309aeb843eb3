package service

import (
	"context"
	"time"

	"trading-journal/config"
	"trading-journal/internal/analytics"
	"trading-journal/internal/dto"
	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/metrics"
	"trading-journal/pkg/utils"

	"github.com/shopspring/decimal"
)

type JournalService interface {
	ListTrades(ctx context.Context, param dto.GetTradesParam) ([]model.Trade, error)
	SaveTrade(ctx context.Context, userID string, req dto.SaveTradeRequest) (*model.Trade, error)
	DeleteTrade(ctx context.Context, userID, id string) error
	ClearMonth(ctx context.Context, userID string, year int, month time.Month) (int64, error)
	MonthlyCalendar(ctx context.Context, userID string, anchor time.Time) ([]analytics.DailySummary, error)
	Metrics(ctx context.Context, param dto.GetTradesParam) (*dto.PerformanceResponse, error)
	Series(ctx context.Context, userID string, period analytics.Period, loc *time.Location) (*dto.SeriesResponse, error)
	SymbolBreakdown(ctx context.Context, param dto.GetTradesParam) ([]analytics.SymbolStats, error)
}

type journalService struct {
	cfg             *config.Config
	log             *logger.Logger
	tradeRepo       repository.TradeRepository
	setupRepo       repository.TradingSetupRepository
	settingsService SettingsService
}

func NewJournalService(
	cfg *config.Config,
	log *logger.Logger,
	tradeRepo repository.TradeRepository,
	setupRepo repository.TradingSetupRepository,
	settingsService SettingsService,
) JournalService {
	return &journalService{
		cfg:             cfg,
		log:             log,
		tradeRepo:       tradeRepo,
		setupRepo:       setupRepo,
		settingsService: settingsService,
	}
}

func (s *journalService) ListTrades(ctx context.Context, param dto.GetTradesParam) ([]model.Trade, error) {
	trades, err := s.tradeRepo.Get(ctx, param)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to get trades", logger.ErrorField(err), logger.StringField("user_id", param.UserID))
		return nil, err
	}
	return trades, nil
}

func (s *journalService) SaveTrade(ctx context.Context, userID string, req dto.SaveTradeRequest) (*model.Trade, error) {
	if !req.EntryPrice.IsPositive() || !req.ExitPrice.IsPositive() {
		return nil, invalidf("entry and exit price must be positive")
	}
	if !req.LotSize.IsPositive() {
		return nil, invalidf("lot size must be positive")
	}
	direction := analytics.Direction(req.Direction)
	if direction != analytics.DirectionBuy && direction != analytics.DirectionSell {
		return nil, invalidf("direction must be buy or sell")
	}

	if req.SetupID != nil && *req.SetupID != "" {
		setup, err := s.setupRepo.FindByID(ctx, userID, *req.SetupID)
		if err != nil {
			s.log.ErrorContext(ctx, "Failed to look up trading setup", logger.ErrorField(err), logger.StringField("setup_id", *req.SetupID))
			return nil, err
		}
		if setup == nil {
			return nil, invalidf("unknown setup %s", *req.SetupID)
		}
	} else {
		req.SetupID = nil
	}

	session := req.Session
	if session == "" {
		session = analytics.ClassifySession(req.Date)
	}

	var pnl decimal.Decimal
	if req.AutoPnl || req.Pnl == nil {
		pnl = analytics.CalculatePnl(direction, req.EntryPrice, req.ExitPrice, req.LotSize)
	} else {
		pnl = req.Pnl.Round(2)
	}

	trade := &model.Trade{
		ID:         req.ID,
		UserID:     userID,
		Date:       req.Date.UTC(),
		Symbol:     req.Symbol,
		EntryPrice: req.EntryPrice,
		ExitPrice:  req.ExitPrice,
		LotSize:    req.LotSize,
		Direction:  string(direction),
		Pnl:        pnl,
		Notes:      req.Notes,
		Screenshot: req.Screenshot,
		Session:    session,
		SetupID:    req.SetupID,
	}
	if err := s.tradeRepo.Save(ctx, trade); err != nil {
		s.log.ErrorContext(ctx, "Failed to save trade", logger.ErrorField(err), logger.StringField("user_id", userID), logger.StringField("trade_id", req.ID))
		return nil, err
	}

	metrics.TradesSaved.WithLabelValues(string(direction)).Inc()
	s.log.InfoContext(ctx, "Trade saved",
		logger.StringField("user_id", userID),
		logger.StringField("trade_id", trade.ID),
		logger.StringField("symbol", trade.Symbol),
		logger.StringField("pnl", trade.Pnl.String()),
	)
	return trade, nil
}

func (s *journalService) DeleteTrade(ctx context.Context, userID, id string) error {
	if err := s.tradeRepo.Delete(ctx, userID, id); err != nil {
		s.log.ErrorContext(ctx, "Failed to delete trade", logger.ErrorField(err), logger.StringField("trade_id", id))
		return err
	}
	metrics.TradesDeleted.Inc()
	return nil
}

func (s *journalService) ClearMonth(ctx context.Context, userID string, year int, month time.Month) (int64, error) {
	if month < time.January || month > time.December {
		return 0, invalidf("month must be between 1 and 12")
	}
	from, to := utils.MonthRange(year, month, time.UTC)
	deleted, err := s.tradeRepo.DeleteBetween(ctx, userID, from, to)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to clear month", logger.ErrorField(err), logger.IntField("year", year), logger.IntField("month", int(month)))
		return 0, err
	}
	metrics.TradesDeleted.Add(float64(deleted))
	s.log.InfoContext(ctx, "Cleared month",
		logger.StringField("user_id", userID),
		logger.IntField("year", year),
		logger.IntField("month", int(month)),
		logger.Field("deleted", deleted),
	)
	return deleted, nil
}

func (s *journalService) MonthlyCalendar(ctx context.Context, userID string, anchor time.Time) ([]analytics.DailySummary, error) {
	from, to := utils.MonthRange(anchor.Year(), anchor.Month(), anchor.Location())
	trades, err := s.ListTrades(ctx, dto.GetTradesParam{UserID: userID, From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	return analytics.GenerateDailySummaries(model.ToAnalyticsTrades(trades), anchor), nil
}

func (s *journalService) Metrics(ctx context.Context, param dto.GetTradesParam) (*dto.PerformanceResponse, error) {
	settings, err := s.settingsService.Get(ctx, param.UserID)
	if err != nil {
		return nil, err
	}
	trades, err := s.ListTrades(ctx, param)
	if err != nil {
		return nil, err
	}
	return &dto.PerformanceResponse{
		Metrics:  analytics.ComputeMetrics(model.ToAnalyticsTrades(trades), settings.InitialBalance),
		Currency: settings.Currency,
	}, nil
}

func (s *journalService) Series(ctx context.Context, userID string, period analytics.Period, loc *time.Location) (*dto.SeriesResponse, error) {
	trades, err := s.ListTrades(ctx, dto.GetTradesParam{UserID: userID})
	if err != nil {
		return nil, err
	}
	points := analytics.Bucketize(model.ToAnalyticsTrades(trades), period, loc)
	minY, maxY := analytics.AxisDomain(points)
	return &dto.SeriesResponse{
		Period: period,
		Points: points,
		Domain: [2]float64{minY, maxY},
	}, nil
}

func (s *journalService) SymbolBreakdown(ctx context.Context, param dto.GetTradesParam) ([]analytics.SymbolStats, error) {
	trades, err := s.ListTrades(ctx, param)
	if err != nil {
		return nil, err
	}
	return analytics.SymbolPerformance(model.ToAnalyticsTrades(trades)), nil
}
