package service

import (
	"trading-journal/config"
	"trading-journal/internal/repository"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/logger"
)

type Service struct {
	JournalService          JournalService
	SettingsService         SettingsService
	SetupService            SetupService
	EconomicCalendarService EconomicCalendarService
	CurrencyStrengthService CurrencyStrengthService
	TelegramUserService     TelegramUserService
	SchedulerService        SchedulerService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	settingsService := NewSettingsService(log, repo.TradingSettingRepo)
	journalService := NewJournalService(cfg, log, repo.TradeRepo, repo.TradingSetupRepo, settingsService)
	calendarService := NewEconomicCalendarService(cfg, log, inmemoryCache, repo.EconomicCalendarRepo, repo.EconomicEventRepo, repo.UnitOfWork)

	return &Service{
		JournalService:          journalService,
		SettingsService:         settingsService,
		SetupService:            NewSetupService(log, repo.TradingSetupRepo, repo.UnitOfWork),
		EconomicCalendarService: calendarService,
		CurrencyStrengthService: NewCurrencyStrengthService(cfg, log, inmemoryCache, nil),
		TelegramUserService:     NewTelegramUserService(log, inmemoryCache, repo.UserRepo),
		SchedulerService:        NewSchedulerService(cfg, log, calendarService),
	}
}
