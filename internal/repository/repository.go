package repository

import (
	"trading-journal/config"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	TradeRepo            TradeRepository
	TradingSettingRepo   TradingSettingRepository
	TradingSetupRepo     TradingSetupRepository
	EconomicEventRepo    EconomicEventRepository
	EconomicCalendarRepo EconomicCalendarSourceRepository
	UserRepo             UserRepository
	UnitOfWork           UnitOfWork
}

func NewRepository(cfg *config.Config, inmemoryCache cache.Cache, db *gorm.DB, log *logger.Logger) *Repository {
	return &Repository{
		TradeRepo:            NewTradeRepository(db),
		TradingSettingRepo:   NewTradingSettingRepository(cfg, inmemoryCache, db),
		TradingSetupRepo:     NewTradingSetupRepository(db),
		EconomicEventRepo:    NewEconomicEventRepository(db),
		EconomicCalendarRepo: NewForexFactoryRepository(cfg, log),
		UserRepo:             NewUserRepository(db),
		UnitOfWork:           NewUnitOfWork(db),
	}
}
