package repository

import (
	"context"
	"errors"
	"fmt"

	"trading-journal/config"
	"trading-journal/internal/model"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/common"
	"trading-journal/pkg/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TradingSettingRepository interface {
	// Get never returns nil: a user without a stored row gets the configured defaults.
	Get(ctx context.Context, userID string, opts ...utils.DBOption) (*model.TradingSetting, error)
	Save(ctx context.Context, setting *model.TradingSetting, opts ...utils.DBOption) error
}

type tradingSettingRepository struct {
	cfg           *config.Config
	inmemoryCache cache.Cache
	db            *gorm.DB
}

func NewTradingSettingRepository(cfg *config.Config, inmemoryCache cache.Cache, db *gorm.DB) TradingSettingRepository {
	return &tradingSettingRepository{cfg: cfg, inmemoryCache: inmemoryCache, db: db}
}

func (r *tradingSettingRepository) cacheKey(userID string) string {
	return fmt.Sprintf(common.KEY_TRADING_SETTINGS, userID)
}

func (r *tradingSettingRepository) defaults(userID string) *model.TradingSetting {
	return &model.TradingSetting{
		UserID:         userID,
		InitialBalance: decimal.NewFromFloat(r.cfg.Journal.DefaultInitialBalance),
		Currency:       r.cfg.Journal.DefaultCurrency,
	}
}

func (r *tradingSettingRepository) Get(ctx context.Context, userID string, opts ...utils.DBOption) (*model.TradingSetting, error) {
	if val, found := cache.GetFromCache[model.TradingSetting](r.inmemoryCache, r.cacheKey(userID)); found {
		return &val, nil
	}

	var setting model.TradingSetting
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	if err := tx.Where("user_id = ?", userID).First(&setting).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		setting = *r.defaults(userID)
	}

	r.inmemoryCache.Set(r.cacheKey(userID), setting, r.cfg.Cache.SettingsExpDuration)
	return &setting, nil
}

func (r *tradingSettingRepository) Save(ctx context.Context, setting *model.TradingSetting, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"initial_balance", "currency", "updated_at"}),
	}).Create(setting).Error
	if err != nil {
		return err
	}
	r.inmemoryCache.Delete(r.cacheKey(setting.UserID))
	return nil
}
