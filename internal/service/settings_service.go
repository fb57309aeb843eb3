package service

import (
	"context"
	"strings"
	"unicode"

	"trading-journal/internal/analytics"
	"trading-journal/internal/dto"
	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/pkg/logger"

	"github.com/shopspring/decimal"
)

type SettingsService interface {
	Get(ctx context.Context, userID string) (analytics.Settings, error)
	Save(ctx context.Context, userID string, req dto.SaveSettingsRequest) (analytics.Settings, error)
}

type settingsService struct {
	log         *logger.Logger
	settingRepo repository.TradingSettingRepository
}

func NewSettingsService(log *logger.Logger, settingRepo repository.TradingSettingRepository) SettingsService {
	return &settingsService{log: log, settingRepo: settingRepo}
}

func (s *settingsService) Get(ctx context.Context, userID string) (analytics.Settings, error) {
	setting, err := s.settingRepo.Get(ctx, userID)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to get trading settings", logger.ErrorField(err), logger.StringField("user_id", userID))
		return analytics.Settings{}, err
	}
	return toSettings(setting), nil
}

func (s *settingsService) Save(ctx context.Context, userID string, req dto.SaveSettingsRequest) (analytics.Settings, error) {
	if req.InitialBalance < 0 {
		return analytics.Settings{}, invalidf("initial balance must not be negative")
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if !isCurrencyCode(currency) {
		return analytics.Settings{}, invalidf("currency must be a 3-letter code, got %q", req.Currency)
	}

	setting := &model.TradingSetting{
		UserID:         userID,
		InitialBalance: decimal.NewFromFloat(req.InitialBalance).Round(2),
		Currency:       currency,
	}
	if err := s.settingRepo.Save(ctx, setting); err != nil {
		s.log.ErrorContext(ctx, "Failed to save trading settings", logger.ErrorField(err), logger.StringField("user_id", userID))
		return analytics.Settings{}, err
	}

	s.log.InfoContext(ctx, "Trading settings saved",
		logger.StringField("user_id", userID),
		logger.StringField("currency", currency),
	)
	return toSettings(setting), nil
}

func toSettings(setting *model.TradingSetting) analytics.Settings {
	return analytics.Settings{
		InitialBalance: setting.InitialBalance.InexactFloat64(),
		Currency:       setting.Currency,
	}
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !unicode.IsUpper(r) || r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
