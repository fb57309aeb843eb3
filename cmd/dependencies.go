package cmd

import (
	"context"

	"trading-journal/config"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/postgres"
	"trading-journal/pkg/telegram"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap/zapcore"
	"gopkg.in/telebot.v3"
)

type AppDependency struct {
	db          *postgres.DB
	cfg         *config.Config
	log         *logger.Logger
	validator   *goValidator.Validate
	echo        *echo.Echo
	cache       cache.Cache
	telegram    *telegram.TelegramRateLimiter
	telegramBot *telebot.Bot
}

func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	dep := &AppDependency{
		cfg:       cfg,
		validator: goValidator.New(),
		echo:      echo.New(),
		cache:     cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval),
	}

	if cfg.Telegram.BotToken != "" {
		pref := telebot.Settings{
			Token:  cfg.Telegram.BotToken,
			Poller: &telebot.LongPoller{Timeout: cfg.Telegram.PollTimeout},
			OnError: func(err error, c telebot.Context) {
				log.Error("Telegram bot error", logger.ErrorField(err))
			},
		}
		bot, err := telebot.NewBot(pref)
		if err != nil {
			log.Error("Failed to create telegram bot", logger.ErrorField(err))
			return nil, err
		}
		dep.telegramBot = bot
		dep.telegram = telegram.NewTelegramRateLimiter(&cfg.Telegram, log, bot)

		if chatID := cfg.Telegram.AlertChatID; chatID != 0 {
			limiter := dep.telegram
			log = log.WithAlerts(zapcore.ErrorLevel, func(text string) {
				_ = limiter.SendMessageUser(ctx, text, chatID, telebot.ModeHTML)
			})
		}
	} else {
		log.Info("No telegram bot token configured, bot disabled")
	}
	dep.log = log

	db, err := postgres.NewDB(cfg.DB, log)
	if err != nil {
		log.Error("Failed to connect to database", logger.ErrorField(err))
		return nil, err
	}
	dep.db = db

	return dep, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	defer func() { _ = d.log.Sync() }()
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
