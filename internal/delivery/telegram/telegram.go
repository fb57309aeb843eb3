package telegram

import (
	"context"
	"time"

	"trading-journal/config"
	"trading-journal/internal/service"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/telegram"

	"gopkg.in/telebot.v3"
)

type TelegramBotHandler struct {
	ctx      context.Context
	cfg      *config.Config
	bot      *telebot.Bot
	log      *logger.Logger
	telegram *telegram.TelegramRateLimiter
	service  *service.Service
}

// NewTelegramBotHandler wires the bot commands. A nil bot turns Start and Stop into no-ops.
func NewTelegramBotHandler(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	bot *telebot.Bot,
	telegram *telegram.TelegramRateLimiter,
	service *service.Service) *TelegramBotHandler {
	return &TelegramBotHandler{
		ctx:      ctx,
		cfg:      cfg,
		log:      log,
		bot:      bot,
		telegram: telegram,
		service:  service,
	}
}

// Start blocks while the bot long-polls for updates.
func (t *TelegramBotHandler) Start() {
	if t.bot == nil {
		t.log.Info("Telegram bot is disabled")
		return
	}

	t.log.Info("Starting Telegram bot...", logger.StringField("username", t.bot.Me.Username))
	t.RegisterHandlers()
	t.telegram.StartCleanupExpired(t.ctx)
	t.bot.Start()
}

func (t *TelegramBotHandler) Stop() {
	if t.bot == nil {
		return
	}
	t.log.Info("Stopping Telegram bot...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stopDone := make(chan struct{})
	go func() {
		t.bot.Stop()
		close(stopDone)
	}()

	select {
	case <-stopDone:
		t.log.Info("Telegram bot stopped successfully")
	case <-ctx.Done():
		t.log.Warn("Timeout while stopping bot, forcing shutdown")
	}

	t.telegram.StopCleanupExpired()
	t.log.Info("Telegram bot shutdown completed")
}
