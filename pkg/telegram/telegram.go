package telegram

import (
	"context"
	"strconv"
	"sync"
	"time"

	"trading-journal/config"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/ratelimit"
	"trading-journal/pkg/utils"

	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"
)

// Sender is the part of *telebot.Bot the limiter drives.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// TelegramRateLimiter keeps outgoing messages within Telegram's global and per-chat limits.
type TelegramRateLimiter struct {
	cfg           *config.TelegramConfig
	log           *logger.Logger
	bot           Sender
	globalLimiter *rate.Limiter
	userLimiters  *ratelimit.LimiterStore
	wg            sync.WaitGroup
}

func NewTelegramRateLimiter(cfg *config.TelegramConfig, log *logger.Logger, bot Sender) *TelegramRateLimiter {
	global := cfg.MaxGlobalRequestPerSecond
	if global <= 0 {
		global = 30
	}
	perUser := cfg.MaxUserRequestPerSecond
	if perUser <= 0 {
		perUser = 1
	}
	return &TelegramRateLimiter{
		cfg:           cfg,
		log:           log,
		bot:           bot,
		globalLimiter: rate.NewLimiter(rate.Limit(global), global),
		userLimiters:  ratelimit.NewLimiterStore(rate.Limit(perUser), perUser),
	}
}

// Send replies in the chat of the incoming update.
func (t *TelegramRateLimiter) Send(ctx context.Context, c telebot.Context, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	if err := t.checkRateLimit(ctx, c.Chat().ID); err != nil {
		return nil, err
	}
	return t.bot.Send(c.Chat(), what, opts...)
}

// SendMessageUser pushes a message to a chat outside of an update, e.g. from the scheduler.
func (t *TelegramRateLimiter) SendMessageUser(ctx context.Context, message string, chatID int64, opts ...interface{}) error {
	if err := t.checkRateLimit(ctx, chatID); err != nil {
		return err
	}
	if _, err := t.bot.Send(&telebot.User{ID: chatID}, message, opts...); err != nil {
		t.log.ErrorContext(ctx, "Failed to send message", logger.ErrorField(err), logger.Field("chat_id", chatID))
		return err
	}
	return nil
}

func (t *TelegramRateLimiter) checkRateLimit(ctx context.Context, chatID int64) error {
	if err := t.globalLimiter.Wait(ctx); err != nil {
		t.log.ErrorContext(ctx, "Failed to wait for global rate limit", logger.ErrorField(err))
		return err
	}
	if err := t.userLimiters.GetLimiter(strconv.FormatInt(chatID, 10)).Wait(ctx); err != nil {
		t.log.ErrorContext(ctx, "Failed to wait for user rate limit", logger.ErrorField(err))
		return err
	}
	return nil
}

// StartCleanupExpired drops idle per-chat limiters until ctx is done.
func (t *TelegramRateLimiter) StartCleanupExpired(ctx context.Context) {
	interval := t.cfg.RateLimitCleanupDuration
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	t.wg.Add(1)
	utils.GoSafe(func() {
		defer t.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				t.log.Info("Received signal to stop Telegram rate limiter cleanup expired")
				return
			case <-ticker.C:
				if removed := t.userLimiters.Prune(t.cfg.RateLimitExpireDuration); removed > 0 {
					t.log.Debug("Pruned idle telegram limiters", logger.IntField("removed", removed))
				}
			}
		}
	})
}

func (t *TelegramRateLimiter) StopCleanupExpired() {
	t.wg.Wait()
	t.log.Info("Telegram rate limiter stopped")
}
