package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trading-journal/internal/service"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/middleware"
	"trading-journal/pkg/utils"

	"gopkg.in/telebot.v3"
)

func (t *TelegramBotHandler) WithContext(handler func(ctx context.Context, c telebot.Context) error) func(c telebot.Context) error {
	return middleware.WithContext(t.ctx, t.cfg.Telegram.TimeoutDuration, handler)
}

func (t *TelegramBotHandler) RegisterHandlers() {
	t.bot.Handle("/start", t.WithContext(t.handleStart))
	t.bot.Handle("/help", t.WithContext(t.handleHelp))
	t.bot.Handle("/link", t.WithContext(t.handleLink))
	t.bot.Handle("/report", t.WithContext(t.handleReport))
	t.bot.Handle("/balance", t.WithContext(t.handleBalance))
	t.bot.Handle("/calendar", t.WithContext(t.handleCalendar))
	t.bot.Handle("/events", t.WithContext(t.handleEvents))
	t.bot.Handle(telebot.OnText, t.WithContext(t.handleTextMessage))
}

func (t *TelegramBotHandler) handleStart(ctx context.Context, c telebot.Context) error {
	sender := c.Sender()
	user, err := t.service.TelegramUserService.Register(ctx, service.TelegramUser{
		ID:           sender.ID,
		Username:     sender.Username,
		FirstName:    sender.FirstName,
		LastName:     sender.LastName,
		LanguageCode: sender.LanguageCode,
		IsBot:        sender.IsBot,
	})
	if err != nil {
		return t.sendInternalError(ctx, c, err)
	}

	journalID := user.JournalUserID
	if payload := strings.TrimSpace(c.Message().Payload); payload != "" {
		if err := t.service.TelegramUserService.Link(ctx, sender.ID, payload); err != nil {
			return t.sendLinkError(ctx, c, err)
		}
		journalID = payload
	}

	greeting := fmt.Sprintf("👋 Hi %s! Reading journal <code>%s</code>.\n\n%s",
		utils.EscapeHTML(sender.FirstName),
		utils.EscapeHTML(journalID),
		messageHelp,
	)
	_, err = t.telegram.Send(ctx, c, greeting, telebot.ModeHTML)
	return err
}

func (t *TelegramBotHandler) handleHelp(ctx context.Context, c telebot.Context) error {
	_, err := t.telegram.Send(ctx, c, messageHelp, telebot.ModeHTML)
	return err
}

func (t *TelegramBotHandler) handleLink(ctx context.Context, c telebot.Context) error {
	journalID := strings.TrimSpace(c.Message().Payload)
	if journalID == "" {
		_, err := t.telegram.Send(ctx, c, "Usage: /link <journal-id>")
		return err
	}
	if err := t.service.TelegramUserService.Link(ctx, c.Sender().ID, journalID); err != nil {
		return t.sendLinkError(ctx, c, err)
	}
	_, err := t.telegram.Send(ctx, c, fmt.Sprintf("🔗 Linked to journal <code>%s</code>.", utils.EscapeHTML(journalID)), telebot.ModeHTML)
	return err
}

func (t *TelegramBotHandler) handleTextMessage(ctx context.Context, c telebot.Context) error {
	if strings.HasPrefix(c.Text(), "/") {
		_, err := t.telegram.Send(ctx, c, "Unknown command. Use /help to see what I can do.")
		return err
	}
	return nil
}

// journalUserID resolves the journal the sender reads, replying with an error when it cannot.
func (t *TelegramBotHandler) journalUserID(ctx context.Context, c telebot.Context) (string, error) {
	id, err := t.service.TelegramUserService.JournalUserID(ctx, c.Sender().ID)
	if err != nil {
		return "", t.sendInternalError(ctx, c, err)
	}
	return id, nil
}

func (t *TelegramBotHandler) sendLinkError(ctx context.Context, c telebot.Context, err error) error {
	if errors.Is(err, service.ErrInvalidInput) {
		_, errSend := t.telegram.Send(ctx, c, "Journal ids may only contain letters, digits and _ . : @ - (max 64).")
		return errSend
	}
	return t.sendInternalError(ctx, c, err)
}

func (t *TelegramBotHandler) sendInternalError(ctx context.Context, c telebot.Context, err error) error {
	t.log.ErrorContext(ctx, "Telegram command failed", logger.ErrorField(err), logger.Field("telegram_id", c.Sender().ID))
	if _, errSend := t.telegram.Send(ctx, c, commonErrorInternal); errSend != nil {
		t.log.ErrorContext(ctx, "Failed to send internal error message", logger.ErrorField(errSend))
	}
	return err
}
