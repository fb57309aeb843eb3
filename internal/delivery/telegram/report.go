package telegram

import (
	"context"
	"strings"
	"time"

	"trading-journal/internal/analytics"
	"trading-journal/internal/dto"
	"trading-journal/pkg/common"
	"trading-journal/pkg/utils"

	"gopkg.in/telebot.v3"
)

const maxEventsPerMessage = 15

func (t *TelegramBotHandler) handleReport(ctx context.Context, c telebot.Context) error {
	userID, err := t.journalUserID(ctx, c)
	if err != nil {
		return err
	}

	resp, err := t.service.JournalService.Metrics(ctx, dto.GetTradesParam{UserID: userID})
	if err != nil {
		return t.sendInternalError(ctx, c, err)
	}
	if resp.Metrics.TotalTrades == 0 {
		_, err := t.telegram.Send(ctx, c, messageNoTrades, telebot.ModeHTML)
		return err
	}

	symbols, err := t.service.JournalService.SymbolBreakdown(ctx, dto.GetTradesParam{UserID: userID})
	if err != nil {
		return t.sendInternalError(ctx, c, err)
	}

	_, err = t.telegram.Send(ctx, c, FormatReport(resp.Metrics, resp.Currency, symbols), telebot.ModeHTML)
	return err
}

func (t *TelegramBotHandler) handleBalance(ctx context.Context, c telebot.Context) error {
	userID, err := t.journalUserID(ctx, c)
	if err != nil {
		return err
	}

	resp, err := t.service.JournalService.Metrics(ctx, dto.GetTradesParam{UserID: userID})
	if err != nil {
		return t.sendInternalError(ctx, c, err)
	}
	settings := analytics.Settings{InitialBalance: resp.Metrics.InitialBalance, Currency: resp.Currency}

	_, err = t.telegram.Send(ctx, c, FormatBalance(analytics.BalanceOverlay(resp.Metrics.TotalPnl, settings)), telebot.ModeHTML)
	return err
}

func (t *TelegramBotHandler) handleCalendar(ctx context.Context, c telebot.Context) error {
	anchor, err := utils.ParseMonth(strings.TrimSpace(c.Message().Payload), time.UTC, time.Now())
	if err != nil {
		_, errSend := t.telegram.Send(ctx, c, "Usage: /calendar [YYYY-MM]")
		return errSend
	}

	userID, err := t.journalUserID(ctx, c)
	if err != nil {
		return err
	}
	days, err := t.service.JournalService.MonthlyCalendar(ctx, userID, anchor)
	if err != nil {
		return t.sendInternalError(ctx, c, err)
	}
	settings, err := t.service.SettingsService.Get(ctx, userID)
	if err != nil {
		return t.sendInternalError(ctx, c, err)
	}

	_, err = t.telegram.Send(ctx, c, FormatCalendar(anchor, days, settings.Currency), telebot.ModeHTML)
	return err
}

func (t *TelegramBotHandler) handleEvents(ctx context.Context, c telebot.Context) error {
	filter := dto.EconomicEventFilter{}
	if impact := strings.TrimSpace(c.Message().Payload); impact != "" {
		for _, candidate := range common.GetImpactList() {
			if strings.EqualFold(candidate, impact) {
				filter.Impact = candidate
			}
		}
		if filter.Impact == "" {
			_, err := t.telegram.Send(ctx, c, "Usage: /events [high|medium|low]")
			return err
		}
	}

	resp, err := t.service.EconomicCalendarService.Events(ctx, filter)
	if err != nil {
		return t.sendInternalError(ctx, c, err)
	}

	_, err = t.telegram.Send(ctx, c, FormatEvents(resp, maxEventsPerMessage), telebot.ModeHTML)
	return err
}
