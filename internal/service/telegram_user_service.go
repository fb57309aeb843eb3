package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/common"
	"trading-journal/pkg/logger"
)

var journalUserIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.:@-]{1,64}$`)

// TelegramUser is the sender information the bot hands over on /start.
type TelegramUser struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	LanguageCode string
	IsBot        bool
}

type TelegramUserService interface {
	// Register creates the user on first contact and refreshes last activity afterwards.
	Register(ctx context.Context, sender TelegramUser) (*model.User, error)
	Link(ctx context.Context, telegramID int64, journalUserID string) error
	// JournalUserID resolves which journal a telegram account reads.
	JournalUserID(ctx context.Context, telegramID int64) (string, error)
}

type telegramUserService struct {
	log           *logger.Logger
	inmemoryCache cache.Cache
	userRepo      repository.UserRepository
	now           func() time.Time
}

func NewTelegramUserService(log *logger.Logger, inmemoryCache cache.Cache, userRepo repository.UserRepository) TelegramUserService {
	return &telegramUserService{log: log, inmemoryCache: inmemoryCache, userRepo: userRepo, now: time.Now}
}

func (s *telegramUserService) Register(ctx context.Context, sender TelegramUser) (*model.User, error) {
	user, err := s.userRepo.GetUserByTelegramID(ctx, sender.ID)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to get user", logger.ErrorField(err), logger.Field("telegram_id", sender.ID))
		return nil, err
	}

	now := s.now().UTC()
	if user != nil {
		if err := s.userRepo.Touch(ctx, sender.ID, now); err != nil {
			s.log.WarnContext(ctx, "Failed to update last activity", logger.ErrorField(err), logger.Field("telegram_id", sender.ID))
		}
		user.LastActiveAt = now
		return user, nil
	}

	user = &model.User{
		TelegramID:    sender.ID,
		JournalUserID: model.DefaultJournalUserID(sender.ID),
		Username:      sender.Username,
		FirstName:     sender.FirstName,
		LastName:      sender.LastName,
		LanguageCode:  sender.LanguageCode,
		IsBot:         sender.IsBot,
		LastActiveAt:  now,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		s.log.ErrorContext(ctx, "Failed to create user", logger.ErrorField(err), logger.Field("telegram_id", sender.ID))
		return nil, err
	}
	s.log.InfoContext(ctx, "Registered telegram user", logger.Field("telegram_id", sender.ID), logger.StringField("username", sender.Username))
	return user, nil
}

func (s *telegramUserService) Link(ctx context.Context, telegramID int64, journalUserID string) error {
	if !journalUserIDPattern.MatchString(journalUserID) {
		return invalidf("journal user id %q is not valid", journalUserID)
	}
	if err := s.userRepo.UpdateJournalUserID(ctx, telegramID, journalUserID); err != nil {
		s.log.ErrorContext(ctx, "Failed to link journal", logger.ErrorField(err), logger.Field("telegram_id", telegramID))
		return err
	}
	s.inmemoryCache.Delete(s.cacheKey(telegramID))
	return nil
}

func (s *telegramUserService) JournalUserID(ctx context.Context, telegramID int64) (string, error) {
	if id, found := cache.GetFromCache[string](s.inmemoryCache, s.cacheKey(telegramID)); found {
		return id, nil
	}

	user, err := s.userRepo.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		return "", err
	}
	id := model.DefaultJournalUserID(telegramID)
	if user != nil && user.JournalUserID != "" {
		id = user.JournalUserID
	}
	s.inmemoryCache.Set(s.cacheKey(telegramID), id, time.Hour)
	return id, nil
}

func (s *telegramUserService) cacheKey(telegramID int64) string {
	return fmt.Sprintf(common.KEY_TELEGRAM_USER_LINK, telegramID)
}
