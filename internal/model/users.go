package model

import (
	"strconv"
	"time"
)

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TelegramID    int64     `gorm:"not null;uniqueIndex" json:"telegram_id"`
	JournalUserID string    `gorm:"not null" json:"journal_user_id"`
	Username      string    `json:"username"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	LanguageCode  string    `json:"language_code"`
	IsBot         bool      `gorm:"not null" json:"is_bot"`
	LastActiveAt  time.Time `gorm:"not null" json:"last_active_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// DefaultJournalUserID is the journal a telegram user reads when they never linked one.
func DefaultJournalUserID(telegramID int64) string {
	return "tg-" + strconv.FormatInt(telegramID, 10)
}
