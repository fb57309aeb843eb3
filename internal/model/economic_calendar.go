package model

import (
	"time"

	"gorm.io/datatypes"
)

// EconomicCalendarCache holds the last scraped event list as a single JSON document.
type EconomicCalendarCache struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Events    datatypes.JSON `gorm:"type:jsonb;not null" json:"events"`
	FetchedAt time.Time      `gorm:"not null" json:"fetched_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (EconomicCalendarCache) TableName() string {
	return "economic_calendar_cache"
}
