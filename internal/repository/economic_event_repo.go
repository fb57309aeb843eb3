package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trading-journal/internal/dto"
	"trading-journal/internal/model"
	"trading-journal/pkg/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EconomicEventRepository interface {
	// Latest returns the cached events and when they were fetched. A zero time means nothing is cached.
	Latest(ctx context.Context, opts ...utils.DBOption) ([]dto.EconomicEvent, time.Time, error)
	Replace(ctx context.Context, events []dto.EconomicEvent, fetchedAt time.Time, opts ...utils.DBOption) error
}

type economicEventRepository struct {
	db *gorm.DB
}

func NewEconomicEventRepository(db *gorm.DB) EconomicEventRepository {
	return &economicEventRepository{db: db}
}

func (r *economicEventRepository) Latest(ctx context.Context, opts ...utils.DBOption) ([]dto.EconomicEvent, time.Time, error) {
	var row model.EconomicCalendarCache
	err := utils.ApplyOptions(r.db.WithContext(ctx), opts...).Order("fetched_at DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, time.Time{}, nil
		}
		return nil, time.Time{}, err
	}

	var events []dto.EconomicEvent
	if err := json.Unmarshal(row.Events, &events); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode cached events: %w", err)
	}
	return events, row.FetchedAt, nil
}

// Replace swaps the single cache row. Callers run it inside UnitOfWork.Run.
func (r *economicEventRepository) Replace(ctx context.Context, events []dto.EconomicEvent, fetchedAt time.Time, opts ...utils.DBOption) error {
	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}

	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	if err := tx.Where("1 = 1").Delete(&model.EconomicCalendarCache{}).Error; err != nil {
		return err
	}
	return tx.Create(&model.EconomicCalendarCache{
		Events:    datatypes.JSON(payload),
		FetchedAt: fetchedAt,
	}).Error
}
