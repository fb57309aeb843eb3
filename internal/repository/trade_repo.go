package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"trading-journal/internal/dto"
	"trading-journal/internal/model"
	"trading-journal/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TradeRepository interface {
	Get(ctx context.Context, param dto.GetTradesParam, opts ...utils.DBOption) ([]model.Trade, error)
	FindByID(ctx context.Context, userID, id string, opts ...utils.DBOption) (*model.Trade, error)
	Save(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error
	Delete(ctx context.Context, userID, id string, opts ...utils.DBOption) error
	DeleteBetween(ctx context.Context, userID string, from, to time.Time, opts ...utils.DBOption) (int64, error)
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{
		db: db,
	}
}

// Get returns the user's trades newest first. From is inclusive, To exclusive.
func (r *tradeRepository) Get(ctx context.Context, param dto.GetTradesParam, opts ...utils.DBOption) ([]model.Trade, error) {
	if param.UserID == "" {
		return nil, fmt.Errorf("no user provided")
	}

	qFilter := []string{"user_id = ?"}
	qFilterParam := []interface{}{param.UserID}

	if param.From != nil {
		qFilter = append(qFilter, "date >= ?")
		qFilterParam = append(qFilterParam, *param.From)
	}

	if param.To != nil {
		qFilter = append(qFilter, "date < ?")
		qFilterParam = append(qFilterParam, *param.To)
	}

	if param.Symbol != "" {
		qFilter = append(qFilter, "symbol = ?")
		qFilterParam = append(qFilterParam, param.Symbol)
	}

	if param.SetupID != "" {
		qFilter = append(qFilter, "setup_id = ?")
		qFilterParam = append(qFilterParam, param.SetupID)
	}

	var trades []model.Trade
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	tx = utils.ApplyOptions(tx, utils.WithOrder("date DESC"), utils.WithLimit(param.Limit))
	if err := tx.Where(strings.Join(qFilter, " AND "), qFilterParam...).Find(&trades).Error; err != nil {
		return nil, err
	}

	return trades, nil
}

func (r *tradeRepository) FindByID(ctx context.Context, userID, id string, opts ...utils.DBOption) (*model.Trade, error) {
	if !validID(id) {
		return nil, nil
	}
	var trade model.Trade
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.Where("user_id = ? AND id = ?", userID, id).First(&trade)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &trade, nil
}

// Save inserts the trade when it has no id yet and otherwise overwrites the stored row.
func (r *tradeRepository) Save(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	if trade.ID == "" {
		trade.ID = uuid.NewString()
		return tx.Create(trade).Error
	}
	if !validID(trade.ID) {
		return ErrTradeNotFound
	}

	result := tx.Model(&model.Trade{}).
		Where("user_id = ? AND id = ?", trade.UserID, trade.ID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(trade)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTradeNotFound
	}
	return nil
}

func (r *tradeRepository) Delete(ctx context.Context, userID, id string, opts ...utils.DBOption) error {
	if !validID(id) {
		return ErrTradeNotFound
	}
	result := utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Trade{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTradeNotFound
	}
	return nil
}

func (r *tradeRepository) DeleteBetween(ctx context.Context, userID string, from, to time.Time, opts ...utils.DBOption) (int64, error) {
	result := utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Delete(&model.Trade{})
	return result.RowsAffected, result.Error
}
