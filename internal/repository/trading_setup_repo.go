package repository

import (
	"context"
	"errors"

	"trading-journal/internal/model"
	"trading-journal/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TradingSetupRepository interface {
	List(ctx context.Context, userID string, opts ...utils.DBOption) ([]model.TradingSetup, error)
	FindByID(ctx context.Context, userID, id string, opts ...utils.DBOption) (*model.TradingSetup, error)
	Save(ctx context.Context, setup *model.TradingSetup, opts ...utils.DBOption) error
	Delete(ctx context.Context, userID, id string, opts ...utils.DBOption) error
}

type tradingSetupRepository struct {
	db *gorm.DB
}

func NewTradingSetupRepository(db *gorm.DB) TradingSetupRepository {
	return &tradingSetupRepository{db: db}
}

func (r *tradingSetupRepository) List(ctx context.Context, userID string, opts ...utils.DBOption) ([]model.TradingSetup, error) {
	var setups []model.TradingSetup
	opts = append([]utils.DBOption{utils.WithOrder("created_at DESC")}, opts...)
	if err := utils.ApplyOptions(r.db.WithContext(ctx), opts...).Where("user_id = ?", userID).Find(&setups).Error; err != nil {
		return nil, err
	}
	return setups, nil
}

func (r *tradingSetupRepository) FindByID(ctx context.Context, userID, id string, opts ...utils.DBOption) (*model.TradingSetup, error) {
	if !validID(id) {
		return nil, nil
	}
	var setup model.TradingSetup
	err := utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Where("user_id = ? AND id = ?", userID, id).
		First(&setup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setup, nil
}

func (r *tradingSetupRepository) Save(ctx context.Context, setup *model.TradingSetup, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	if setup.ID == "" {
		setup.ID = uuid.NewString()
		return tx.Create(setup).Error
	}
	if !validID(setup.ID) {
		return ErrSetupNotFound
	}

	result := tx.Model(&model.TradingSetup{}).
		Where("user_id = ? AND id = ?", setup.UserID, setup.ID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(setup)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSetupNotFound
	}
	return nil
}

// Delete removes the setup and detaches it from any trade that referenced it.
func (r *tradingSetupRepository) Delete(ctx context.Context, userID, id string, opts ...utils.DBOption) error {
	if !validID(id) {
		return ErrSetupNotFound
	}
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	if err := tx.Model(&model.Trade{}).
		Where("user_id = ? AND setup_id = ?", userID, id).
		Update("setup_id", nil).Error; err != nil {
		return err
	}

	result := tx.Where("user_id = ? AND id = ?", userID, id).Delete(&model.TradingSetup{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSetupNotFound
	}
	return nil
}
