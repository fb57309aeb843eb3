package service

import (
	"context"
	"strings"

	"trading-journal/internal/dto"
	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/utils"
)

type SetupService interface {
	List(ctx context.Context, userID string) ([]model.TradingSetup, error)
	Get(ctx context.Context, userID, id string) (*model.TradingSetup, error)
	Save(ctx context.Context, userID string, req dto.SaveSetupRequest) (*model.TradingSetup, error)
	Delete(ctx context.Context, userID, id string) error
}

type setupService struct {
	log        *logger.Logger
	setupRepo  repository.TradingSetupRepository
	unitOfWork repository.UnitOfWork
}

func NewSetupService(log *logger.Logger, setupRepo repository.TradingSetupRepository, unitOfWork repository.UnitOfWork) SetupService {
	return &setupService{log: log, setupRepo: setupRepo, unitOfWork: unitOfWork}
}

func (s *setupService) List(ctx context.Context, userID string) ([]model.TradingSetup, error) {
	setups, err := s.setupRepo.List(ctx, userID)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to list trading setups", logger.ErrorField(err), logger.StringField("user_id", userID))
		return nil, err
	}
	return setups, nil
}

// Get returns repository.ErrSetupNotFound when the user owns no setup with that id.
func (s *setupService) Get(ctx context.Context, userID, id string) (*model.TradingSetup, error) {
	setup, err := s.setupRepo.FindByID(ctx, userID, id)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to get trading setup", logger.ErrorField(err), logger.StringField("setup_id", id))
		return nil, err
	}
	if setup == nil {
		return nil, repository.ErrSetupNotFound
	}
	return setup, nil
}

func (s *setupService) Save(ctx context.Context, userID string, req dto.SaveSetupRequest) (*model.TradingSetup, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidf("setup name is required")
	}
	if req.WinRate < 0 || req.WinRate > 100 {
		return nil, invalidf("win rate must be between 0 and 100")
	}
	if req.RiskReward < 0 {
		return nil, invalidf("risk reward must not be negative")
	}

	tags := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	setup := &model.TradingSetup{
		ID:          req.ID,
		UserID:      userID,
		Name:        name,
		Description: req.Description,
		MarketType:  req.MarketType,
		Timeframe:   req.Timeframe,
		RiskReward:  req.RiskReward,
		WinRate:     req.WinRate,
		Notes:       req.Notes,
		ImageURL:    req.ImageURL,
		Tags:        tags,
	}
	if err := s.setupRepo.Save(ctx, setup); err != nil {
		s.log.ErrorContext(ctx, "Failed to save trading setup", logger.ErrorField(err), logger.StringField("user_id", userID))
		return nil, err
	}
	return setup, nil
}

// Delete runs in one transaction so trades never point at a removed setup.
func (s *setupService) Delete(ctx context.Context, userID, id string) error {
	err := s.unitOfWork.Run(ctx, func(opts ...utils.DBOption) error {
		return s.setupRepo.Delete(ctx, userID, id, opts...)
	})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to delete trading setup", logger.ErrorField(err), logger.StringField("setup_id", id))
		return err
	}
	return nil
}
