package services

import (
	"context"

	"print3d-backend/internal/dto"
	"print3d-backend/internal/repositories"

	"go.uber.org/zap"
)

type PortfolioServiceInterface interface {
	GetPublicPortfolio(ctx context.Context) ([]dto.PublicPortfolioItemDTO, error)
	GetPortfolio(ctx context.Context) ([]dto.PortfolioItemDTO, error)
	CreatePortfolioItem(ctx context.Context, payload dto.CreatePortfolioItemDTO) (uint64, error)
	UpdatePortfolioItem(ctx context.Context, payload dto.UpdatePortfolioItemDTO) error
	DeletePortfolioItem(ctx context.Context, id uint64) error
}

type PortfolioService struct {
	portfolioRepository repositories.PortfolioRepositoryInterface
	logger              *zap.Logger
}

func NewPortfolioService(portfolioRepository repositories.PortfolioRepositoryInterface, logger *zap.Logger) PortfolioServiceInterface {
	return &PortfolioService{
		portfolioRepository: portfolioRepository,
		logger:              logger,
	}
}

func (s *PortfolioService) GetPublicPortfolio(ctx context.Context) ([]dto.PublicPortfolioItemDTO, error) {
	return s.portfolioRepository.GetPublicPortfolio(ctx)
}

func (s *PortfolioService) GetPortfolio(ctx context.Context) ([]dto.PortfolioItemDTO, error) {
	return s.portfolioRepository.GetPortfolio(ctx)
}

func (s *PortfolioService) CreatePortfolioItem(ctx context.Context, payload dto.CreatePortfolioItemDTO) (uint64, error) {
	newID, err := s.portfolioRepository.CreatePortfolioItem(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании работы портфолио", zap.Error(err))
		return 0, err
	}
	s.logger.Info("Работа портфолио создана", zap.Uint64("id", newID), zap.String("title", payload.Title))
	return newID, nil
}

func (s *PortfolioService) UpdatePortfolioItem(ctx context.Context, payload dto.UpdatePortfolioItemDTO) error {
	if err := s.portfolioRepository.UpdatePortfolioItem(ctx, payload); err != nil {
		return err
	}
	s.logger.Info("Работа портфолио обновлена", zap.Uint64("id", payload.ID))
	return nil
}

func (s *PortfolioService) DeletePortfolioItem(ctx context.Context, id uint64) error {
	if err := s.portfolioRepository.DeletePortfolioItem(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Работа портфолио удалена", zap.Uint64("id", id))
	return nil
}
