package services

import (
	"context"

	"print3d-backend/internal/dto"
	"print3d-backend/internal/repositories"

	"go.uber.org/zap"
)

type ClientServiceInterface interface {
	GetPublicClients(ctx context.Context) ([]dto.PublicClientDTO, error)
	GetClients(ctx context.Context) ([]dto.ClientDTO, error)
	CreateClient(ctx context.Context, payload dto.CreateClientDTO) (uint64, error)
	UpdateClient(ctx context.Context, payload dto.UpdateClientDTO) error
	DeleteClient(ctx context.Context, id uint64) error
}

type ClientService struct {
	clientRepository repositories.ClientRepositoryInterface
	logger           *zap.Logger
}

func NewClientService(clientRepository repositories.ClientRepositoryInterface, logger *zap.Logger) ClientServiceInterface {
	return &ClientService{
		clientRepository: clientRepository,
		logger:           logger,
	}
}

func (s *ClientService) GetPublicClients(ctx context.Context) ([]dto.PublicClientDTO, error) {
	return s.clientRepository.GetPublicClients(ctx)
}

func (s *ClientService) GetClients(ctx context.Context) ([]dto.ClientDTO, error) {
	return s.clientRepository.GetClients(ctx)
}

func (s *ClientService) CreateClient(ctx context.Context, payload dto.CreateClientDTO) (uint64, error) {
	newID, err := s.clientRepository.CreateClient(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании клиента", zap.Error(err))
		return 0, err
	}
	s.logger.Info("Клиент создан", zap.Uint64("id", newID), zap.String("name", payload.Name))
	return newID, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, payload dto.UpdateClientDTO) error {
	if err := s.clientRepository.UpdateClient(ctx, payload); err != nil {
		return err
	}
	s.logger.Info("Клиент обновлён", zap.Uint64("id", payload.ID))
	return nil
}

func (s *ClientService) DeleteClient(ctx context.Context, id uint64) error {
	if err := s.clientRepository.DeleteClient(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Клиент удалён", zap.Uint64("id", id))
	return nil
}
