package services

import (
	"context"

	"print3d-backend/internal/dto"
	"print3d-backend/internal/repositories"

	"go.uber.org/zap"
)

type OrderServiceInterface interface {
	GetOrders(ctx context.Context) ([]dto.OrderDTO, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, status string) error
}

type OrderService struct {
	orderRepository repositories.OrderRepositoryInterface
	logger          *zap.Logger
}

func NewOrderService(orderRepository repositories.OrderRepositoryInterface, logger *zap.Logger) OrderServiceInterface {
	return &OrderService{
		orderRepository: orderRepository,
		logger:          logger,
	}
}

func (s *OrderService) GetOrders(ctx context.Context) ([]dto.OrderDTO, error) {
	return s.orderRepository.GetOrders(ctx)
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uint64, status string) error {
	if err := s.orderRepository.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return err
	}
	s.logger.Info("Статус заявки обновлён", zap.Uint64("order_id", orderID), zap.String("status", status))
	return nil
}
