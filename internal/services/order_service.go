package services

import (
	"context"
	"strings"
	"time"

	"farmconnect/internal/models"
	"farmconnect/internal/repositories"
	"farmconnect/pkg/rabbitmq"

	"go.uber.org/zap"
)

// OrderInput is a new order as submitted by a farmer.
type OrderInput struct {
	ProduceName string
	Quantity    float64
	Buyer       string
	Status      string
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateOrder records an order. An empty status means "active".
func (s *OrderService) CreateOrder(ctx context.Context, userID string, input OrderInput) (*models.Order, error) {
	if input.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	status := strings.ToLower(strings.TrimSpace(input.Status))
	if status == "" {
		status = models.OrderStatusActive
	}

	order := &models.Order{
		UserID:      userID,
		ProduceName: strings.TrimSpace(input.ProduceName),
		Quantity:    input.Quantity,
		Buyer:       strings.TrimSpace(input.Buyer),
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(rabbitmq.EventOrderCreated, userID, order); err != nil {
			s.logger.Warn("failed to publish order created event", zap.Uint("order_id", order.ID), zap.Error(err))
		}
	}
	return order, nil
}

// ListOrders returns the user's orders in the order they were created.
func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// GetOrder returns one of the user's orders.
func (s *OrderService) GetOrder(ctx context.Context, userID string, id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, userID, id)
}
