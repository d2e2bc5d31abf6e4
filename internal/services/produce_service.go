package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"farmconnect/internal/dashboard"
	"farmconnect/internal/models"
	"farmconnect/internal/repositories"
	"farmconnect/pkg/rabbitmq"

	"go.uber.org/zap"
)

// ProduceInput is a new produce entry as submitted by a farmer.
type ProduceInput struct {
	Name     string
	Quantity float64
	Location string
}

// ProduceService records produce and rewards farmers with XP for it.
type ProduceService struct {
	tx           repositories.Transactor
	produceRepo  repositories.ProduceRepository
	userRepo     repositories.UserRepository
	publisher    EventPublisher
	logger       *zap.Logger
	xpPerProduce int
}

// NewProduceService creates a new ProduceService. publisher may be nil.
func NewProduceService(tx repositories.Transactor, produceRepo repositories.ProduceRepository, userRepo repositories.UserRepository, publisher EventPublisher, xpPerProduce int, logger *zap.Logger) *ProduceService {
	return &ProduceService{
		tx:           tx,
		produceRepo:  produceRepo,
		userRepo:     userRepo,
		publisher:    publisher,
		logger:       logger,
		xpPerProduce: xpPerProduce,
	}
}

// AddProduce stores a produce entry for the user and awards XP in one
// transaction, returning both the entry and the updated user.
func (s *ProduceService) AddProduce(ctx context.Context, userID string, input ProduceInput) (*models.Produce, *models.User, error) {
	if input.Quantity < 0 {
		return nil, nil, ErrInvalidQuantity
	}

	before, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load user: %w", err)
	}

	produce := &models.Produce{
		UserID:   userID,
		Name:     strings.TrimSpace(input.Name),
		Quantity: input.Quantity,
		Location: strings.TrimSpace(input.Location),
		AddedAt:  time.Now().UTC(),
	}
	var updated *models.User
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.produceRepo.Create(ctx, produce); err != nil {
			return fmt.Errorf("failed to create produce: %w", err)
		}
		user, err := s.userRepo.AddXP(ctx, userID, s.xpPerProduce)
		if err != nil {
			return fmt.Errorf("failed to award xp: %w", err)
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	produce.Emoji = dashboard.ProduceEmoji(produce.Name)

	if updated.Level > before.Level {
		s.logger.Info("user levelled up", zap.String("user_id", userID), zap.Int("level", updated.Level))
	}

	s.publish(rabbitmq.EventProduceAdded, userID, produce)
	return produce, updated, nil
}

// ListProduce returns the user's produce in the order it was added.
func (s *ProduceService) ListProduce(ctx context.Context, userID string) ([]models.Produce, error) {
	produce, err := s.produceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range produce {
		produce[i].Emoji = dashboard.ProduceEmoji(produce[i].Name)
	}
	return produce, nil
}

func (s *ProduceService) publish(eventType, userID string, payload interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(eventType, userID, payload); err != nil {
		s.logger.Warn("failed to publish event", zap.String("type", eventType), zap.Error(err))
	}
}
