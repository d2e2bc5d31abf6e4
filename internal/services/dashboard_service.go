package services

import (
	"context"

	"farmconnect/internal/dashboard"
	"farmconnect/internal/models"
	"farmconnect/internal/repositories"
)

// DashboardView is everything the dashboard page shows besides the weather.
type DashboardView struct {
	User       *models.User         `json:"user"`
	Progress   models.LevelProgress `json:"progress"`
	Stats      models.Stats         `json:"stats"`
	Activities []models.Activity    `json:"activities"`
}

// DashboardService assembles derived dashboard data from the stored
// produce and orders. Nothing it returns is cached.
type DashboardService struct {
	userRepo    repositories.UserRepository
	produceRepo repositories.ProduceRepository
	orderRepo   repositories.OrderRepository
	feedLimit   int
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(userRepo repositories.UserRepository, produceRepo repositories.ProduceRepository, orderRepo repositories.OrderRepository, feedLimit int) *DashboardService {
	return &DashboardService{
		userRepo:    userRepo,
		produceRepo: produceRepo,
		orderRepo:   orderRepo,
		feedLimit:   feedLimit,
	}
}

// FeedLimit is the default number of activities on the dashboard.
func (s *DashboardService) FeedLimit() int {
	return s.feedLimit
}

// Dashboard builds the full dashboard for the user.
func (s *DashboardService) Dashboard(ctx context.Context, userID string) (*DashboardView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	produce, orders, err := s.collections(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		User:       user,
		Progress:   dashboard.Progress(user.XP),
		Stats:      dashboard.ComputeStats(produce, orders),
		Activities: dashboard.BuildFeed(produce, orders, s.feedLimit),
	}, nil
}

// Activities returns the user's activity feed capped at limit.
func (s *DashboardService) Activities(ctx context.Context, userID string, limit int) ([]models.Activity, error) {
	produce, orders, err := s.collections(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dashboard.BuildFeed(produce, orders, limit), nil
}

// Stats returns the user's summary counters.
func (s *DashboardService) Stats(ctx context.Context, userID string) (models.Stats, error) {
	produce, orders, err := s.collections(ctx, userID)
	if err != nil {
		return models.Stats{}, err
	}
	return dashboard.ComputeStats(produce, orders), nil
}

func (s *DashboardService) collections(ctx context.Context, userID string) ([]models.Produce, []models.Order, error) {
	produce, err := s.produceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return produce, orders, nil
}
