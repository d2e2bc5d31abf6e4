package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"farmconnect/internal/models"
	"farmconnect/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Dashboard(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	produceRepo := new(MockProduceRepository)
	orderRepo := new(MockOrderRepository)
	service := services.NewDashboardService(userRepo, produceRepo, orderRepo, 4)

	at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	userRepo.On("GetByID", ctx, "user-1").Return(&models.User{ID: "user-1", XP: 130, Level: 2}, nil).Once()
	produceRepo.On("ListByUser", ctx, "user-1").Return([]models.Produce{
		{ID: 1, Name: "Tomatoes", Quantity: 10, AddedAt: at},
		{ID: 2, Name: "Carrots", Quantity: 20.5, AddedAt: at.Add(time.Hour)},
	}, nil).Once()
	orderRepo.On("ListByUser", ctx, "user-1").Return([]models.Order{
		{ID: 1, ProduceName: "Tomatoes", Quantity: 5, Status: models.OrderStatusActive, CreatedAt: at.Add(2 * time.Hour)},
		{ID: 2, ProduceName: "Carrots", Quantity: 3, Status: models.OrderStatusCompleted, CreatedAt: at.Add(3 * time.Hour)},
		{ID: 3, ProduceName: "Carrots", Quantity: 1, Status: models.OrderStatusActive, CreatedAt: at.Add(4 * time.Hour)},
	}, nil).Once()

	view, err := service.Dashboard(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, models.Stats{TotalProduce: 2, TotalQuantity: 30.5, ActiveOrders: 2, CompletedOrders: 1}, view.Stats)
	assert.Equal(t, 30, view.Progress.XPIntoLevel)
	require.Len(t, view.Activities, 4)
	assert.Equal(t, "order-3", view.Activities[0].ID)
	assert.Equal(t, "order-2", view.Activities[1].ID)
	assert.Equal(t, "produce-2", view.Activities[2].ID)
	assert.Equal(t, "produce-1", view.Activities[3].ID)

	userRepo.AssertExpectations(t)
	produceRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestDashboardService_ActivitiesAndStats(t *testing.T) {
	ctx := context.Background()
	produceRepo := new(MockProduceRepository)
	orderRepo := new(MockOrderRepository)
	service := services.NewDashboardService(new(MockUserRepository), produceRepo, orderRepo, 4)

	produceRepo.On("ListByUser", ctx, "user-1").Return([]models.Produce{}, nil).Twice()
	orderRepo.On("ListByUser", ctx, "user-1").Return([]models.Order{}, nil).Twice()

	feed, err := service.Activities(ctx, "user-1", 4)
	require.NoError(t, err)
	assert.Empty(t, feed)

	stats, err := service.Stats(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.Stats{}, stats)

	produceRepo.On("ListByUser", ctx, "user-2").Return(nil, errors.New("database error")).Once()
	_, err = service.Stats(ctx, "user-2")
	assert.Error(t, err)
}
