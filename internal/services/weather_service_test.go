package services_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"farmconnect/internal/models"
	"farmconnect/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type countingProvider struct {
	calls atomic.Int32
	fail  atomic.Bool
}

func (p *countingProvider) Fetch(ctx context.Context, location string) (models.Weather, error) {
	n := p.calls.Add(1)
	if p.fail.Load() {
		return models.Weather{}, errors.New("provider unavailable")
	}
	return models.Weather{Temperature: int(n), Location: location, ObservedAt: time.Now()}, nil
}

func TestSimulatedWeatherProvider(t *testing.T) {
	provider := services.NewSimulatedWeatherProvider(42)
	valid := map[string]string{"Sunny": "☀️", "Partly Cloudy": "⛅", "Cloudy": "☁️", "Light Rain": "🌦️"}

	for i := 0; i < 50; i++ {
		w, err := provider.Fetch(context.Background(), "Nairobi, Kenya")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, w.Temperature, 22)
		assert.LessOrEqual(t, w.Temperature, 31)
		assert.GreaterOrEqual(t, w.Humidity, 50)
		assert.LessOrEqual(t, w.Humidity, 79)
		assert.Equal(t, valid[w.Condition], w.Emoji)
		assert.Equal(t, "Nairobi, Kenya", w.Location)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := provider.Fetch(ctx, "Nairobi, Kenya")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWeatherService_CurrentCaches(t *testing.T) {
	provider := &countingProvider{}
	service := services.NewWeatherService(provider, "Kisumu", time.Minute, zap.NewNop())

	first, err := service.Current(context.Background())
	require.NoError(t, err)
	second, err := service.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), provider.calls.Load())
	assert.Equal(t, "Kisumu", first.Location)
}

func TestWeatherService_RefreshFailureKeepsReading(t *testing.T) {
	provider := &countingProvider{}
	service := services.NewWeatherService(provider, "Kisumu", time.Minute, zap.NewNop())
	require.NoError(t, service.Refresh(context.Background()))

	provider.fail.Store(true)
	assert.Error(t, service.Refresh(context.Background()))

	w, err := service.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, w.Temperature)
}

func TestWeatherService_RunRefreshesUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	provider := &countingProvider{}
	service := services.NewWeatherService(provider, "Kisumu", 5*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- service.Run(ctx) }()

	assert.Eventually(t, func() bool { return provider.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
