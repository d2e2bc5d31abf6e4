package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"farmconnect/internal/models"

	"go.uber.org/zap"
)

// WeatherProvider fetches a current reading for a location.
type WeatherProvider interface {
	Fetch(ctx context.Context, location string) (models.Weather, error)
}

type weatherCondition struct {
	name  string
	emoji string
}

var simulatedConditions = []weatherCondition{
	{"Sunny", "☀️"},
	{"Partly Cloudy", "⛅"},
	{"Cloudy", "☁️"},
	{"Light Rain", "🌦️"},
}

// SimulatedWeatherProvider produces plausible East African readings
// without calling an external API.
type SimulatedWeatherProvider struct {
	rnd *rand.Rand
	mu  sync.Mutex
}

// NewSimulatedWeatherProvider creates a provider seeded with seed.
func NewSimulatedWeatherProvider(seed int64) *SimulatedWeatherProvider {
	return &SimulatedWeatherProvider{rnd: rand.New(rand.NewSource(seed))}
}

// Fetch returns a random reading: 22-31 °C, 50-79 % humidity.
func (p *SimulatedWeatherProvider) Fetch(ctx context.Context, location string) (models.Weather, error) {
	if err := ctx.Err(); err != nil {
		return models.Weather{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	cond := simulatedConditions[p.rnd.Intn(len(simulatedConditions))]
	return models.Weather{
		Temperature: 22 + p.rnd.Intn(10),
		Humidity:    50 + p.rnd.Intn(30),
		Condition:   cond.name,
		Emoji:       cond.emoji,
		Location:    location,
		ObservedAt:  time.Now().UTC(),
	}, nil
}

// WeatherService keeps the latest reading for the configured location.
type WeatherService struct {
	provider WeatherProvider
	location string
	interval time.Duration
	logger   *zap.Logger

	mu      sync.RWMutex
	current *models.Weather
}

// NewWeatherService creates a new WeatherService.
func NewWeatherService(provider WeatherProvider, location string, interval time.Duration, logger *zap.Logger) *WeatherService {
	return &WeatherService{
		provider: provider,
		location: location,
		interval: interval,
		logger:   logger,
	}
}

// Current returns the cached reading, fetching one if none exists yet.
func (s *WeatherService) Current(ctx context.Context) (models.Weather, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current != nil {
		return *current, nil
	}

	if err := s.Refresh(ctx); err != nil {
		return models.Weather{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.current, nil
}

// Refresh fetches a new reading and caches it.
func (s *WeatherService) Refresh(ctx context.Context) error {
	w, err := s.provider.Fetch(ctx, s.location)
	if err != nil {
		return fmt.Errorf("failed to fetch weather for %s: %w", s.location, err)
	}
	s.mu.Lock()
	s.current = &w
	s.mu.Unlock()
	return nil
}

// Run refreshes the reading every interval until ctx is cancelled. A
// failed refresh keeps the previous reading.
func (s *WeatherService) Run(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
		s.logger.Warn("initial weather refresh failed", zap.Error(err))
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
				s.logger.Warn("weather refresh failed", zap.Error(err))
			}
		}
	}
}
