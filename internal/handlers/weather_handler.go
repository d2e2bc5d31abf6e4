package handlers

import (
	"farmconnect/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WeatherHandler serves the cached weather reading.
type WeatherHandler struct {
	service *services.WeatherService
	logger  *zap.Logger
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(service *services.WeatherService, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{service: service, logger: logger}
}

// RegisterRoutes registers the weather route with the Fiber app.
func (h *WeatherHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/weather", h.HandleWeather)
}

// HandleWeather returns the latest reading.
func (h *WeatherHandler) HandleWeather(c *fiber.Ctx) error {
	weather, err := h.service.Current(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, "Weather is unavailable", err)
	}
	return c.JSON(weather)
}
