package handlers

import (
	"farmconnect/internal/middleware"
	"farmconnect/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardHandler serves the derived dashboard data.
type DashboardHandler struct {
	service *services.DashboardService
	logger  *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, logger: logger}
}

// RegisterRoutes registers the dashboard routes with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Get("/", h.HandleDashboard)
	dashboardRoutes.Get("/activities", h.HandleActivities)
	dashboardRoutes.Get("/stats", h.HandleStats)
}

// HandleDashboard returns user, progress, stats and the activity feed.
func (h *DashboardHandler) HandleDashboard(c *fiber.Ctx) error {
	view, err := h.service.Dashboard(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, "Could not build dashboard", err)
	}
	return c.JSON(view)
}

// HandleActivities returns the activity feed. ?limit overrides the default
// length; zero or negative yields an empty feed.
func (h *DashboardHandler) HandleActivities(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.service.FeedLimit())
	activities, err := h.service.Activities(c.UserContext(), middleware.UserID(c), limit)
	if err != nil {
		return respondError(c, h.logger, "Could not build activity feed", err)
	}
	return c.JSON(activities)
}

// HandleStats returns the summary counters.
func (h *DashboardHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, "Could not compute stats", err)
	}
	return c.JSON(stats)
}
