package handlers

import (
	"farmconnect/internal/middleware"
	"farmconnect/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProfileHandler handles HTTP requests for the caller's profile.
type ProfileHandler struct {
	service  *services.ProfileService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service *services.ProfileService, validate *validator.Validate, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// RegisterRoutes registers the profile routes with the Fiber app.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Get("/", h.HandleGetProfile)
	profileRoutes.Patch("/", h.HandleUpdateProfile)
	profileRoutes.Put("/preferred-produce", h.HandleSetPreferredProduce)
}

// UpdateProfileRequest is a partial profile edit; absent fields are kept.
type UpdateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Location *string `json:"location" validate:"omitempty,max=255"`
	Bio      *string `json:"bio" validate:"omitempty,max=1000"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
	FarmSize *int    `json:"farm_size" validate:"omitempty,min=1,max=100"`
}

// PreferredProduceRequest replaces the preferred produce list.
type PreferredProduceRequest struct {
	PreferredProduce []string `json:"preferred_produce" validate:"max=20,dive,max=50"`
}

// HandleGetProfile returns the caller's profile.
func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.service.GetProfile(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve profile", err)
	}
	return c.JSON(user)
}

// HandleUpdateProfile applies a partial profile edit.
func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	user, err := h.service.UpdateProfile(c.UserContext(), middleware.UserID(c), services.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
		Bio:      req.Bio,
		Phone:    req.Phone,
		FarmSize: req.FarmSize,
	})
	if err != nil {
		return respondError(c, h.logger, "Could not update profile", err)
	}
	return c.JSON(user)
}

// HandleSetPreferredProduce replaces the caller's preferred produce.
func (h *ProfileHandler) HandleSetPreferredProduce(c *fiber.Ctx) error {
	var req PreferredProduceRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	user, err := h.service.SetPreferredProduce(c.UserContext(), middleware.UserID(c), req.PreferredProduce)
	if err != nil {
		return respondError(c, h.logger, "Could not update preferred produce", err)
	}
	return c.JSON(user)
}
