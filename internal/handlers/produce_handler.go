package handlers

import (
	"farmconnect/internal/dashboard"
	"farmconnect/internal/middleware"
	"farmconnect/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProduceHandler handles HTTP requests for produce.
type ProduceHandler struct {
	service  *services.ProduceService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewProduceHandler creates a new ProduceHandler.
func NewProduceHandler(service *services.ProduceService, validate *validator.Validate, logger *zap.Logger) *ProduceHandler {
	return &ProduceHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// RegisterRoutes registers the produce routes with the Fiber app.
func (h *ProduceHandler) RegisterRoutes(router fiber.Router) {
	produceRoutes := router.Group("/produce")
	produceRoutes.Get("/", h.HandleListProduce)
	produceRoutes.Get("/catalog", h.HandleCatalog)
	produceRoutes.Post("/", h.HandleAddProduce)
}

// AddProduceRequest represents the request body for a produce entry.
type AddProduceRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Location string  `json:"location" validate:"required,max=255"`
}

// HandleListProduce lists the caller's produce.
func (h *ProduceHandler) HandleListProduce(c *fiber.Ctx) error {
	produce, err := h.service.ListProduce(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve produce", err)
	}
	return c.JSON(produce)
}

// HandleAddProduce records produce and returns it with the updated user.
func (h *ProduceHandler) HandleAddProduce(c *fiber.Ctx) error {
	var req AddProduceRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	produce, user, err := h.service.AddProduce(c.UserContext(), middleware.UserID(c), services.ProduceInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Location: req.Location,
	})
	if err != nil {
		return respondError(c, h.logger, "Could not add produce", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"produce": produce,
		"user":    user,
	})
}

// HandleCatalog lists the selectable produce types.
func (h *ProduceHandler) HandleCatalog(c *fiber.Ctx) error {
	return c.JSON(dashboard.Catalog())
}
