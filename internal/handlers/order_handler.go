package handlers

import (
	"fmt"

	"farmconnect/internal/middleware"
	"farmconnect/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, validate *validator.Validate, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
}

// CreateOrderRequest represents the request body for a new order.
type CreateOrderRequest struct {
	ProduceName string  `json:"produce_name" validate:"required,max=100"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Buyer       string  `json:"buyer" validate:"required,max=100"`
	Status      string  `json:"status" validate:"omitempty,max=32"`
}

// HandleGetOrders lists the caller's orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves one of the caller's orders.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Invalid order ID %q", c.Params("id")),
		})
	}

	order, err := h.service.GetOrder(c.UserContext(), middleware.UserID(c), uint(id))
	if err != nil {
		return respondError(c, h.logger, fmt.Sprintf("Order with ID %d not found", id), err)
	}
	return c.JSON(order)
}

// HandleCreateOrder creates a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	order, err := h.service.CreateOrder(c.UserContext(), middleware.UserID(c), services.OrderInput{
		ProduceName: req.ProduceName,
		Quantity:    req.Quantity,
		Buyer:       req.Buyer,
		Status:      req.Status,
	})
	if err != nil {
		return respondError(c, h.logger, "Could not create order", err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}
