package handlers

import (
	"farmconnect/internal/middleware"
	"farmconnect/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, validate *validator.Validate, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validate,
		logger:      logger,
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/signup", h.HandleSignUp)
	authRoutes.Post("/signin", h.HandleSignIn)
}

// RegisterSessionRoutes registers the routes that need a signed-in user.
// router must already be guarded by middleware.AuthRequired.
func (h *AuthHandler) RegisterSessionRoutes(router fiber.Router) {
	sessionRoutes := router.Group("/auth")
	sessionRoutes.Post("/signout", h.HandleSignOut)
	sessionRoutes.Get("/session", h.HandleSession)
}

// SignUpRequest represents the request body for sign-up.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=100"`
	Location string `json:"location" validate:"required,max=255"`
	Bio      string `json:"bio" validate:"max=1000"`
	Phone    string `json:"phone" validate:"max=32"`
	FarmSize int    `json:"farm_size" validate:"omitempty,min=1,max=100"`
}

// SignInRequest represents the request body for sign-in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleSignUp creates an account and returns its first session.
func (h *AuthHandler) HandleSignUp(c *fiber.Ctx) error {
	var req SignUpRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	session, err := h.authService.SignUp(c.UserContext(), req.Email, req.Password, services.SignUpProfile{
		Name:     req.Name,
		Location: req.Location,
		Bio:      req.Bio,
		Phone:    req.Phone,
		FarmSize: req.FarmSize,
	})
	if err != nil {
		return respondError(c, h.logger, "Registration failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "User registered successfully",
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
		"user":       session.User,
	})
}

// HandleSignIn authenticates a user and issues a JWT token.
func (h *AuthHandler) HandleSignIn(c *fiber.Ctx) error {
	var req SignInRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	session, err := h.authService.SignIn(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, h.logger, "Authentication failed", err)
	}

	return c.JSON(fiber.Map{
		"message":    "Login successful",
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
		"user":       session.User,
	})
}

// HandleSignOut revokes the bearer token of the request.
func (h *AuthHandler) HandleSignOut(c *fiber.Ctx) error {
	if err := h.authService.SignOut(c.UserContext(), middleware.Token(c)); err != nil {
		return respondError(c, h.logger, "Sign-out failed", err)
	}
	return c.JSON(fiber.Map{"message": "Signed out"})
}

// HandleSession returns the user the bearer token belongs to.
func (h *AuthHandler) HandleSession(c *fiber.Ctx) error {
	user, err := h.authService.CurrentUser(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, "Could not load session", err)
	}
	return c.JSON(fiber.Map{"user": user})
}
