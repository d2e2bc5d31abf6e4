// Package app wires configuration, storage, services and HTTP routes into a
// runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farmconnect/internal/config"
	"farmconnect/internal/database"
	"farmconnect/internal/handlers"
	"farmconnect/internal/middleware"
	"farmconnect/internal/repositories"
	"farmconnect/internal/services"
	"farmconnect/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

type repositorySet struct {
	tx      repositories.Transactor
	users   repositories.UserRepository
	produce repositories.ProduceRepository
	orders  repositories.OrderRepository
}

// App is the assembled API server.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	server *fiber.App
	db     *gorm.DB
	mq     *rabbitmq.Client

	auth    *services.AuthService
	weather *services.WeatherService
}

// New builds the server described by cfg. When RabbitMQ is enabled but
// unreachable the server still starts and events are not published.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger}

	repos, err := a.openRepositories()
	if err != nil {
		return nil, err
	}

	var publisher services.EventPublisher
	if cfg.RabbitMQEnabled {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue}, logger)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, farm events will not be published", zap.Error(err))
		} else {
			a.mq = client
			publisher = client
		}
	}

	a.auth = services.NewAuthService(repos.users, services.NewMemoryRevocationList(), cfg.JWTSecret, cfg.TokenTTL, logger)
	if publisher != nil {
		a.auth.Subscribe(forwardSessionEvents(publisher, logger))
	}
	produceService := services.NewProduceService(repos.tx, repos.produce, repos.users, publisher, cfg.XPPerProduce, logger)
	orderService := services.NewOrderService(repos.orders, publisher, logger)
	profileService := services.NewProfileService(repos.users)
	dashboardService := services.NewDashboardService(repos.users, repos.produce, repos.orders, cfg.FeedLimit)
	a.weather = services.NewWeatherService(
		services.NewSimulatedWeatherProvider(time.Now().UnixNano()),
		cfg.WeatherLocation,
		cfg.WeatherRefreshInterval,
		logger,
	)

	validate := validator.New()

	a.server = fiber.New(fiber.Config{
		AppName:               "farmconnect",
		DisableStartupMessage: true,
	})
	a.server.Use(recover.New())
	a.server.Use(fiberlogger.New())

	a.server.Get("/health", a.handleHealth)

	apiV1 := a.server.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(a.auth, validate, logger)
	// Public routes must be registered before the protected group's middleware.
	authHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(a.auth, logger))
	authHandler.RegisterSessionRoutes(protected)
	handlers.NewProduceHandler(produceService, validate, logger).RegisterRoutes(protected)
	handlers.NewOrderHandler(orderService, validate, logger).RegisterRoutes(protected)
	handlers.NewProfileHandler(profileService, validate, logger).RegisterRoutes(protected)
	handlers.NewDashboardHandler(dashboardService, logger).RegisterRoutes(protected)
	handlers.NewWeatherHandler(a.weather, logger).RegisterRoutes(protected)

	return a, nil
}

func (a *App) openRepositories() (repositorySet, error) {
	if a.cfg.DatabaseDriver == "memory" {
		a.logger.Info("using in-memory storage, data is lost on exit")
		return repositorySet{
			tx:      repositories.MemoryTransactor{},
			users:   repositories.NewMemoryUserRepository(),
			produce: repositories.NewMemoryProduceRepository(),
			orders:  repositories.NewMemoryOrderRepository(),
		}, nil
	}

	db, err := database.Open(a.cfg.DatabaseDriver, a.cfg.DatabaseDSN, a.logger)
	if err != nil {
		return repositorySet{}, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return repositorySet{}, err
	}
	a.db = db
	return repositorySet{
		tx:      repositories.NewGORMTransactor(db),
		users:   repositories.NewGORMUserRepository(db),
		produce: repositories.NewGORMProduceRepository(db),
		orders:  repositories.NewGORMOrderRepository(db),
	}, nil
}

func (a *App) handleHealth(c *fiber.Ctx) error {
	mq := "disabled"
	if a.mq != nil {
		mq = "connected"
	} else if a.cfg.RabbitMQEnabled {
		mq = "unavailable"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "healthy",
		"time":     time.Now().Format(time.RFC3339),
		"rabbitmq": mq,
	})
}

// Fiber exposes the HTTP application, mainly for tests.
func (a *App) Fiber() *fiber.App {
	return a.server
}

// Run serves HTTP, refreshes the weather and consumes farm events until ctx
// is cancelled, then shuts the server down.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Starting server", zap.String("addr", a.cfg.AppPort))
		if err := a.server.Listen(a.cfg.AppPort); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Shutting down server...")
		if err := a.server.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("error during shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.weather.Run(gctx)
	})

	if a.mq != nil {
		g.Go(func() error {
			if err := a.mq.Consume(gctx, rabbitmq.LogEvents(a.logger)); err != nil {
				a.logger.Error("farm event consumer stopped", zap.Error(err))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Info("Server gracefully stopped")
	return nil
}

// Close releases the broker connection and the database.
func (a *App) Close() error {
	var errs []error
	if a.mq != nil {
		if err := a.mq.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// forwardSessionEvents publishes sign-ups and sign-outs to the broker.
// Sign-ins are too frequent to be worth an event.
func forwardSessionEvents(publisher services.EventPublisher, logger *zap.Logger) func(services.SessionEvent) {
	return func(evt services.SessionEvent) {
		var eventType string
		switch evt.Type {
		case services.SessionSignedUp:
			eventType = rabbitmq.EventUserSignedUp
		case services.SessionSignedOut:
			eventType = rabbitmq.EventUserSignedOut
		default:
			return
		}
		payload := map[string]interface{}{"at": evt.At}
		if err := publisher.Publish(eventType, evt.UserID, payload); err != nil {
			logger.Warn("failed to publish session event", zap.String("type", eventType), zap.Error(err))
		}
	}
}
