package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/wekeepgrowing/customer-directory/internal/adapter/handler/http"
	"github.com/wekeepgrowing/customer-directory/internal/config"
	"github.com/wekeepgrowing/customer-directory/internal/domain/directory"
	"github.com/wekeepgrowing/customer-directory/internal/middleware/auth"
	"github.com/wekeepgrowing/customer-directory/internal/usecase"
)

// CustomValidator adapts go-playground/validator to echo's Validator
// interface
type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

type Server struct {
	config    *config.Config
	logger    *zap.Logger
	echo      *echo.Echo
	directory directory.CustomerDirectory
}

func NewServer(cfg *config.Config, logger *zap.Logger, dir directory.CustomerDirectory) *Server {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	return &Server{
		config:    cfg,
		logger:    logger,
		echo:      e,
		directory: dir,
	}
}

func (s *Server) Start() error {
	// Setup routes
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "customer-directory",
		})
	})

	// Initialize handlers
	customerService := usecase.NewCustomerService(s.directory, s.logger)
	customerHandler := handlers.NewCustomerHandler(customerService, s.directory, s.logger)
	paymentMethodHandler := handlers.NewPaymentMethodHandler(s.directory, s.logger)

	// API v1 routes
	v1 := s.echo.Group("/api/v1")

	// Bearer authentication is optional; without a secret the API is open
	// to the caller-side adapter in front of it
	if s.config.Service.JWTSecret != "" {
		v1.Use(auth.JWTMiddleware(auth.JWTConfig{
			Secret:    s.config.Service.JWTSecret,
			Logger:    s.logger,
			SkipPaths: []string{"/health"},
		}))
	}

	customers := v1.Group("/customers")
	customers.POST("", customerHandler.CreateCustomer)
	customers.DELETE("", customerHandler.DeleteCustomerByEmail)
	customers.GET("", customerHandler.ListCustomers)
	customers.GET("/:id", customerHandler.GetCustomer)
	customers.PUT("/:id", customerHandler.UpdateCustomer)
	customers.POST("/:id/payment-methods", paymentMethodHandler.AttachPaymentMethod)
	customers.GET("/:id/payment-methods", paymentMethodHandler.ListPaymentMethods)
}
