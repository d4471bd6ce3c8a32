package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/salesdesk/customer-management/docs"
	"github.com/salesdesk/customer-management/internal/api/handler"
	"github.com/salesdesk/customer-management/internal/api/middleware"
	"github.com/salesdesk/customer-management/internal/core/domain"
	"github.com/salesdesk/customer-management/internal/core/ports"
)

// Services bundles the application services the router wires into handlers.
type Services struct {
	Auth      ports.AuthService
	Users     ports.UserService
	Customers ports.CustomerService
	Tokens    ports.TokenService
}

// NewRouter builds the Echo instance with all routes registered. Each
// protected route carries its required-role set as an explicit declaration;
// routes without one are public.
func NewRouter(db *gorm.DB, svc Services, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("customer_management"))

	// --- Guards ---
	auth := middleware.Auth(svc.Tokens, middleware.BearerExtractor{})
	allRoles := middleware.RequireRoles(domain.RoleAdmin, domain.RoleSalePersonal, domain.RoleSaleCompany)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	userHandler := handler.NewUserHandler(svc.Users)
	customerHandler := handler.NewCustomerHandler(svc.Customers)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)

	// --- Users ---
	users := e.Group("/users")
	users.POST("", userHandler.Create) // public: registration
	users.GET("", userHandler.List, auth, adminOnly)
	users.GET("/:id", userHandler.Get, auth, allRoles)
	users.PATCH("/:id", userHandler.Update, auth, allRoles)
	users.DELETE("/:id", userHandler.Delete, auth, adminOnly)

	// --- Customers ---
	customers := e.Group("/customers", auth, allRoles)
	customers.POST("", customerHandler.Create)
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.PATCH("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the database up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
