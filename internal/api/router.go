package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/taskhub/todo-api/docs"
	"github.com/taskhub/todo-api/internal/api/handler"
	"github.com/taskhub/todo-api/internal/api/middleware"
	"github.com/taskhub/todo-api/internal/core/domain"
	"github.com/taskhub/todo-api/internal/core/service"
	mongodb "github.com/taskhub/todo-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskhub/todo-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("todoapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	todoRepo := mongodb.NewTodoRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb)

	tokenService := service.NewTokenService(jwtSecret, tokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, limiter, log)
	todoService := service.NewTodoService(todoRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)
	adminHandler := handler.NewAdminHandler(todoService)

	authMiddleware := middleware.Auth(tokenService, log)

	// --- Auth routes (no token required) ---
	e.POST("/auth/", authHandler.Register)
	e.POST("/auth/token", authHandler.Login)

	// --- User routes ---
	user := e.Group("/user", authMiddleware)
	user.GET("/", userHandler.Get)
	user.PUT("/password", userHandler.ChangePassword)
	user.PUT("/phonenumber/:phone_number", userHandler.UpdatePhoneNumber)

	// --- Todo routes ---
	todos := e.Group("/todos", authMiddleware)
	todos.GET("/", todoHandler.List)
	todos.GET("/todo/:todo_id", todoHandler.Get)
	todos.POST("/todo", todoHandler.Create)
	todos.PUT("/todo/:todo_id", todoHandler.Update)
	todos.DELETE("/todo/:todo_id", todoHandler.Delete)

	// --- Admin routes ---
	admin := e.Group("/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/todo", adminHandler.ListAll)
	admin.DELETE("/todo/:todo_id", adminHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/healthy", healthHandler.Healthy) // legacy probe shape
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
