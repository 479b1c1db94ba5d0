package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/roadtripmate/backend/internal/pkg/config"
	"github.com/roadtripmate/backend/internal/pkg/database"
	"github.com/roadtripmate/backend/internal/pkg/health"
	"github.com/roadtripmate/backend/internal/pkg/logger"
	"github.com/roadtripmate/backend/internal/pkg/mail"
	"github.com/roadtripmate/backend/internal/pkg/middleware"
	natspkg "github.com/roadtripmate/backend/internal/pkg/nats"
	"github.com/roadtripmate/backend/internal/pkg/server"
	notificationsnats "github.com/roadtripmate/backend/services/notifications/handler/nats"
	routeshandler "github.com/roadtripmate/backend/services/routes/handler"
	routeshttp "github.com/roadtripmate/backend/services/routes/handler/http"
	routesrepository "github.com/roadtripmate/backend/services/routes/repository"
	routesusecase "github.com/roadtripmate/backend/services/routes/usecase"
	tripsgateway "github.com/roadtripmate/backend/services/trips/gateway"
	tripshandler "github.com/roadtripmate/backend/services/trips/handler"
	tripshttp "github.com/roadtripmate/backend/services/trips/handler/http"
	tripsrepository "github.com/roadtripmate/backend/services/trips/repository"
	tripsusecase "github.com/roadtripmate/backend/services/trips/usecase"
	usersgateway "github.com/roadtripmate/backend/services/users/gateway"
	usershandler "github.com/roadtripmate/backend/services/users/handler"
	usershttp "github.com/roadtripmate/backend/services/users/handler/http"
	usersrepository "github.com/roadtripmate/backend/services/users/repository"
	usersusecase "github.com/roadtripmate/backend/services/users/usecase"
)

func main() {
	appName := "roadtrip-api"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Repositories
	userRepo := usersrepository.NewUserRepo(configs, postgresClient.GetDB())
	tripRepo := tripsrepository.NewTripRepo(configs, postgresClient.GetDB())
	routeRepo := routesrepository.NewRouteRepo(configs, postgresClient.GetDB())

	// Gateways
	userGW := usersgateway.NewUserGW(natsClient)
	tripGW := tripsgateway.NewTripGW(natsClient)

	// Usecases
	userUC := usersusecase.NewUserUC(userRepo, userGW, configs)
	tripUC := tripsusecase.NewTripUC(tripRepo, userRepo, tripGW, configs)
	routeUC := routesusecase.NewRouteUC(routeRepo, tripRepo, configs)

	// Mail worker consuming notification events
	mailer := mail.NewSMTPMailer(configs.SMTP)
	notificationHandler, err := notificationsnats.NewHandler(mailer, natsClient)
	if err != nil {
		zapLogger.Fatal("Failed to start notification consumers", zap.Error(err))
	}
	defer notificationHandler.Close()

	// HTTP handlers
	authHandler := usershttp.NewAuthHandler(userUC)
	userHandler := usershttp.NewUserHandler(userUC)
	usersHandler := usershandler.NewHandler(authHandler, userHandler, configs)

	tripHandler := tripshttp.NewTripHandler(tripUC)
	collaboratorHandler := tripshttp.NewCollaboratorHandler(tripUC)
	tripsHandler := tripshandler.NewHandler(tripHandler, collaboratorHandler, configs)

	routeHandler := routeshttp.NewRouteHandler(routeUC)
	routesHandler := routeshandler.NewHandler(routeHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Throttle the public auth endpoints
	authRateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Key:         "auth",
		Limit:       20,
		Period:      time.Minute,
	})

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	usersHandler.RegisterRoutes(e, authRateLimiter)
	tripsHandler.RegisterRoutes(e)
	routesHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped unexpectedly",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
