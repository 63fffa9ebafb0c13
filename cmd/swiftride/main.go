package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/swiftride/swiftride/internal/pkg/config"
	"github.com/swiftride/swiftride/internal/pkg/database"
	"github.com/swiftride/swiftride/internal/pkg/health"
	"github.com/swiftride/swiftride/internal/pkg/logger"
	"github.com/swiftride/swiftride/internal/pkg/middleware"
	"github.com/swiftride/swiftride/internal/pkg/nsq"
	"github.com/swiftride/swiftride/internal/pkg/server"
	"github.com/swiftride/swiftride/internal/pkg/storage"
	locationshandler "github.com/swiftride/swiftride/services/locations/handler"
	locationsrepo "github.com/swiftride/swiftride/services/locations/repository"
	locationsuc "github.com/swiftride/swiftride/services/locations/usecase"
	ratingsgw "github.com/swiftride/swiftride/services/ratings/gateway"
	ratingshandler "github.com/swiftride/swiftride/services/ratings/handler"
	ratingsrepo "github.com/swiftride/swiftride/services/ratings/repository"
	ratingsuc "github.com/swiftride/swiftride/services/ratings/usecase"
	usersgw "github.com/swiftride/swiftride/services/users/gateway"
	usershandler "github.com/swiftride/swiftride/services/users/handler"
	usersrepo "github.com/swiftride/swiftride/services/users/repository"
	usersuc "github.com/swiftride/swiftride/services/users/usecase"
	vehicleshandler "github.com/swiftride/swiftride/services/vehicles/handler"
	vehiclesrepo "github.com/swiftride/swiftride/services/vehicles/repository"
	vehiclesuc "github.com/swiftride/swiftride/services/vehicles/usecase"
)

func main() {
	cfg := config.InitConfig(".env")

	zapLogger, err := logger.InitFromConfig(cfg)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	shutdownManager := server.NewShutdownManager(zapLogger)

	// Postgres
	postgres, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to postgres", logger.Err(err))
	}
	shutdownManager.Register(func(context.Context) error { return postgres.Close() })

	// Redis
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to redis", logger.Err(err))
	}
	shutdownManager.Register(func(context.Context) error { return redisClient.Close() })

	// NSQ is optional; without it the gateways become no-ops
	var producer *nsq.Producer
	if cfg.NSQ.Enabled {
		producer, err = nsq.NewProducer(cfg.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		shutdownManager.Register(func(context.Context) error {
			producer.Stop()
			return nil
		})
	}

	storageClient := storage.NewHTTPClient(cfg.Storage)

	// Users
	userRepo := usersrepo.NewUserRepository(cfg, postgres, redisClient)
	userGW := usersgw.NewUserGateway(producer)
	userUC := usersuc.NewUserUC(cfg, userRepo, userGW, storageClient)

	// Ratings
	ratingRepo := ratingsrepo.NewRatingRepository(postgres)
	ratingGW := ratingsgw.NewRatingGateway(producer)
	ratingUC := ratingsuc.NewRatingUC(ratingRepo, ratingGW)

	// Vehicles
	vehicleRepo := vehiclesrepo.NewVehicleRepository(postgres)
	vehicleUC := vehiclesuc.NewVehicleUC(vehicleRepo, storageClient)

	// Locations
	locationRepo := locationsrepo.NewLocationRepository(postgres)
	locationUC := locationsuc.NewLocationUC(locationRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, cfg.App.Name)

	api := e.Group("/api/v1")
	usershandler.RegisterRoutes(api, userUC, cfg.JWT)
	ratingshandler.RegisterRoutes(api, ratingUC, cfg.JWT)
	vehicleshandler.RegisterRoutes(api, vehicleUC, cfg.JWT)
	locationshandler.RegisterRoutes(api, locationUC, cfg.JWT)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)

	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	shutdownManager.Shutdown(shutdownCtx)
}
