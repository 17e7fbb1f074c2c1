package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"unistay/config"
	"unistay/controllers"
	"unistay/data"
	"unistay/jobs"
	"unistay/routes"
	"unistay/services"
	"unistay/services/logger"
	"unistay/services/notification"
	"unistay/utils"
	"unistay/validator"
)

// @title UniStay API
// @version 1.0
// @description Student accommodation search and booking.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadEnv()
	cfg := config.Load()

	out, closeLog := utils.LogWriter(cfg.LogDir)
	defer closeLog()
	log.SetOutput(out)
	appLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))

	router, m, c := config.InitApp(cfg)
	ctx := context.Background()

	seed, err := data.Load()
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	catalogSeed := cfg.CatalogSeed
	if catalogSeed == 0 {
		catalogSeed = time.Now().UnixNano()
	}
	catalog := services.NewCatalogGenerator(services.CatalogGeneratorOptions{
		Seed:   seed,
		Rand:   rand.New(rand.NewSource(catalogSeed)),
		Logger: appLogger,
	}).Generate()
	search := services.NewSearchService(catalog, services.SearchServiceOptions{Seed: seed, Logger: appLogger})

	var (
		users    services.UserStore    = services.NewMemoryUserStore()
		bookings services.BookingStore = services.NewMemoryBookingStore()
	)
	if cfg.DatabaseDSN != "" {
		db, err := config.ConnectDB(cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("Failed to connect to db: %v", err)
		}
		users = services.NewGormUserStore(db)
		bookings = services.NewGormBookingStore(db)
	}
	if err := services.SeedDemoUser(ctx, users); err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	rdb, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		log.Printf("Warning: redis unavailable, filter memory disabled: %v", err)
		rdb = nil
	}

	tokens := services.NewTokenService(cfg.JWTSecret, services.DefaultTokenTTL)
	authService := services.NewAuthService(services.AuthServiceOptions{
		Users:  users,
		Tokens: tokens,
		Delay:  cfg.AuthDelay,
		Logger: appLogger,
	})
	userService := services.NewUserService(users, search, appLogger)
	bookingService := services.NewBookingService(services.BookingServiceOptions{
		Store:        bookings,
		Search:       search,
		Validator:    validator.Default(),
		Notifier:     notification.NewMelodyService(m),
		PaymentDelay: cfg.PaymentDelay,
		Logger:       appLogger,
	})

	if err := jobs.InitCronJobs(c, bookingService, cfg.BookingPendingTTL, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, routes.Deps{
		Properties: controllers.NewPropertyController(search, bookingService, rdb, appLogger),
		Auth:       controllers.NewAuthController(authService),
		Users:      controllers.NewUserController(userService),
		Bookings:   controllers.NewBookingController(bookingService),
		Tokens:     tokens,
		Logger:     appLogger,
	})

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
