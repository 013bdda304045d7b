package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"state-tracker-system/handlers"
	"state-tracker-system/models"
	"state-tracker-system/services"
	"state-tracker-system/utils"
	"state-tracker-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // shared map snapshots arrive as base64 data URLs
	})

	// Load allowed origins from environment variable
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Session-Token",
		ExposeHeaders:    "Content-Length, Content-Type",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}

	// TranslateError maps unique violations to gorm.ErrDuplicatedKey — the
	// badge award idempotency path depends on it.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.State{},
		&models.VisitedState{},
		&models.Activity{},
		&models.SharedMap{},
		&models.Badge{},
		&models.UserBadge{},
		&models.User{},
		&models.Session{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if err := services.SeedStates(db); err != nil {
		log.Fatal("failed to seed states:", err)
	}
	if err := services.SeedBadges(db); err != nil {
		log.Fatal("failed to seed badges:", err)
	}

	stateService := services.NewStateService(db)
	activityService := services.NewActivityService(db)
	badgeService := services.NewBadgeService(db)
	sharedMapService := services.NewSharedMapService(db)
	userService := services.NewUserService(db)

	badgeWorker := workers.NewBadgeCheckWorker(badgeService, 256)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go badgeWorker.Start(ctx)

	services.StartCleanupScheduler(db)

	handlers.SetupAuthRoutes(app, userService)
	handlers.SetupStateRoutes(app, stateService, activityService, badgeWorker)
	handlers.SetupBadgeRoutes(app, badgeService)
	handlers.SetupSharedMapRoutes(app, sharedMapService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Badge re-check worker running")
	log.Println("✅ Cleanup scheduler running (hourly)")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = app.Shutdown()
}
