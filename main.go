package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cyber-learning-system/handlers"
	"cyber-learning-system/middleware"
	"cyber-learning-system/models"
	"cyber-learning-system/services"
	"cyber-learning-system/utils"
	"cyber-learning-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New()

	app.Use(middleware.ServiceAuthMiddleware())
	app.Use(logger.New())

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	db, err := openDatabase()
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Activity{},
		&models.TeamChallenge{},
		&models.UserQuizResult{},
		&models.UserActivityResult{},
		&models.UserTeamProgress{},
		&models.CyberLabResult{},
		&models.Achievement{},
		&models.CommunityPost{},
		&models.PostComment{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if err := utils.InitMediaStore(); err != nil {
		log.Fatal("failed to initialize media store:", err)
	}
	if err := utils.EnsureUploadDir(); err != nil {
		log.Fatal("failed to ensure upload dir:", err)
	}

	userService := services.NewUserService(db)
	scoringService := services.NewScoringService(db)
	rankingService := services.NewRankingService(db, userService)
	statsService := services.NewStatsService(db, userService, rankingService)
	achievementService := services.NewAchievementService(db)
	communityService := services.NewCommunityService(db, userService)
	contentService := services.NewContentService(db)
	seedService := services.NewSeedService(db)
	streakService := services.NewStreakService(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	streakService.StartScheduler()

	sweepWorker := workers.NewAchievementSweepWorker(db)
	sweepWorker.Start(ctx)

	handlers.SetupUserRoutes(app, userService, statsService, rankingService, achievementService, scoringService)
	handlers.SetupResultRoutes(app, scoringService)
	handlers.SetupContentRoutes(app, contentService, seedService)
	handlers.SetupLeaderboardRoutes(app, rankingService)
	handlers.SetupCommunityRoutes(app, communityService)
	handlers.SetupMediaRoutes(app)

	app.Static("/uploads", "./uploads")

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
	log.Println("✅ Streak scheduler running (daily)")
	log.Println("✅ Achievement sweep worker running (every 15m)")

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = app.Shutdown()
}

// openDatabase connects to Postgres when DATABASE_URL is set, otherwise falls
// back to a local sqlite file for development.
func openDatabase() (*gorm.DB, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	log.Println("⚠️  DATABASE_URL not set — using local sqlite database cyberlearning.db")
	return gorm.Open(sqlite.Open("cyberlearning.db"), &gorm.Config{})
}
