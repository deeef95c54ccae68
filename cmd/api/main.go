package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/mikiasgoitom/Clipture/internal/handler/http"
	redisclient "github.com/mikiasgoitom/Clipture/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Clipture/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Clipture/internal/infrastructure/database"
	"github.com/mikiasgoitom/Clipture/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Clipture/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/Clipture/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/Clipture/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/Clipture/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Clipture/internal/infrastructure/store"
	"github.com/mikiasgoitom/Clipture/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Clipture/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Clipture/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	tokenRepo := mongodb.NewTokenRepository(db.Collection("tokens"))
	videoRepo := mongodb.NewVideoRepository(db)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret)
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	appConfig := config.NewConfig()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, tokenRepo, hasher, jwtService, appLogger, appConfig, appValidator, uuidGenerator, randomGenerator)
	videoUsecase := usecase.NewVideoUseCase(videoRepo, uuidGenerator, appLogger)
	likeUsecase := usecase.NewLikeUsecase(videoRepo, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			videoCache := store.NewVideoCacheStore(rdb)
			videoUsecase.SetVideoCache(videoCache)
			likeUsecase.SetVideoCache(videoCache)
		}
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(userUsecase, videoUsecase, likeUsecase, jwtService, appConfig)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
