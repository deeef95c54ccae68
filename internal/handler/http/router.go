package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Clipture/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Clipture/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Clipture/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	userHandler        *UserHandler
	videoHandler       *VideoHandler
	interactionHandler *InteractionHandler
	authHandler        *AuthHandler
	userUsecase        usecasecontract.IUserUseCase
	jwtService         usecase.JWTService
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	videoUsecase usecase.IVideoUseCase,
	likeUsecase usecasecontract.ILikeUseCase,
	jwtService usecase.JWTService,
	config usecasecontract.IConfigProvider,
) *Router {
	baseURL := config.GetAppBaseURL()
	return &Router{
		userHandler:        NewUserHandler(userUsecase),
		videoHandler:       NewVideoHandler(videoUsecase),
		interactionHandler: NewInteractionHandler(likeUsecase),
		authHandler:        NewAuthHandler(userUsecase, baseURL),
		userUsecase:        userUsecase,
		jwtService:         jwtService,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.CreateUser)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/refresh-token", r.userHandler.RefreshToken)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	// Public user routes
	users := v1.Group("/users")
	{
		users.GET("/profile/:id", r.userHandler.GetUser)
	}

	// Public video routes
	videos := v1.Group("/videos")
	{
		videos.GET("", r.videoHandler.GetVideosHandler)
		videos.GET("/:videoID", r.videoHandler.GetVideoDetailHandler)
		videos.GET("/:videoID/likedby", r.interactionHandler.LikedByHandler)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.jwtService, r.userUsecase))
	{
		// Current user routes
		protected.GET("/me", r.userHandler.GetCurrentUser)

		// Video catalog routes
		protected.POST("/videos", r.videoHandler.AddVideoHandler)

		// Interaction routes
		protected.POST("/videos/:videoID/like", r.interactionHandler.LikeVideoHandler)
		protected.POST("/videos/:videoID/unlike", r.interactionHandler.UnlikeVideoHandler)
	}

	// Logout route (no authentication required, it just accepts the refresh token from the request body and invalidates the user session)
	v1.POST("/logout", r.userHandler.Logout)
}
