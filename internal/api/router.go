package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/jeonseguard/community-api/docs"
	"github.com/jeonseguard/community-api/internal/api/handler"
	"github.com/jeonseguard/community-api/internal/api/middleware"
	"github.com/jeonseguard/community-api/internal/core/ports"
	"github.com/jeonseguard/community-api/internal/core/service"
	"github.com/jeonseguard/community-api/internal/infrastructure/config"
	mongodb "github.com/jeonseguard/community-api/internal/infrastructure/db/mongo"
	redisdb "github.com/jeonseguard/community-api/internal/infrastructure/db/redis"
	"github.com/jeonseguard/community-api/internal/infrastructure/newsfeed"
	"github.com/jeonseguard/community-api/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The middleware pipeline is an explicit ordered slice: session revocation
// must run before request authentication, and both before any handler.
func NewRouter(ctx context.Context, cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	refreshRepo := mongodb.NewRefreshRepository(db)
	questionRepo := mongodb.NewQuestionRepository(db)
	answerRepo := mongodb.NewAnswerRepository(db)
	fraudRepo := mongodb.NewFraudRepository(db)
	newsRepo := mongodb.NewNewsRepository(db)
	regionalNewsRepo := mongodb.NewRegionalNewsRepository(db)
	feedCache := redisdb.NewFeedCache(rdb)

	codec := service.NewTokenCodec(cfg.Auth.JWTSecret)
	verifier := service.NewUserVerifier(userRepo)
	authService := service.NewAuthService(userRepo, refreshRepo, codec, verifier, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL, log)
	boardService := service.NewBoardService(questionRepo, answerRepo, log)
	fraudService := service.NewFraudService(fraudRepo)

	feeds := []ports.NewsFeed{
		newsfeed.NewGNewsClient(cfg.News.GNewsAPIKey),
		newsfeed.NewNaverNewsClient(cfg.News.NaverClientID, cfg.News.NaverClientSecret),
	}
	trendFeed := newsfeed.NewDatalabClient(cfg.News.NaverClientID, cfg.News.NaverClientSecret)
	newsService := service.NewNewsService(feeds, trendFeed, newsRepo, regionalNewsRepo, feedCache, log)

	dispatcher := queue.NewDispatcher(0, newsService, log)
	dispatcher.Start(ctx)

	authHandler := handler.NewAuthHandler(authService, cfg.Auth.RefreshTTL)
	boardHandler := handler.NewBoardHandler(boardService)
	fraudHandler := handler.NewFraudHandler(fraudService)
	newsHandler := handler.NewNewsHandler(newsService, dispatcher)

	// --- Global middleware, in pipeline order ---
	stages := []echo.MiddlewareFunc{
		echomiddleware.Recover(),
		echomiddleware.RequestID(),
		echoprometheus.NewMiddleware("community"),
		middleware.Logout(authService), // session revocation before auth
		middleware.Auth(codec),         // request authentication
	}
	for _, stage := range stages {
		e.Use(stage)
	}

	requireUser := middleware.RequireAuthority("ROLE_USER", "ROLE_ADMIN")

	// --- Auth routes ---
	e.POST("/api/user/signup", authHandler.Signup)
	e.POST("/api/user/login", authHandler.Login)

	// --- Board routes ---
	e.GET("/api/questions", boardHandler.List)
	e.GET("/api/board/detail/:id", boardHandler.Detail)
	e.POST("/api/question/create", boardHandler.Create, requireUser)
	e.PUT("/api/question/modify/:id", boardHandler.Modify, requireUser)
	e.DELETE("/api/question/delete/:id", boardHandler.Delete, requireUser)
	e.POST("/api/answer/create/:questionID", boardHandler.CreateAnswer, requireUser)

	// --- Fraud routes ---
	e.GET("/api/fraud/region", fraudHandler.Region)
	e.GET("/api/fraud/stats", fraudHandler.Stats)

	// --- News routes ---
	e.GET("/api/news", newsHandler.Search)
	e.GET("/api/news/trend", newsHandler.Trend)
	e.GET("/api/chungbuk_news", newsHandler.Regional)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // process liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // dependency readiness
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
