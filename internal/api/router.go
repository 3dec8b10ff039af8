package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vaais251/GB-Guide/internal/api/handler"
	"github.com/vaais251/GB-Guide/internal/api/middleware"
	"github.com/vaais251/GB-Guide/internal/core/domain"
	"github.com/vaais251/GB-Guide/internal/core/service"
	"github.com/vaais251/GB-Guide/internal/infrastructure/config"
	mongodb "github.com/vaais251/GB-Guide/internal/infrastructure/db/mongo"
	redisdb "github.com/vaais251/GB-Guide/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: strings.Split(cfg.CORSOrigins, ","),
	}))
	e.Use(echoprometheus.NewMiddleware("gbguide"))

	// --- Dependencies ---
	seq := mongodb.NewSequences(db)
	userRepo := mongodb.NewUserRepository(db, seq)
	hotelRepo := mongodb.NewHotelRepository(db, seq)
	carRepo := mongodb.NewCarRepository(db, seq)
	guideRepo := mongodb.NewGuideRepository(db, seq)
	cache := redisdb.NewListingCache(rdb, log)

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, codec)
	authenticator := service.NewAuthenticator(codec, userRepo)
	hotelService := service.NewHotelService(hotelRepo, cache, log)
	carService := service.NewCarService(carRepo, log)
	guideService := service.NewGuideService(guideRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	hotelHandler := handler.NewHotelHandler(hotelService)
	carHandler := handler.NewCarHandler(carService)
	guideHandler := handler.NewGuideHandler(guideService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	requireAuth := middleware.Auth(authenticator)
	requireHotelRole := middleware.RequireRoles(domain.RoleHotelOwner, domain.RoleAdmin)
	requireCarRole := middleware.RequireRoles(domain.RoleCarRental, domain.RoleAdmin)
	requireGuideRole := middleware.RequireRoles(domain.RoleGuide, domain.RoleAdmin)
	requireAdmin := middleware.RequireRoles(domain.RoleAdmin)

	api := e.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, requireAuth)

	// --- Hotel routes ---
	hotels := api.Group("/hotels")
	hotels.GET("", hotelHandler.List)
	hotels.POST("", hotelHandler.Create, requireAuth, requireHotelRole)
	// registered before /:hotel_id so "my" is not parsed as an id
	hotels.GET("/my/hotels", hotelHandler.ListMine, requireAuth)
	hotels.GET("/:hotel_id", hotelHandler.Get)
	hotels.POST("/:hotel_id/rooms", hotelHandler.AddRoom, requireAuth, requireHotelRole)

	// --- Car routes ---
	cars := api.Group("/cars")
	cars.GET("", carHandler.List)
	cars.POST("", carHandler.Create, requireAuth, requireCarRole)
	cars.GET("/my", carHandler.ListMine, requireAuth)
	cars.PATCH("/:car_id/status", carHandler.SetStatus, requireAuth, requireAdmin)

	// --- Guide routes ---
	guides := api.Group("/guides")
	guides.GET("", guideHandler.List)
	guides.POST("", guideHandler.Create, requireAuth, requireGuideRole)
	guides.GET("/me", guideHandler.Me, requireAuth)
	guides.PATCH("/:guide_id/status", guideHandler.SetStatus, requireAuth, requireAdmin)

	// --- Health probes (no auth required) ---
	api.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	api.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?

	// --- Ops endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
