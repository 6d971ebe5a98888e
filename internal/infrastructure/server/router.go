package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/handler"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/middleware"
)

type Router struct {
	engine          *gin.Engine
	authHandler     *handler.AuthHandler
	locationHandler *handler.LocationHandler
	trackingHandler *handler.TrackingHandler
	mapHandler      *handler.MapHandler
	positionHandler *handler.PositionHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         http.Handler
	allowedOrigins  []string
	logger          *zap.Logger
}

type RouterConfig struct {
	AuthHandler     *handler.AuthHandler
	LocationHandler *handler.LocationHandler
	TrackingHandler *handler.TrackingHandler
	MapHandler      *handler.MapHandler
	PositionHandler *handler.PositionHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         http.Handler
	AllowedOrigins  []string
	Logger          *zap.Logger
	Environment     string
}

func NewRouter(cfg RouterConfig) *Router {
	switch cfg.Environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	engine := gin.New()

	r := &Router{
		engine:          engine,
		authHandler:     cfg.AuthHandler,
		locationHandler: cfg.LocationHandler,
		trackingHandler: cfg.TrackingHandler,
		mapHandler:      cfg.MapHandler,
		positionHandler: cfg.PositionHandler,
		authMiddleware:  cfg.AuthMiddleware,
		metrics:         cfg.Metrics,
		allowedOrigins:  cfg.AllowedOrigins,
		logger:          cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if r.metrics != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metrics))
	}

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	{
		api.POST("/auth/token", r.authHandler.Token)

		protected := api.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			location := protected.Group("/location")
			{
				location.GET("/current", r.locationHandler.Current)
				location.GET("/history", r.locationHandler.History)
				location.GET("/summary", r.locationHandler.Summary)
			}

			protected.POST("/positions", r.positionHandler.Push)
			protected.POST("/testdata", r.locationHandler.GenerateTestData)

			protected.GET("/tracking", r.trackingHandler.Get)
			protected.PUT("/tracking", r.trackingHandler.Set)

			protected.GET("/providers", r.mapHandler.Providers)
			protected.PUT("/providers/selected", r.mapHandler.SelectProvider)

			protected.GET("/map", r.mapHandler.Map)
			protected.PUT("/map/path", r.mapHandler.SetPath)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
