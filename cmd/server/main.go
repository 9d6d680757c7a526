package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shortwave/internal/config"
	"shortwave/internal/handler"
	"shortwave/internal/service"
	"shortwave/internal/store"
	"shortwave/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Shortwave API
// @version 1.0
// @description A short link and blog service with in-process analytics

// @contact.name API Support
// @contact.url http://www.example.com/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize stores
	links := store.NewLinkStore()
	posts := store.NewPostStore()
	oplog := store.NewOperationLog(cfg.Admin.OperationLogLimit)
	eventStores := map[string]*store.EventStore{
		service.CollectionURLs:  store.NewEventStore(cfg.Analytics.HistoryLimit),
		service.CollectionPosts: store.NewEventStore(cfg.Analytics.HistoryLimit),
	}

	// Initialize services
	shortLinkSvc := service.NewShortLinkService(links, getDomain(cfg), cfg.Shortener)
	blogSvc := service.NewBlogService(posts)
	analyticsSvc := service.NewAnalyticsService(cfg.Analytics.CacheTTL, cfg.Analytics.RecentWindow, eventStores)
	rateLimiter := service.NewRateLimiter(cfg.RateLimit)
	adminSvc := service.NewAdminService(cfg.Admin.Token, oplog)
	bulkSvc := service.NewBulkService(shortLinkSvc, rateLimiter, cfg.RateLimit.BulkBaseDelay)

	if cfg.Admin.Token == "" {
		log.Warn().Msg("Admin token is not set, admin endpoints are disabled")
	}

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())

	// Handlers
	generateHandler := handler.NewGenerateHandler(shortLinkSvc)
	redirectHandler := handler.NewRedirectHandler(shortLinkSvc, analyticsSvc)
	statsHandler := handler.NewStatsHandler(analyticsSvc)
	blogHandler := handler.NewBlogHandler(blogSvc, analyticsSvc)
	adminHandler := handler.NewAdminHandler(adminSvc, rateLimiter, bulkSvc)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/shortlink/generate", generateHandler.Generate)

		v1.POST("/posts", blogHandler.Create)
		v1.GET("/posts", blogHandler.List)
		v1.GET("/posts/:slug", blogHandler.Get)

		v1.GET("/analytics/urls", statsHandler.URLStats)
		v1.GET("/analytics/urls/:shortCode", statsHandler.URLRecord)
		v1.GET("/analytics/posts", statsHandler.PostStats)
		v1.GET("/analytics/posts/:slug", statsHandler.PostRecord)

		admin := v1.Group("/admin")
		{
			admin.POST("/bulk/shortlinks", adminHandler.BulkShortLinks)
			admin.GET("/operations", adminHandler.Operations)
			admin.POST("/emergency-stop", adminHandler.EmergencyStop)
			admin.GET("/ratelimit/:identity", adminHandler.RateLimitStatus)
		}
	}

	// Redirect handler (short codes)
	router.GET("/:shortCode", redirectHandler.Redirect)

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// getDomain returns the domain for short links
func getDomain(cfg *config.Config) string {
	if port := cfg.Server.Port; port != 80 && port != 443 {
		return fmt.Sprintf("http://localhost:%d", port)
	}
	return "http://localhost"
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
