package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/haresh-sai06/Art-Webpage/controllers"
	"github.com/haresh-sai06/Art-Webpage/database"
	"github.com/haresh-sai06/Art-Webpage/gateway"
	"github.com/haresh-sai06/Art-Webpage/middleware"
	"github.com/haresh-sai06/Art-Webpage/models"
	"github.com/haresh-sai06/Art-Webpage/repository"
	"github.com/haresh-sai06/Art-Webpage/routes"
	"github.com/haresh-sai06/Art-Webpage/services"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	// Initialize structured logger
	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// --- Storage ---
	mongoClient, db, err := database.Connect(cfg.MongoURL, cfg.DBName)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	artworkRepo := repository.NewMongoArtworkRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)

	// Populate the catalog on first run
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := artworkRepo.SeedIfEmpty(seedCtx, models.SampleArtworks()); err != nil {
		seedCancel()
		logger.Fatal("Failed to seed artworks", zap.Error(err))
	}
	seedCancel()

	// --- Dependency injection ---
	stripeGateway := gateway.NewStripeGateway(cfg.StripeSecretKey)

	catalogService := services.NewCatalogService(artworkRepo, logger)
	checkoutService := services.NewCheckoutService(
		artworkRepo,
		orderRepo,
		stripeGateway,
		cfg.CheckoutSuccessURL,
		cfg.CheckoutCancelURL,
		logger,
	)

	artworkController := controllers.NewArtworkController(catalogService)
	checkoutController := controllers.NewCheckoutController(checkoutService)
	orderController := controllers.NewOrderController(checkoutService)

	// --- HTTP server & middleware ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RateLimit())

	// Request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterRoutes(r, artworkController, checkoutController, orderController)

	// --- Graceful shutdown ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Gallery service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down gallery service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(mongoClient); err != nil {
		logger.Error("Failed to close MongoDB connection", zap.Error(err))
	}

	logger.Info("Gallery service stopped gracefully")
}
