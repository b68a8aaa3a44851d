package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthhub/internal/config"
	"healthhub/internal/handler"
	"healthhub/internal/logger"
	"healthhub/internal/middleware"
	"healthhub/internal/repository"
	"healthhub/internal/service"
	"healthhub/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	zapLogger, err := logger.New(os.Getenv("LOG_LEVEL"), "healthhub")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zapLogger.Sync()

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		zapLogger.Fatal("failed to load DB config", zap.Error(err))
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:3000"
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(context.Background(), dbCfg)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()
	zapLogger.Info("connected to PostgreSQL")

	// --- Auto Migration ---
	if err := config.AutoMigrate(context.Background(), dbPool); err != nil {
		zapLogger.Fatal("failed to auto-migrate database", zap.Error(err))
	}

	// --- Session Store ---
	redisClient, err := config.ConnectRedis(context.Background(), config.LoadRedisConfig())
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()
	zapLogger.Info("connected to Redis")

	sessionStore := session.NewStore(redisClient, config.SessionTTL())

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	patientRepo := repository.NewPatientRepository(dbPool)
	doctorRepo := repository.NewDoctorRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo)
	dashboardService := service.NewDashboardService(patientRepo, doctorRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, sessionStore, zapLogger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, zapLogger)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	// Cookies require a concrete origin with credentials enabled
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{frontendOrigin}
	corsCfg.AllowCredentials = true
	router.Use(cors.New(corsCfg))

	// --- Register Routes ---
	requireSession := middleware.RequireSession(sessionStore)
	authHandler.RegisterAuthRoutes(router)
	dashboardHandler.RegisterDashboardRoutes(router, requireSession)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "sessions": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy", "sessions": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		zapLogger.Info("server starting", zap.String("port", serverPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("server exiting")
}
