package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense-manager/internal/config"
	"expense-manager/internal/database"
	"expense-manager/internal/documents"
	"expense-manager/internal/handlers"
	"expense-manager/internal/middleware"
	"expense-manager/internal/seed"
	"expense-manager/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("database initialization failed: %v", err)
	}

	ctx := context.Background()
	mongoClient, err := documents.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		log.Fatalf("document store connection failed: %v", err)
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	profiles := documents.NewCollection(mongoClient, cfg.Mongo.Database, cfg.Mongo.Collection)

	categoryService := services.NewCategoryService(db)
	expenseService := services.NewExpenseService(db)
	profileService := services.NewProfileService(profiles)

	if err := seed.NewGenerator(db).RunIfEnabled(ctx, 25); err != nil {
		log.Printf("Warning: seeding failed: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.Metrics())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: false,
	}))

	healthHandler := handlers.NewHealthHandler(db)
	e.GET("/", healthHandler.Welcome)
	e.GET("/healthz", healthHandler.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	auth := middleware.RequireAuth(middleware.AuthConfig{
		Secret: []byte(cfg.Auth.Secret),
		Leeway: cfg.Auth.Leeway,
	})

	categoryHandler := handlers.NewCategoryHandler(categoryService)
	categories := e.Group("/category", auth)
	categories.POST("/create", categoryHandler.Create)
	categories.POST("/update", categoryHandler.Update)
	categories.POST("/fetch", categoryHandler.Fetch)

	expenseHandler := handlers.NewExpenseHandler(expenseService)
	expenses := e.Group("/transaction", auth)
	expenses.POST("/create", expenseHandler.Create)
	expenses.POST("/fetch", expenseHandler.Fetch)

	profileHandler := handlers.NewProfileHandler(profileService)
	users := e.Group("/user", auth)
	users.POST("/update", profileHandler.Update)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}
