// cmd/todo-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "todo_service/internal/api/rest/v1"
	"todo_service/internal/app"
	"todo_service/internal/domain/auth"
	"todo_service/internal/domain/companies"
	"todo_service/internal/domain/tasks"
	"todo_service/internal/domain/users"
	"todo_service/internal/infrastructure/persistence"
	"todo_service/internal/infrastructure/persistence/models"
	"todo_service/internal/infrastructure/security"
	"todo_service/internal/pkg/config"
	"todo_service/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeServices(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	companies companies.CompanyService
	users     users.UserService
	tasks     tasks.TaskService
	auth      auth.AuthService
}

// initializeServices sets up the database, repositories and application services
func initializeServices(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.CompanyModel{}, &models.UserModel{}, &models.TaskModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	companyRepo, err := persistence.NewGormCompanyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create company repository: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	taskRepo, err := persistence.NewGormTaskRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create task repository: %w", err)
	}

	// Initialize security components
	hasher := security.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)

	tokenService, err := security.NewJWTTokenService(cfg.Auth.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	// Initialize services
	companyService, err := app.NewCompanyService(companyRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create company service: %w", err)
	}

	userService, err := app.NewUserService(userRepo, companyRepo, hasher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	taskService, err := app.NewTaskService(taskRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	authService, err := app.NewAuthService(userRepo, hasher, tokenService, cfg.Auth.TokenTTL(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		companies: companyService,
		users:     userService,
		tasks:     taskService,
		auth:      authService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, services.companies, services.users, services.tasks, services.auth, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
