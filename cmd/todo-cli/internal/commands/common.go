package commands

import (
	"fmt"
	"os"

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
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// adminServices bundles the application services the admin commands operate on.
type adminServices struct {
	companies companies.CompanyService
	users     users.UserService
	tasks     tasks.TaskService
	auth      auth.AuthService
	userRepo  users.UserRepository
	tokens    auth.TokenService
	config    *config.RestConfig
}

// setupServices loads the configuration, connects to the database and wires
// up the application services. The same database the REST API serves is used.
func setupServices(loggerInstance logger.Logger) (*adminServices, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	db, err := persistence.NewDBConnection(restConfig.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(&models.CompanyModel{}, &models.UserModel{}, &models.TaskModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	companyRepo, err := persistence.NewGormCompanyRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create company repository: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	taskRepo, err := persistence.NewGormTaskRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create task repository: %w", err)
	}

	hasher := security.NewBcryptPasswordHasher(restConfig.Auth.BcryptCost)

	tokenService, err := security.NewJWTTokenService(restConfig.Auth.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	companyService, err := app.NewCompanyService(companyRepo, userRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create company service: %w", err)
	}

	userService, err := app.NewUserService(userRepo, companyRepo, hasher, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	taskService, err := app.NewTaskService(taskRepo, userRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	authService, err := app.NewAuthService(userRepo, hasher, tokenService, restConfig.Auth.TokenTTL(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	return &adminServices{
		companies: companyService,
		users:     userService,
		tasks:     taskService,
		auth:      authService,
		userRepo:  userRepo,
		tokens:    tokenService,
		config:    restConfig,
	}, nil
}
