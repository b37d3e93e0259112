package v1

import (
	"todo_service/internal/domain/auth"
	"todo_service/internal/domain/companies"
	"todo_service/internal/domain/tasks"
	"todo_service/internal/domain/users"
	"todo_service/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	companyService companies.CompanyService,
	userService users.UserService,
	taskService tasks.TaskService,
	authService auth.AuthService,
	log logger.Logger) {

	// Companies Routes
	companyHandler := NewCompanyHandler(companyService, log)
	r.POST("/companies", companyHandler.Create)
	r.GET("/companies", companyHandler.List)
	r.GET("/companies/:id", companyHandler.GetByID)
	r.PUT("/companies/:id", companyHandler.UpdateByID)
	r.DELETE("/companies/:id", companyHandler.DeleteByID)

	// Users Routes
	userHandler := NewUserHandler(userService, authService, log)
	r.POST("/users", userHandler.Create)
	r.GET("/users", userHandler.List)
	r.GET("/users/me", userHandler.Me)
	r.GET("/users/:id", userHandler.GetByID)
	r.PUT("/users/:id", userHandler.UpdateByID)
	r.DELETE("/users/:id", userHandler.DeleteByID)

	// Tasks Routes
	taskHandler := NewTaskHandler(taskService, log)
	r.POST("/tasks", taskHandler.Create)
	r.GET("/tasks", taskHandler.List)
	r.GET("/tasks/user/:user_id", taskHandler.ListByUserID)
	r.GET("/tasks/:id", taskHandler.GetByID)
	r.PUT("/tasks/:id", taskHandler.UpdateByID)
	r.DELETE("/tasks/:id", taskHandler.DeleteByID)

	// Auth Routes
	authHandler := NewAuthHandler(authService, log)
	r.POST("/login", authHandler.Login)
}
