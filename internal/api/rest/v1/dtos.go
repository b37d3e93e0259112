package v1

import (
	"errors"
	"fmt"

	"todo_service/internal/domain/companies"
	"todo_service/internal/domain/tasks"
	"todo_service/internal/domain/users"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse carries a human-readable failure detail
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse carries a confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// CompanyRequest is the create/update payload for a company
type CompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Mode        string `json:"mode" validate:"omitempty,oneof=public private"`
	Rating      int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// Validate for validating CompanyRequest struct
func (r *CompanyRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain converts the request to a domain entity
func (r *CompanyRequest) ToDomain() *companies.Company {
	return &companies.Company{
		Name:        r.Name,
		Description: r.Description,
		Mode:        r.Mode,
		Rating:      r.Rating,
	}
}

// CompanyResponse is the serialized representation of a company
type CompanyResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Mode        string `json:"mode"`
	Rating      int    `json:"rating"`
}

func newCompanyResponse(c *companies.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Mode:        c.Mode,
		Rating:      c.Rating,
	}
}

// CreateUserRequest is the create payload for a user. The plaintext password
// only ever lives in this request.
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	IsActive  *bool  `json:"is_active"`
	IsAdmin   *bool  `json:"is_admin"`
	CompanyID uint   `json:"company_id" binding:"required"`
}

// Validate for validating CreateUserRequest struct
func (r *CreateUserRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain converts the request to a domain entity. Absent flags default to
// an active, non-admin user.
func (r *CreateUserRequest) ToDomain() *users.User {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	isAdmin := false
	if r.IsAdmin != nil {
		isAdmin = *r.IsAdmin
	}

	return &users.User{
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		IsActive:  isActive,
		IsAdmin:   isAdmin,
		CompanyID: r.CompanyID,
	}
}

// UpdateUserRequest is the partial-update payload for a user; only provided
// fields are applied
type UpdateUserRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	IsActive  *bool   `json:"is_active"`
	IsAdmin   *bool   `json:"is_admin"`
	CompanyID *uint   `json:"company_id"`
}

// Validate for validating UpdateUserRequest struct
func (r *UpdateUserRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain converts the request to a domain update
func (r *UpdateUserRequest) ToDomain() *users.UserUpdate {
	return &users.UserUpdate{
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		IsActive:  r.IsActive,
		IsAdmin:   r.IsAdmin,
		CompanyID: r.CompanyID,
	}
}

// UserResponse is the serialized representation of a user. The password hash
// is deliberately absent.
type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `json:"is_active"`
	IsAdmin   bool   `json:"is_admin"`
	CompanyID uint   `json:"company_id"`
}

func newUserResponse(u *users.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		CompanyID: u.CompanyID,
	}
}

// DeleteUserResponse confirms a user deletion and carries the deleted record
type DeleteUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// CreateTaskRequest is the create payload for a task
type CreateTaskRequest struct {
	Summary     string `json:"summary" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Priority    int    `json:"priority" binding:"required" validate:"min=1,max=5"`
	UserID      uint   `json:"user_id" binding:"required"`
}

// Validate for validating CreateTaskRequest struct
func (r *CreateTaskRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain converts the request to a domain entity
func (r *CreateTaskRequest) ToDomain() *tasks.Task {
	return &tasks.Task{
		Summary:     r.Summary,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		UserID:      r.UserID,
	}
}

// UpdateTaskRequest replaces the base fields of a task
type UpdateTaskRequest struct {
	Summary     string `json:"summary" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Priority    int    `json:"priority" binding:"required" validate:"min=1,max=5"`
}

// Validate for validating UpdateTaskRequest struct
func (r *UpdateTaskRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain converts the request to a domain entity
func (r *UpdateTaskRequest) ToDomain() *tasks.Task {
	return &tasks.Task{
		Summary:     r.Summary,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
	}
}

// TaskResponse is the serialized representation of a task
type TaskResponse struct {
	ID          uint   `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    int    `json:"priority"`
	UserID      uint   `json:"user_id"`
}

func newTaskResponse(t *tasks.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Summary:     t.Summary,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		UserID:      t.UserID,
	}
}

// LoginRequest is the form-encoded login payload
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse is the login response carrying the bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
