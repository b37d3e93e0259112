package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"todo_service/internal/domain/auth"
	"todo_service/internal/domain/companies"
	"todo_service/internal/domain/users"
	"todo_service/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes user CRUD and the authenticated /users/me lookup
type UserHandler struct {
	service     users.UserService
	authService auth.AuthService
	logger      logger.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service users.UserService, authService auth.AuthService, logger logger.Logger) *UserHandler {
	return &UserHandler{
		service:     service,
		authService: authService,
		logger:      logger,
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Scheme matching is case-insensitive.
func bearerToken(ctx *gin.Context) (string, bool) {
	header := ctx.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func (h *UserHandler) respondCreateError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, companies.ErrNotFound):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Company does not exist"})
	case errors.Is(err, users.ErrUsernameTaken):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Username already registered"})
	case errors.Is(err, users.ErrEmailTaken):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Email already registered"})
	default:
		h.logger.Error("Failed to persist user: %v", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
	}
}

// Create handles POST /users
func (h *UserHandler) Create(ctx *gin.Context) {
	var req CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	user, err := h.service.Create(ctx.Request.Context(), req.ToDomain(), req.Password)
	if err != nil {
		h.respondCreateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// List handles GET /users
func (h *UserHandler) List(ctx *gin.Context) {
	records, err := h.service.List(ctx.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list users: %v", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	response := make([]UserResponse, 0, len(records))
	for _, record := range records {
		response = append(response, newUserResponse(record))
	}
	ctx.JSON(http.StatusOK, response)
}

// Me handles GET /users/me. It resolves the bearer token into the user it
// was issued for.
func (h *UserHandler) Me(ctx *gin.Context) {
	token, ok := bearerToken(ctx)
	if !ok {
		ctx.Header("WWW-Authenticate", "Bearer")
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "Could not validate credentials"})
		return
	}

	user, err := h.authService.ResolveUser(ctx.Request.Context(), token)
	if err != nil {
		ctx.Header("WWW-Authenticate", "Bearer")
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "Could not validate credentials"})
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// GetByID handles GET /users/:id
func (h *UserHandler) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := h.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: "User not found"})
			return
		}
		h.logger.Error("Failed to get user %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateByID handles PUT /users/:id
func (h *UserHandler) UpdateByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	user, err := h.service.UpdateByID(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: "User not found"})
			return
		}
		h.respondCreateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteByID handles DELETE /users/:id. The deleted record is echoed back
// alongside the confirmation message.
func (h *UserHandler) DeleteByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := h.service.DeleteByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: "User not found"})
			return
		}
		h.logger.Error("Failed to delete user %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, DeleteUserResponse{
		Message: fmt.Sprintf("User ID: %d has been deleted successfully", user.ID),
		User:    newUserResponse(user),
	})
}
