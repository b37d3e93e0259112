package v1

import (
	"net/http"

	"todo_service/internal/domain/auth"
	"todo_service/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the form-encoded login endpoint
type AuthHandler struct {
	service auth.AuthService
	logger  logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service auth.AuthService, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Login handles POST /login. Credentials arrive form-encoded; failures do not
// reveal whether the username or the password was at fault.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.Header("WWW-Authenticate", "Bearer")
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Incorrect username or password"})
		return
	}

	token, err := h.service.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if auth.IsCredentialFailure(err) {
			ctx.Header("WWW-Authenticate", "Bearer")
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Incorrect username or password"})
			return
		}
		h.logger.Error("Failed to issue token for %s: %v", req.Username, err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{
		AccessToken: token.Token,
		TokenType:   token.Type,
	})
}
