package v1

import (
	"errors"
	"net/http"
	"strconv"

	"todo_service/internal/domain/companies"
	"todo_service/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CompanyHandler exposes company CRUD over REST
type CompanyHandler struct {
	service companies.CompanyService
	logger  logger.Logger
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(service companies.CompanyService, logger logger.Logger) *CompanyHandler {
	return &CompanyHandler{
		service: service,
		logger:  logger,
	}
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid id parameter"})
		return 0, false
	}
	return uint(id), true
}

// Create handles POST /companies
func (h *CompanyHandler) Create(ctx *gin.Context) {
	var req CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	company, err := h.service.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, companies.ErrNameTaken) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Company name already exists"})
			return
		}
		h.logger.Error("Failed to create company: %v", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newCompanyResponse(company))
}

// List handles GET /companies
func (h *CompanyHandler) List(ctx *gin.Context) {
	records, err := h.service.List(ctx.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list companies: %v", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	response := make([]CompanyResponse, 0, len(records))
	for _, record := range records {
		response = append(response, newCompanyResponse(record))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetByID handles GET /companies/:id
func (h *CompanyHandler) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	company, err := h.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, companies.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: "Company ID not found"})
			return
		}
		h.logger.Error("Failed to get company %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newCompanyResponse(company))
}

// UpdateByID handles PUT /companies/:id
func (h *CompanyHandler) UpdateByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	company, err := h.service.UpdateByID(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, companies.ErrNotFound):
			ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: "Company ID not found"})
		case errors.Is(err, companies.ErrNameTaken):
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Company name already exists"})
		default:
			h.logger.Error("Failed to update company %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, newCompanyResponse(company))
}

// DeleteByID handles DELETE /companies/:id
func (h *CompanyHandler) DeleteByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	company, err := h.service.DeleteByID(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, companies.ErrNotFound):
			ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: "Company ID not found"})
		case errors.Is(err, companies.ErrHasUsers):
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Company still has registered users"})
		default:
			h.logger.Error("Failed to delete company %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{
		Message: "Company ID: " + strconv.FormatUint(uint64(company.ID), 10) + ", name: `" + company.Name + "` has been deleted successfully",
	})
}
