package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/logger"
	"github.com/dealerdesk/backend/internal/interfaces/http/dto"
	"github.com/dealerdesk/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct {
	// ExposeCause puts the underlying error text of 500 responses in error.cause
	ExposeCause bool
}

// NewBaseHandler creates the shared handler base
func NewBaseHandler(exposeCause bool) BaseHandler {
	return BaseHandler{ExposeCause: exposeCause}
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Message sends a success response carrying only a message
func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.NewMessageResponse(message))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Page sends a paginated listing with its meta block
func Page[T any](c *gin.Context, page *shared.Paginated[T]) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(page.Items, page.Total, page.Page, page.PageSize))
}

// Error sends an error response, deriving the status from the code
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponse(code, message))
}

// HandleError converts an error returned by a service into the envelope.
// Domain errors keep their code; anything else is a 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		if status := dto.GetHTTPStatus(domainErr.Code); status != http.StatusInternalServerError {
			c.JSON(status, dto.NewErrorResponse(domainErr.Code, domainErr.Message))
			return
		}
	}

	logger.GetGinLogger(c).Error("Request failed", zap.Error(err))

	resp := dto.NewErrorResponse(dto.ErrCodeInternal, "An unexpected error occurred")
	if h.ExposeCause {
		resp.Error.Cause = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// bindJSON decodes the body into req and writes the 400 on failure
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// bindQuery decodes query parameters into req and writes the 400 on failure
func (h *BaseHandler) bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// principal returns the session principal. Routes using it sit behind
// SessionAuth, so a miss is answered as unauthenticated.
func (h *BaseHandler) principal(c *gin.Context) (identity.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		h.Error(c, dto.ErrCodeUnauthorized, "Authentication required")
	}
	return p, ok
}

// tenant returns the company the session acts for
func (h *BaseHandler) tenant(c *gin.Context) (uuid.UUID, bool) {
	p, ok := h.principal(c)
	if !ok {
		return uuid.Nil, false
	}
	if !p.HasTenant() {
		h.Error(c, dto.ErrCodeForbidden, "A company session is required")
		return uuid.Nil, false
	}
	return p.CompanyID, true
}

// tenantAndID resolves the session company and the :id path parameter
func (h *BaseHandler) tenantAndID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	companyID, ok := h.tenant(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return companyID, id, true
}

// uuidParam parses a path parameter. Malformed ids are reported as missing
// resources.
func (h *BaseHandler) uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.Error(c, dto.ErrCodeNotFound, "Resource not found")
		return uuid.Nil, false
	}
	return id, true
}

// listFilter turns a bound list request into a normalized domain filter
func listFilter(req dto.ListRequest) shared.Filter {
	f := shared.DefaultFilter()
	if req.Page > 0 {
		f.Page = req.Page
	}
	if req.PageSize > 0 {
		f.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		f.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		f.OrderDir = req.OrderDir
	}
	f.Search = strings.TrimSpace(req.Search)
	return f.Normalize()
}
