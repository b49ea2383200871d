package handler

import (
	appidentity "github.com/dealerdesk/backend/internal/application/identity"
	"github.com/dealerdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles storefront site users
type UserHandler struct {
	BaseHandler
	siteUserService *appidentity.SiteUserService
}

// NewUserHandler creates a site user handler
func NewUserHandler(base BaseHandler, siteUserService *appidentity.SiteUserService) *UserHandler {
	return &UserHandler{BaseHandler: base, siteUserService: siteUserService}
}

// Register godoc
// @ID           registerUser
// @Summary      Register a site user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RegisterSiteUserRequest true "User details"
// @Success      201 {object} APIResponse[appidentity.SiteUserDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterSiteUserRequest
	if !h.bindJSON(c, &req) {
		return
	}
	user, err := h.siteUserService.Register(c.Request.Context(), appidentity.RegisterSiteUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// List godoc
// @ID           listUsers
// @Summary      List site users
// @Tags         users
// @Produce      json
// @Param        page query int false "Page"
// @Param        pageSize query int false "Page size"
// @Param        search query string false "Search name or email"
// @Success      200 {object} APIResponse[[]appidentity.SiteUserDTO]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if !h.bindQuery(c, &req) {
		return
	}
	page, err := h.siteUserService.List(c.Request.Context(), listFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Delete godoc
// @ID           deleteUser
// @Summary      Delete a site user
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.siteUserService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "User deleted successfully")
}
