package handler

import (
	appidentity "github.com/dealerdesk/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubUserHandler handles company staff accounts
type SubUserHandler struct {
	BaseHandler
	subUserService *appidentity.SubUserService
}

// NewSubUserHandler creates a sub-user handler
func NewSubUserHandler(base BaseHandler, subUserService *appidentity.SubUserService) *SubUserHandler {
	return &SubUserHandler{BaseHandler: base, subUserService: subUserService}
}

// Create godoc
// @ID           createSubUser
// @Summary      Create a sub-user
// @Description  Companies create staff under their own company; admins pass companyId
// @Tags         subusers
// @Accept       json
// @Produce      json
// @Param        request body CreateSubUserRequest true "Sub-user details"
// @Success      201 {object} APIResponse[appidentity.SubUserDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /subusers [post]
func (h *SubUserHandler) Create(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req CreateSubUserRequest
	if !h.bindJSON(c, &req) {
		return
	}
	input := appidentity.CreateSubUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Access:   req.Access.access(),
	}
	if req.CompanyID != nil {
		input.CompanyID = *req.CompanyID
	}

	user, err := h.subUserService.Create(c.Request.Context(), p, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// List godoc
// @ID           listSubUsers
// @Summary      List sub-users
// @Tags         subusers
// @Produce      json
// @Param        page query int false "Page"
// @Param        pageSize query int false "Page size"
// @Param        search query string false "Search name or email"
// @Param        companyId query string false "Company (admins only)"
// @Param        status query string false "active or inactive"
// @Success      200 {object} APIResponse[[]appidentity.SubUserDTO]
// @Security     SessionCookie
// @Router       /subusers [get]
func (h *SubUserHandler) List(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req SubUserListRequest
	if !h.bindQuery(c, &req) {
		return
	}
	filter := appidentity.SubUserFilter{Filter: listFilter(req.ListRequest), Status: req.Status}
	if req.CompanyID != "" {
		id := uuid.MustParse(req.CompanyID)
		filter.CompanyID = &id
	}

	page, err := h.subUserService.List(c.Request.Context(), p, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Me godoc
// @ID           getSubUserMe
// @Summary      Current sub-user
// @Tags         subusers
// @Produce      json
// @Success      200 {object} APIResponse[appidentity.SubUserDTO]
// @Failure      403 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /subusers/me [get]
func (h *SubUserHandler) Me(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	user, err := h.subUserService.Me(c.Request.Context(), p)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Get godoc
// @ID           getSubUser
// @Summary      Get a sub-user
// @Tags         subusers
// @Produce      json
// @Param        id path string true "Sub-user ID"
// @Success      200 {object} APIResponse[appidentity.SubUserDTO]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /subusers/{id} [get]
func (h *SubUserHandler) Get(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	user, err := h.subUserService.Get(c.Request.Context(), p, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Update godoc
// @ID           updateSubUser
// @Summary      Update a sub-user
// @Description  Changing access flags, password or status ends the sub-user's sessions
// @Tags         subusers
// @Accept       json
// @Produce      json
// @Param        id path string true "Sub-user ID"
// @Param        request body UpdateSubUserRequest true "Fields to change"
// @Success      200 {object} APIResponse[appidentity.SubUserDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /subusers/{id} [put]
func (h *SubUserHandler) Update(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req UpdateSubUserRequest
	if !h.bindJSON(c, &req) {
		return
	}
	user, err := h.subUserService.Update(c.Request.Context(), p, id, req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Delete godoc
// @ID           deleteSubUser
// @Summary      Delete a sub-user
// @Tags         subusers
// @Produce      json
// @Param        id path string true "Sub-user ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /subusers/{id} [delete]
func (h *SubUserHandler) Delete(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.subUserService.Delete(c.Request.Context(), p, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Sub-user deleted successfully")
}
