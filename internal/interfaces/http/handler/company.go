package handler

import (
	"io"
	"net/http"

	appidentity "github.com/dealerdesk/backend/internal/application/identity"
	"github.com/dealerdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// imageFormField is the multipart field holding an uploaded image
const imageFormField = "image"

// CompanyHandler handles company administration
type CompanyHandler struct {
	BaseHandler
	companyService *appidentity.CompanyService
	maxImageSize   int64
}

// NewCompanyHandler creates a company handler. Uploads above maxImageSize
// bytes are rejected.
func NewCompanyHandler(base BaseHandler, companyService *appidentity.CompanyService, maxImageSize int64) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
		maxImageSize:   maxImageSize,
	}
}

// List godoc
// @ID           listCompanies
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        page query int false "Page"
// @Param        pageSize query int false "Page size"
// @Param        search query string false "Search owner, company name or email"
// @Param        status query string false "active or inactive"
// @Success      200 {object} APIResponse[[]appidentity.CompanyDTO]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	var req CompanyListRequest
	if !h.bindQuery(c, &req) {
		return
	}
	page, err := h.companyService.List(c.Request.Context(), appidentity.CompanyFilter{
		Filter: listFilter(req.ListRequest),
		Status: req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Create godoc
// @ID           createCompany
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        request body RegisterCompanyRequest true "Company details"
// @Success      201 {object} APIResponse[appidentity.CompanyDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req RegisterCompanyRequest
	if !h.bindJSON(c, &req) {
		return
	}
	company, err := h.companyService.Create(c.Request.Context(), req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, company)
}

// Get godoc
// @ID           getCompany
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        id path string true "Company ID"
// @Success      200 {object} APIResponse[appidentity.CompanyDTO]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	company, err := h.companyService.Get(c.Request.Context(), p, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Update godoc
// @ID           updateCompany
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id path string true "Company ID"
// @Param        request body UpdateCompanyRequest true "Fields to change"
// @Success      200 {object} APIResponse[appidentity.CompanyDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /companies/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req UpdateCompanyRequest
	if !h.bindJSON(c, &req) {
		return
	}
	company, err := h.companyService.Update(c.Request.Context(), p, id, req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Delete godoc
// @ID           deleteCompany
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Param        id path string true "Company ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Company deleted successfully")
}

// SetStatus godoc
// @ID           setCompanyStatus
// @Summary      Activate or deactivate a company
// @Description  Deactivation ends every session of the company and its sub-users
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id path string true "Company ID"
// @Param        request body CompanyStatusRequest true "New status"
// @Success      200 {object} APIResponse[appidentity.CompanyDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /companies/{id}/status [patch]
func (h *CompanyHandler) SetStatus(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req CompanyStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}
	company, err := h.companyService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// ChangePIN godoc
// @ID           changeCompanyPin
// @Summary      Set the company PIN
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id path string true "Company ID"
// @Param        request body PINRequest true "New PIN"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /companies/{id}/pin [put]
func (h *CompanyHandler) ChangePIN(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req PINRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.companyService.ChangePIN(c.Request.Context(), p, id, req.PIN); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "PIN updated successfully")
}

// UploadImage godoc
// @ID           uploadCompanyImage
// @Summary      Upload the company logo
// @Description  The image is resized and stored as WebP
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Company ID"
// @Param        image formData file true "Image file"
// @Success      200 {object} APIResponse[appidentity.CompanyDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /companies/{id}/upload-image [post]
func (h *CompanyHandler) UploadImage(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile(imageFormField)
	if err != nil {
		h.Error(c, dto.ErrCodeInvalidInput, "An image file is required in the 'image' field")
		return
	}
	if h.maxImageSize > 0 && file.Size > h.maxImageSize {
		h.Error(c, dto.ErrCodeBodyTooLarge, "Image exceeds the maximum allowed size")
		return
	}
	f, err := file.Open()
	if err != nil {
		h.Error(c, dto.ErrCodeInvalidInput, "Could not read the uploaded image")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		h.Error(c, dto.ErrCodeInvalidInput, "Could not read the uploaded image")
		return
	}

	company, err := h.companyService.UploadImage(c.Request.Context(), p, id, appidentity.UploadImageInput{
		Data:        data,
		ContentType: http.DetectContentType(data),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}
