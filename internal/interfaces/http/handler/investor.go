package handler

import (
	"time"

	appfinance "github.com/dealerdesk/backend/internal/application/finance"
	"github.com/dealerdesk/backend/internal/domain/finance"
	"github.com/dealerdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateInvestorRequest records capital put into a batch
type CreateInvestorRequest struct {
	BatchNo        string          `json:"batchNo" binding:"required,batch_no"`
	Name           string          `json:"name" binding:"required,max=200"`
	Phone          string          `json:"phone" binding:"omitempty,max=50"`
	Email          string          `json:"email" binding:"omitempty,email,max=254"`
	InvestAmount   decimal.Decimal `json:"investAmount" binding:"required,gt=0"`
	AmountPaid     decimal.Decimal `json:"amountPaid" binding:"gte=0"`
	InvestmentDate *time.Time      `json:"investmentDate"`
	Note           string          `json:"note" binding:"omitempty,max=1000"`
}

// UpdateInvestorRequest carries a partial investor update
type UpdateInvestorRequest struct {
	BatchNo        *string          `json:"batchNo" binding:"omitempty,batch_no"`
	Name           *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Phone          *string          `json:"phone" binding:"omitempty,max=50"`
	Email          *string          `json:"email" binding:"omitempty,email,max=254"`
	InvestAmount   *decimal.Decimal `json:"investAmount" binding:"omitempty,gt=0"`
	AmountPaid     *decimal.Decimal `json:"amountPaid" binding:"omitempty,gte=0"`
	InvestmentDate *time.Time       `json:"investmentDate"`
	Note           *string          `json:"note" binding:"omitempty,max=1000"`
}

// InvestorListRequest holds investor listing query parameters
type InvestorListRequest struct {
	dto.ListRequest
	BatchNo string `form:"batchNo"`
}

// InvestorHandler handles batch investors
type InvestorHandler struct {
	BaseHandler
	investorService *appfinance.InvestorService
}

// NewInvestorHandler creates an investor handler
func NewInvestorHandler(base BaseHandler, investorService *appfinance.InvestorService) *InvestorHandler {
	return &InvestorHandler{BaseHandler: base, investorService: investorService}
}

// Create godoc
// @ID           createInvestor
// @Summary      Record an investor
// @Description  remainingAmount is derived as investAmount minus amountPaid
// @Tags         investors
// @Accept       json
// @Produce      json
// @Param        request body CreateInvestorRequest true "Investor details"
// @Success      201 {object} APIResponse[appfinance.InvestorDTO]
// @Failure      400 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /investors [post]
func (h *InvestorHandler) Create(c *gin.Context) {
	companyID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req CreateInvestorRequest
	if !h.bindJSON(c, &req) {
		return
	}
	investor, err := h.investorService.Create(c.Request.Context(), companyID, appfinance.CreateInvestorInput{
		BatchNo:        req.BatchNo,
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		InvestAmount:   req.InvestAmount,
		AmountPaid:     req.AmountPaid,
		InvestmentDate: req.InvestmentDate,
		Note:           req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, investor)
}

// List godoc
// @ID           listInvestors
// @Summary      List investors
// @Tags         investors
// @Produce      json
// @Param        page query int false "Page"
// @Param        pageSize query int false "Page size"
// @Param        search query string false "Search name, phone or email"
// @Param        batchNo query string false "Batch number"
// @Success      200 {object} APIResponse[[]appfinance.InvestorDTO]
// @Security     SessionCookie
// @Router       /investors [get]
func (h *InvestorHandler) List(c *gin.Context) {
	companyID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req InvestorListRequest
	if !h.bindQuery(c, &req) {
		return
	}
	page, err := h.investorService.List(c.Request.Context(), companyID, finance.InvestorFilter{
		Filter:  listFilter(req.ListRequest),
		BatchNo: req.BatchNo,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Get godoc
// @ID           getInvestor
// @Summary      Get an investor
// @Tags         investors
// @Produce      json
// @Param        id path string true "Investor ID"
// @Success      200 {object} APIResponse[appfinance.InvestorDTO]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /investors/{id} [get]
func (h *InvestorHandler) Get(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	investor, err := h.investorService.Get(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, investor)
}

// Update godoc
// @ID           updateInvestor
// @Summary      Update an investor
// @Tags         investors
// @Accept       json
// @Produce      json
// @Param        id path string true "Investor ID"
// @Param        request body UpdateInvestorRequest true "Fields to change"
// @Success      200 {object} APIResponse[appfinance.InvestorDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /investors/{id} [put]
func (h *InvestorHandler) Update(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	var req UpdateInvestorRequest
	if !h.bindJSON(c, &req) {
		return
	}
	investor, err := h.investorService.Update(c.Request.Context(), companyID, id, appfinance.UpdateInvestorInput{
		BatchNo:        req.BatchNo,
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		InvestAmount:   req.InvestAmount,
		AmountPaid:     req.AmountPaid,
		InvestmentDate: req.InvestmentDate,
		Note:           req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, investor)
}

// Delete godoc
// @ID           deleteInvestor
// @Summary      Delete an investor
// @Tags         investors
// @Produce      json
// @Param        id path string true "Investor ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /investors/{id} [delete]
func (h *InvestorHandler) Delete(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	if err := h.investorService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Investor deleted successfully")
}
