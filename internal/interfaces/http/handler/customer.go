package handler

import (
	appsales "github.com/dealerdesk/backend/internal/application/sales"
	"github.com/dealerdesk/backend/internal/domain/sales"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles car sales and their installment ledgers
type CustomerHandler struct {
	BaseHandler
	customerService *appsales.CustomerService
}

// NewCustomerHandler creates a customer handler
func NewCustomerHandler(base BaseHandler, customerService *appsales.CustomerService) *CustomerHandler {
	return &CustomerHandler{BaseHandler: base, customerService: customerService}
}

// Create godoc
// @ID           createCustomer
// @Summary      Record a sale
// @Description  The matching car, if any, is marked sold
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body CreateCustomerRequest true "Sale details"
// @Success      201 {object} APIResponse[appsales.CustomerDTO]
// @Failure      400 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	companyID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req CreateCustomerRequest
	if !h.bindJSON(c, &req) {
		return
	}
	customer, err := h.customerService.Create(c.Request.Context(), companyID, req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, customer)
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        page query int false "Page"
// @Param        pageSize query int false "Page size"
// @Param        search query string false "Search buyer name, phone or chassis"
// @Param        paymentStatus query string false "pending, partial or paid"
// @Param        chassisNumber query string false "Exact chassis number"
// @Success      200 {object} APIResponse[[]appsales.CustomerDTO]
// @Security     SessionCookie
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	companyID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req CustomerListRequest
	if !h.bindQuery(c, &req) {
		return
	}
	page, err := h.customerService.List(c.Request.Context(), companyID, sales.CustomerFilter{
		Filter:        listFilter(req.ListRequest),
		PaymentStatus: req.PaymentStatus,
		ChassisNumber: req.ChassisNumber,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Get godoc
// @ID           getCustomer
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200 {object} APIResponse[appsales.CustomerDTO]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	customer, err := h.customerService.Get(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Update godoc
// @ID           updateCustomer
// @Summary      Update a customer
// @Description  Changing the sale price re-derives the remaining balance and payment status
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID"
// @Param        request body UpdateCustomerRequest true "Fields to change"
// @Success      200 {object} APIResponse[appsales.CustomerDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	var req UpdateCustomerRequest
	if !h.bindJSON(c, &req) {
		return
	}
	customer, err := h.customerService.Update(c.Request.Context(), companyID, id, req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Delete godoc
// @ID           deleteCustomer
// @Summary      Delete a customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	if err := h.customerService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Customer deleted successfully")
}

// AddPayment godoc
// @ID           addCustomerPayment
// @Summary      Record an installment
// @Description  Rejected when the amount exceeds the remaining balance
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID"
// @Param        request body PaymentRequest true "Installment"
// @Success      201 {object} APIResponse[appsales.LedgerResult]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /customers/{id}/payments [post]
func (h *CustomerHandler) AddPayment(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	var req PaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.customerService.AddPayment(c.Request.Context(), companyID, id, req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// UpdatePayment godoc
// @ID           updateCustomerPayment
// @Summary      Correct an installment
// @Description  Later installments' running totals are recomputed
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID"
// @Param        paymentId path string true "Payment ID"
// @Param        request body UpdatePaymentRequest true "Corrected installment"
// @Success      200 {object} APIResponse[appsales.LedgerResult]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /customers/{id}/payments/{paymentId} [put]
func (h *CustomerHandler) UpdatePayment(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	paymentID, ok := h.uuidParam(c, "paymentId")
	if !ok {
		return
	}
	var req UpdatePaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.customerService.UpdatePayment(c.Request.Context(), companyID, id, paymentID, appsales.UpdatePaymentInput{
		AmountPaid:    req.AmountPaid,
		PaymentMethod: req.PaymentMethod.toDTO(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ListPayments godoc
// @ID           listCustomerPayments
// @Summary      List installments
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200 {object} APIResponse[[]appsales.PaymentDTO]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /customers/{id}/payments [get]
func (h *CustomerHandler) ListPayments(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	payments, err := h.customerService.ListPayments(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payments)
}
