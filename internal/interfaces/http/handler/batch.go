package handler

import (
	"context"

	appinventory "github.com/dealerdesk/backend/internal/application/inventory"
	"github.com/dealerdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BatchHandler handles shipment batches, their expenses and their derived totals
type BatchHandler struct {
	BaseHandler
	batchService *appinventory.BatchService
	aggregator   *appinventory.BatchAggregator
}

// NewBatchHandler creates a batch handler
func NewBatchHandler(base BaseHandler, batchService *appinventory.BatchService, aggregator *appinventory.BatchAggregator) *BatchHandler {
	return &BatchHandler{BaseHandler: base, batchService: batchService, aggregator: aggregator}
}

// Create godoc
// @ID           createBatch
// @Summary      Create a batch
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        request body CreateBatchRequest true "Batch details"
// @Success      201 {object} APIResponse[appinventory.BatchDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /batches [post]
func (h *BatchHandler) Create(c *gin.Context) {
	companyID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req CreateBatchRequest
	if !h.bindJSON(c, &req) {
		return
	}
	batch, err := h.batchService.Create(c.Request.Context(), companyID, appinventory.CreateBatchInput{
		BatchNo:     req.BatchNo,
		Description: req.Description,
		ArrivalDate: req.ArrivalDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, batch)
}

// List godoc
// @ID           listBatches
// @Summary      List batches
// @Tags         batches
// @Produce      json
// @Param        page query int false "Page"
// @Param        pageSize query int false "Page size"
// @Param        search query string false "Search batch number"
// @Success      200 {object} APIResponse[[]appinventory.BatchDTO]
// @Security     SessionCookie
// @Router       /batches [get]
func (h *BatchHandler) List(c *gin.Context) {
	companyID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req dto.ListRequest
	if !h.bindQuery(c, &req) {
		return
	}
	page, err := h.batchService.List(c.Request.Context(), companyID, listFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Get godoc
// @ID           getBatch
// @Summary      Get a batch
// @Tags         batches
// @Produce      json
// @Param        id path string true "Batch ID"
// @Success      200 {object} APIResponse[appinventory.BatchDTO]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /batches/{id} [get]
func (h *BatchHandler) Get(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	batch, err := h.batchService.Get(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, batch)
}

// Update godoc
// @ID           updateBatch
// @Summary      Update a batch
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        id path string true "Batch ID"
// @Param        request body UpdateBatchRequest true "Fields to change"
// @Success      200 {object} APIResponse[appinventory.BatchDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /batches/{id} [put]
func (h *BatchHandler) Update(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	var req UpdateBatchRequest
	if !h.bindJSON(c, &req) {
		return
	}
	batch, err := h.batchService.Update(c.Request.Context(), companyID, id, appinventory.UpdateBatchInput{
		Description: req.Description,
		ArrivalDate: req.ArrivalDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, batch)
}

// Delete godoc
// @ID           deleteBatch
// @Summary      Delete a batch
// @Description  Fails with 409 while cars, customers or investors reference the batch
// @Tags         batches
// @Produce      json
// @Param        id path string true "Batch ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /batches/{id} [delete]
func (h *BatchHandler) Delete(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	if err := h.batchService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Batch deleted successfully")
}

// AddExpense godoc
// @ID           addBatchExpense
// @Summary      Record a batch expense
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        id path string true "Batch ID"
// @Param        request body CreateExpenseRequest true "Expense"
// @Success      201 {object} APIResponse[appinventory.BatchExpenseDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /batches/{id}/expenses [post]
func (h *BatchHandler) AddExpense(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	var req CreateExpenseRequest
	if !h.bindJSON(c, &req) {
		return
	}
	expense, err := h.batchService.AddExpense(c.Request.Context(), companyID, id, appinventory.CreateExpenseInput{
		Title:  req.Title,
		Amount: req.Amount,
		Date:   req.Date,
		Note:   req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, expense)
}

// ListExpenses godoc
// @ID           listBatchExpenses
// @Summary      List batch expenses
// @Tags         batches
// @Produce      json
// @Param        id path string true "Batch ID"
// @Success      200 {object} APIResponse[[]appinventory.BatchExpenseDTO]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /batches/{id}/expenses [get]
func (h *BatchHandler) ListExpenses(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	expenses, err := h.batchService.ListExpenses(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expenses)
}

// DeleteExpense godoc
// @ID           deleteBatchExpense
// @Summary      Delete a batch expense
// @Tags         batches
// @Produce      json
// @Param        id path string true "Batch ID"
// @Param        expenseId path string true "Expense ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /batches/{id}/expenses/{expenseId} [delete]
func (h *BatchHandler) DeleteExpense(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	expenseID, ok := h.uuidParam(c, "expenseId")
	if !ok {
		return
	}
	if err := h.batchService.DeleteExpense(c.Request.Context(), companyID, id, expenseID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Expense deleted successfully")
}

// TotalCost godoc
// @ID           computeBatchTotalCost
// @Summary      Recompute a batch's total cost
// @Description  Sums the landed cost of every car in the batch and stores it
// @Tags         batches
// @Produce      json
// @Param        id path string true "Batch ID"
// @Success      200 {object} APIResponse[appinventory.AggregationResult]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /batches/{id}/total-cost [post]
func (h *BatchHandler) TotalCost(c *gin.Context) {
	h.compute(c, h.aggregator.ComputeTotalCost)
}

// TotalSalePrice godoc
// @ID           computeBatchTotalSalePrice
// @Summary      Recompute a batch's total sale price
// @Tags         batches
// @Produce      json
// @Param        id path string true "Batch ID"
// @Success      200 {object} APIResponse[appinventory.AggregationResult]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /batches/{id}/total-sale-price [post]
func (h *BatchHandler) TotalSalePrice(c *gin.Context) {
	h.compute(c, h.aggregator.ComputeTotalSalePrice)
}

// TotalInvestment godoc
// @ID           computeBatchTotalInvestment
// @Summary      Recompute a batch's total investment
// @Tags         batches
// @Produce      json
// @Param        id path string true "Batch ID"
// @Success      200 {object} APIResponse[appinventory.AggregationResult]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /batches/{id}/total-investment [post]
func (h *BatchHandler) TotalInvestment(c *gin.Context) {
	h.compute(c, h.aggregator.ComputeTotalInvestment)
}

// TotalExpense godoc
// @ID           computeBatchTotalExpense
// @Summary      Recompute a batch's total expense
// @Tags         batches
// @Produce      json
// @Param        id path string true "Batch ID"
// @Success      200 {object} APIResponse[appinventory.AggregationResult]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /batches/{id}/total-expense [post]
func (h *BatchHandler) TotalExpense(c *gin.Context) {
	h.compute(c, h.aggregator.ComputeTotalExpense)
}

type computeFunc func(ctx context.Context, companyID, batchID uuid.UUID) (*appinventory.AggregationResult, error)

func (h *BatchHandler) compute(c *gin.Context, fn computeFunc) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	result, err := fn(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RecalculateTotalCost godoc
// @ID           recalculateCompanyTotalCost
// @Summary      Recompute the total cost of every batch of the company
// @Description  Failing batches are reported per item; the sweep continues past them
// @Tags         batches
// @Produce      json
// @Success      200 {object} APIResponse[appinventory.SweepReport]
// @Security     SessionCookie
// @Router       /batches/recalculate/total-cost [post]
func (h *BatchHandler) RecalculateTotalCost(c *gin.Context) {
	h.sweepOwn(c, h.aggregator.CalculateAllBatchesTotalCost)
}

// RecalculateTotalSalePrice godoc
// @ID           recalculateCompanyTotalSalePrice
// @Summary      Recompute the total sale price of every batch of the company
// @Tags         batches
// @Produce      json
// @Success      200 {object} APIResponse[appinventory.SweepReport]
// @Security     SessionCookie
// @Router       /batches/recalculate/total-sale-price [post]
func (h *BatchHandler) RecalculateTotalSalePrice(c *gin.Context) {
	h.sweepOwn(c, h.aggregator.CalculateAllBatchesTotalSalePrice)
}

// RecalculateAll godoc
// @ID           recalculateCompanyAll
// @Summary      Recompute every total of every batch of the company
// @Tags         batches
// @Produce      json
// @Success      200 {object} APIResponse[appinventory.SweepReport]
// @Security     SessionCookie
// @Router       /batches/recalculate/all [post]
func (h *BatchHandler) RecalculateAll(c *gin.Context) {
	h.sweepOwn(c, h.aggregator.RecalculateAllBatches)
}

// AdminRecalculateTotalCost godoc
// @ID           adminRecalculateTotalCost
// @Summary      Recompute batch cost totals across tenants
// @Description  Without companyId every company's batches are recomputed
// @Tags         admin
// @Produce      json
// @Param        companyId query string false "Restrict to one company"
// @Success      200 {object} APIResponse[appinventory.SweepReport]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /admin/batches/recalculate/total-cost [post]
func (h *BatchHandler) AdminRecalculateTotalCost(c *gin.Context) {
	h.sweepAdmin(c, h.aggregator.CalculateAllBatchesTotalCost)
}

// AdminRecalculateTotalSalePrice godoc
// @ID           adminRecalculateTotalSalePrice
// @Summary      Recompute batch sale price totals across tenants
// @Description  Without companyId every company's batches are recomputed
// @Tags         admin
// @Produce      json
// @Param        companyId query string false "Restrict to one company"
// @Success      200 {object} APIResponse[appinventory.SweepReport]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /admin/batches/recalculate/total-sale-price [post]
func (h *BatchHandler) AdminRecalculateTotalSalePrice(c *gin.Context) {
	h.sweepAdmin(c, h.aggregator.CalculateAllBatchesTotalSalePrice)
}

type sweepFunc func(ctx context.Context, companyID *uuid.UUID) (*appinventory.SweepReport, error)

func (h *BatchHandler) sweepOwn(c *gin.Context, fn sweepFunc) {
	companyID, ok := h.tenant(c)
	if !ok {
		return
	}
	h.runSweep(c, fn, &companyID)
}

func (h *BatchHandler) sweepAdmin(c *gin.Context, fn sweepFunc) {
	var req AdminSweepRequest
	if !h.bindQuery(c, &req) {
		return
	}
	var companyID *uuid.UUID
	if req.CompanyID != "" {
		id := uuid.MustParse(req.CompanyID)
		companyID = &id
	}
	h.runSweep(c, fn, companyID)
}

func (h *BatchHandler) runSweep(c *gin.Context, fn sweepFunc, companyID *uuid.UUID) {
	report, err := fn(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}
