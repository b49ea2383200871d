package handler

import (
	appreport "github.com/dealerdesk/backend/internal/application/report"
	"github.com/dealerdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard and analytics views
type ReportHandler struct {
	BaseHandler
	dashboard *appreport.DashboardService
	analytics *appreport.AnalyticsService
}

// NewReportHandler creates a report handler
func NewReportHandler(base BaseHandler, dashboard *appreport.DashboardService, analytics *appreport.AnalyticsService) *ReportHandler {
	return &ReportHandler{BaseHandler: base, dashboard: dashboard, analytics: analytics}
}

// DashboardSummary godoc
// @ID           getDashboardSummary
// @Summary      Dashboard summary
// @Description  Inventory counts, outstanding receivables and investor capital of the company
// @Tags         reports
// @Produce      json
// @Success      200 {object} APIResponse[appreport.DashboardSummary]
// @Security     SessionCookie
// @Router       /dashboard/summary [get]
func (h *ReportHandler) DashboardSummary(c *gin.Context) {
	companyID, ok := h.tenant(c)
	if !ok {
		return
	}
	summary, err := h.dashboard.Summary(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// BatchProfitability godoc
// @ID           listBatchProfitability
// @Summary      Batch profitability
// @Description  Stored totals and profit per batch; ordered by profit unless orderBy is given
// @Tags         reports
// @Produce      json
// @Param        page query int false "Page"
// @Param        pageSize query int false "Page size"
// @Param        search query string false "Search batch number"
// @Param        orderBy query string false "Sort field"
// @Param        orderDir query string false "asc or desc"
// @Success      200 {object} APIResponse[[]appreport.BatchProfitability]
// @Security     SessionCookie
// @Router       /analytics/batches [get]
func (h *ReportHandler) BatchProfitability(c *gin.Context) {
	companyID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req dto.ListRequest
	if !h.bindQuery(c, &req) {
		return
	}
	filter := listFilter(req)
	if req.OrderBy == "" {
		// the service picks its own default order
		filter.OrderBy = ""
	}
	page, err := h.analytics.BatchProfitability(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}
