package handler

import (
	appinventory "github.com/dealerdesk/backend/internal/application/inventory"
	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/gin-gonic/gin"
)

// CarHandler handles the car inventory
type CarHandler struct {
	BaseHandler
	carService *appinventory.CarService
}

// NewCarHandler creates a car handler
func NewCarHandler(base BaseHandler, carService *appinventory.CarService) *CarHandler {
	return &CarHandler{BaseHandler: base, carService: carService}
}

// Create godoc
// @ID           createCar
// @Summary      Register a car
// @Description  The batch must exist; chassis numbers are unique per company
// @Tags         cars
// @Accept       json
// @Produce      json
// @Param        request body CreateCarRequest true "Car details"
// @Success      201 {object} APIResponse[appinventory.CarDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /cars [post]
func (h *CarHandler) Create(c *gin.Context) {
	companyID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req CreateCarRequest
	if !h.bindJSON(c, &req) {
		return
	}
	car, err := h.carService.Create(c.Request.Context(), companyID, req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, car)
}

// List godoc
// @ID           listCars
// @Summary      List cars
// @Tags         cars
// @Produce      json
// @Param        page query int false "Page"
// @Param        pageSize query int false "Page size"
// @Param        search query string false "Search chassis, make or model"
// @Param        batchNo query string false "Batch number"
// @Param        status query string false "in_stock or sold"
// @Success      200 {object} APIResponse[[]appinventory.CarDTO]
// @Security     SessionCookie
// @Router       /cars [get]
func (h *CarHandler) List(c *gin.Context) {
	companyID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req CarListRequest
	if !h.bindQuery(c, &req) {
		return
	}
	page, err := h.carService.List(c.Request.Context(), companyID, inventory.CarFilter{
		Filter:  listFilter(req.ListRequest),
		BatchNo: req.BatchNo,
		Status:  req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// Get godoc
// @ID           getCar
// @Summary      Get a car
// @Tags         cars
// @Produce      json
// @Param        id path string true "Car ID"
// @Success      200 {object} APIResponse[appinventory.CarDTO]
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /cars/{id} [get]
func (h *CarHandler) Get(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	car, err := h.carService.Get(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, car)
}

// Update godoc
// @ID           updateCar
// @Summary      Update a car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Param        id path string true "Car ID"
// @Param        request body UpdateCarRequest true "Fields to change"
// @Success      200 {object} APIResponse[appinventory.CarDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /cars/{id} [put]
func (h *CarHandler) Update(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	var req UpdateCarRequest
	if !h.bindJSON(c, &req) {
		return
	}
	car, err := h.carService.Update(c.Request.Context(), companyID, id, req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, car)
}

// Delete godoc
// @ID           deleteCar
// @Summary      Delete a car
// @Tags         cars
// @Produce      json
// @Param        id path string true "Car ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /cars/{id} [delete]
func (h *CarHandler) Delete(c *gin.Context) {
	companyID, id, ok := h.tenantAndID(c)
	if !ok {
		return
	}
	if err := h.carService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Car deleted successfully")
}
