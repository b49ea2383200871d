package handler

import (
	"time"

	appinventory "github.com/dealerdesk/backend/internal/application/inventory"
	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/dealerdesk/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
)

// =====================
// Batch DTOs
// =====================

// CreateBatchRequest creates a shipment batch
type CreateBatchRequest struct {
	BatchNo     string     `json:"batchNo" binding:"required,batch_no"`
	Description string     `json:"description" binding:"omitempty,max=1000"`
	ArrivalDate *time.Time `json:"arrivalDate"`
}

// UpdateBatchRequest changes the descriptive fields of a batch. The batch
// number cannot be changed.
type UpdateBatchRequest struct {
	Description *string    `json:"description" binding:"omitempty,max=1000"`
	ArrivalDate *time.Time `json:"arrivalDate"`
}

// CreateExpenseRequest records a batch-level expense
type CreateExpenseRequest struct {
	Title  string          `json:"title" binding:"required,max=200"`
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Date   *time.Time      `json:"date"`
	Note   string          `json:"note" binding:"omitempty,max=1000"`
}

// AdminSweepRequest scopes an admin recompute to one company; empty means all
type AdminSweepRequest struct {
	CompanyID string `form:"companyId" binding:"omitempty,uuid"`
}

// =====================
// Car DTOs
// =====================

// CreateCarRequest registers a car in a batch
type CreateCarRequest struct {
	BatchNo       string                     `json:"batchNo" binding:"required,batch_no"`
	ChassisNumber string                     `json:"chassisNumber" binding:"required,max=100"`
	Make          string                     `json:"make" binding:"omitempty,max=100"`
	Model         string                     `json:"model" binding:"omitempty,max=100"`
	Year          int                        `json:"year" binding:"omitempty,min=1900,max=2100"`
	Color         string                     `json:"color" binding:"omitempty,max=50"`
	EngineNumber  string                     `json:"engineNumber" binding:"omitempty,max=100"`
	AuctionGrade  string                     `json:"auctionGrade" binding:"omitempty,max=20"`
	Mileage       int                        `json:"mileage" binding:"omitempty,min=0"`
	Financing     *appinventory.FinancingDTO `json:"financing"`
}

func (r CreateCarRequest) input() appinventory.CreateCarInput {
	return appinventory.CreateCarInput{
		BatchNo:       r.BatchNo,
		ChassisNumber: r.ChassisNumber,
		Make:          r.Make,
		Model:         r.Model,
		Year:          r.Year,
		Color:         r.Color,
		EngineNumber:  r.EngineNumber,
		AuctionGrade:  r.AuctionGrade,
		Mileage:       r.Mileage,
		Financing:     r.Financing,
	}
}

// UpdateCarRequest carries a partial car update
type UpdateCarRequest struct {
	BatchNo       *string                    `json:"batchNo" binding:"omitempty,batch_no"`
	ChassisNumber *string                    `json:"chassisNumber" binding:"omitempty,min=1,max=100"`
	Make          *string                    `json:"make" binding:"omitempty,max=100"`
	Model         *string                    `json:"model" binding:"omitempty,max=100"`
	Year          *int                       `json:"year" binding:"omitempty,min=1900,max=2100"`
	Color         *string                    `json:"color" binding:"omitempty,max=50"`
	EngineNumber  *string                    `json:"engineNumber" binding:"omitempty,max=100"`
	AuctionGrade  *string                    `json:"auctionGrade" binding:"omitempty,max=20"`
	Mileage       *int                       `json:"mileage" binding:"omitempty,min=0"`
	Status        *inventory.CarStatus       `json:"status" binding:"omitempty,oneof=in_stock sold"`
	Financing     *appinventory.FinancingDTO `json:"financing"`
}

func (r UpdateCarRequest) input() appinventory.UpdateCarInput {
	return appinventory.UpdateCarInput{
		BatchNo:       r.BatchNo,
		ChassisNumber: r.ChassisNumber,
		Make:          r.Make,
		Model:         r.Model,
		Year:          r.Year,
		Color:         r.Color,
		EngineNumber:  r.EngineNumber,
		AuctionGrade:  r.AuctionGrade,
		Mileage:       r.Mileage,
		Status:        r.Status,
		Financing:     r.Financing,
	}
}

// CarListRequest holds car listing query parameters
type CarListRequest struct {
	dto.ListRequest
	BatchNo string              `form:"batchNo"`
	Status  inventory.CarStatus `form:"status" binding:"omitempty,oneof=in_stock sold"`
}
