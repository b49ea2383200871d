package inventory

import (
	"time"

	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchDTO represents a batch in API responses
type BatchDTO struct {
	ID              uuid.UUID       `json:"id"`
	CompanyID       uuid.UUID       `json:"companyId"`
	BatchNo         string          `json:"batchNo"`
	Description     string          `json:"description,omitempty"`
	ArrivalDate     *time.Time      `json:"arrivalDate,omitempty"`
	TotalCost       decimal.Decimal `json:"totalCost"`
	TotalSalePrice  decimal.Decimal `json:"totalSalePrice"`
	TotalInvestment decimal.Decimal `json:"totalInvestment"`
	TotalExpense    decimal.Decimal `json:"totalExpense"`
	Profit          decimal.Decimal `json:"profit"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ToBatchDTO converts a batch to its response form
func ToBatchDTO(b *inventory.Batch) *BatchDTO {
	return &BatchDTO{
		ID:              b.ID,
		CompanyID:       b.CompanyID,
		BatchNo:         b.BatchNo,
		Description:     b.Description,
		ArrivalDate:     b.ArrivalDate,
		TotalCost:       b.TotalCost,
		TotalSalePrice:  b.TotalSalePrice,
		TotalInvestment: b.TotalInvestment,
		TotalExpense:    b.TotalExpense,
		Profit:          b.Profit,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// CreateBatchInput contains the fields to create a batch
type CreateBatchInput struct {
	BatchNo     string
	Description string
	ArrivalDate *time.Time
}

// UpdateBatchInput contains the editable batch fields. BatchNo may be sent
// back unchanged but never altered.
type UpdateBatchInput struct {
	BatchNo     *string
	Description *string
	ArrivalDate *time.Time
}

// BatchExpenseDTO represents a batch expense in API responses
type BatchExpenseDTO struct {
	ID        uuid.UUID       `json:"id"`
	BatchID   uuid.UUID       `json:"batchId"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToBatchExpenseDTO converts an expense to its response form
func ToBatchExpenseDTO(e *inventory.BatchExpense) *BatchExpenseDTO {
	return &BatchExpenseDTO{
		ID:        e.ID,
		BatchID:   e.BatchID,
		Title:     e.Title,
		Amount:    e.Amount,
		Date:      e.Date,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

// CreateExpenseInput contains the fields of a new batch expense
type CreateExpenseInput struct {
	Title  string
	Amount decimal.Decimal
	Date   *time.Time
	Note   string
}

// CostTripleDTO is a foreign cost line
type CostTripleDTO struct {
	Amount      decimal.Decimal `json:"amount"`
	Rate        decimal.Decimal `json:"rate"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// FinancingDTO is the landed-cost breakdown of a car in requests and responses.
// Missing lines decode as zero.
type FinancingDTO struct {
	AuctionPrice     CostTripleDTO `json:"auctionPrice"`
	AuctionFee       CostTripleDTO `json:"auctionFee"`
	InspectionFee    CostTripleDTO `json:"inspectionFee"`
	RecycleFee       CostTripleDTO `json:"recycleFee"`
	RiksoFee         CostTripleDTO `json:"riksoFee"`
	ExportFreight    CostTripleDTO `json:"exportFreight"`
	InsuranceForeign CostTripleDTO `json:"insuranceForeign"`

	CustomsDuty      decimal.Decimal `json:"customsDuty"`
	SalesTax         decimal.Decimal `json:"salesTax"`
	IncomeTax        decimal.Decimal `json:"incomeTax"`
	RegulatoryDuty   decimal.Decimal `json:"regulatoryDuty"`
	PortCharges      decimal.Decimal `json:"portCharges"`
	ClearingCharges  decimal.Decimal `json:"clearingCharges"`
	LocalTransport   decimal.Decimal `json:"localTransport"`
	RepairCharges    decimal.Decimal `json:"repairCharges"`
	RegistrationFee  decimal.Decimal `json:"registrationFee"`
	AgentCommission  decimal.Decimal `json:"agentCommission"`
	LocalInsurance   decimal.Decimal `json:"localInsurance"`
	DocumentationFee decimal.Decimal `json:"documentationFee"`
	Miscellaneous    decimal.Decimal `json:"miscellaneous"`
}

func (t CostTripleDTO) toDomain() inventory.CostTriple {
	return inventory.CostTriple{Amount: t.Amount, Rate: t.Rate, TotalAmount: t.TotalAmount}
}

func fromTriple(t inventory.CostTriple) CostTripleDTO {
	return CostTripleDTO{Amount: t.Amount, Rate: t.Rate, TotalAmount: t.TotalAmount}
}

// ToDomain converts the breakdown into its domain form; nil stays nil
func (f *FinancingDTO) ToDomain() *inventory.Financing {
	if f == nil {
		return nil
	}
	return &inventory.Financing{
		AuctionPrice:     f.AuctionPrice.toDomain(),
		AuctionFee:       f.AuctionFee.toDomain(),
		InspectionFee:    f.InspectionFee.toDomain(),
		RecycleFee:       f.RecycleFee.toDomain(),
		RiksoFee:         f.RiksoFee.toDomain(),
		ExportFreight:    f.ExportFreight.toDomain(),
		InsuranceForeign: f.InsuranceForeign.toDomain(),
		CustomsDuty:      f.CustomsDuty,
		SalesTax:         f.SalesTax,
		IncomeTax:        f.IncomeTax,
		RegulatoryDuty:   f.RegulatoryDuty,
		PortCharges:      f.PortCharges,
		ClearingCharges:  f.ClearingCharges,
		LocalTransport:   f.LocalTransport,
		RepairCharges:    f.RepairCharges,
		RegistrationFee:  f.RegistrationFee,
		AgentCommission:  f.AgentCommission,
		LocalInsurance:   f.LocalInsurance,
		DocumentationFee: f.DocumentationFee,
		Miscellaneous:    f.Miscellaneous,
	}
}

func toFinancingDTO(f *inventory.Financing) *FinancingDTO {
	if f == nil {
		return nil
	}
	return &FinancingDTO{
		AuctionPrice:     fromTriple(f.AuctionPrice),
		AuctionFee:       fromTriple(f.AuctionFee),
		InspectionFee:    fromTriple(f.InspectionFee),
		RecycleFee:       fromTriple(f.RecycleFee),
		RiksoFee:         fromTriple(f.RiksoFee),
		ExportFreight:    fromTriple(f.ExportFreight),
		InsuranceForeign: fromTriple(f.InsuranceForeign),
		CustomsDuty:      f.CustomsDuty,
		SalesTax:         f.SalesTax,
		IncomeTax:        f.IncomeTax,
		RegulatoryDuty:   f.RegulatoryDuty,
		PortCharges:      f.PortCharges,
		ClearingCharges:  f.ClearingCharges,
		LocalTransport:   f.LocalTransport,
		RepairCharges:    f.RepairCharges,
		RegistrationFee:  f.RegistrationFee,
		AgentCommission:  f.AgentCommission,
		LocalInsurance:   f.LocalInsurance,
		DocumentationFee: f.DocumentationFee,
		Miscellaneous:    f.Miscellaneous,
	}
}

// CarDTO represents a car in API responses
type CarDTO struct {
	ID            uuid.UUID           `json:"id"`
	CompanyID     uuid.UUID           `json:"companyId"`
	BatchNo       string              `json:"batchNo,omitempty"`
	ChassisNumber string              `json:"chassisNumber"`
	Make          string              `json:"make,omitempty"`
	Model         string              `json:"model,omitempty"`
	Year          int                 `json:"year,omitempty"`
	Color         string              `json:"color,omitempty"`
	EngineNumber  string              `json:"engineNumber,omitempty"`
	AuctionGrade  string              `json:"auctionGrade,omitempty"`
	Mileage       int                 `json:"mileage"`
	Status        inventory.CarStatus `json:"status"`
	Financing     *FinancingDTO       `json:"financing,omitempty"`
	TotalCost     decimal.Decimal     `json:"totalCost"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// ToCarDTO converts a car to its response form
func ToCarDTO(c *inventory.Car) *CarDTO {
	return &CarDTO{
		ID:            c.ID,
		CompanyID:     c.CompanyID,
		BatchNo:       c.BatchNo,
		ChassisNumber: c.ChassisNumber,
		Make:          c.Make,
		Model:         c.Model,
		Year:          c.Year,
		Color:         c.Color,
		EngineNumber:  c.EngineNumber,
		AuctionGrade:  c.AuctionGrade,
		Mileage:       c.Mileage,
		Status:        c.Status,
		Financing:     toFinancingDTO(c.Financing),
		TotalCost:     c.TotalCost(),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// CreateCarInput contains the fields to create a car
type CreateCarInput struct {
	BatchNo       string
	ChassisNumber string
	Make          string
	Model         string
	Year          int
	Color         string
	EngineNumber  string
	AuctionGrade  string
	Mileage       int
	Financing     *FinancingDTO
}

// UpdateCarInput contains the mutable car fields. Nil fields are left unchanged.
type UpdateCarInput struct {
	BatchNo       *string
	ChassisNumber *string
	Make          *string
	Model         *string
	Year          *int
	Color         *string
	EngineNumber  *string
	AuctionGrade  *string
	Mileage       *int
	Status        *inventory.CarStatus
	Financing     *FinancingDTO
}

// AggregationResult reports one recomputed batch total
type AggregationResult struct {
	BatchID        uuid.UUID       `json:"batchId"`
	BatchNo        string          `json:"batchNo"`
	Total          decimal.Decimal `json:"total"`
	CarsCount      int             `json:"carsCount"`
	CustomersCount int             `json:"customersCount"`
	InvestorsCount int             `json:"investorsCount"`
	ExpensesCount  int             `json:"expensesCount"`
	Batch          *BatchDTO       `json:"batch"`
}

// SweepItem is the outcome of one batch in a sweep
type SweepItem struct {
	BatchID   uuid.UUID        `json:"batchId"`
	BatchNo   string           `json:"batchNo"`
	CompanyID uuid.UUID        `json:"companyId"`
	Success   bool             `json:"success"`
	Total     *decimal.Decimal `json:"total,omitempty"`
	Profit    *decimal.Decimal `json:"profit,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// SweepReport summarizes a recompute over many batches. Success is true only
// when every batch succeeded.
type SweepReport struct {
	Success   bool        `json:"success"`
	Processed int         `json:"processed"`
	Failed    int         `json:"failed"`
	Results   []SweepItem `json:"results"`
}
