package models

import (
	"time"

	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchModel is the persistence model for an import batch.
type BatchModel struct {
	AggregateModel
	CompanyID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_batches_company_batch_no,priority:1"`
	BatchNo         string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_batches_company_batch_no,priority:2"`
	Description     string          `gorm:"type:text"`
	ArrivalDate     *time.Time      `gorm:"type:date"`
	TotalCost       decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	TotalSalePrice  decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	TotalInvestment decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	TotalExpense    decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Profit          decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (BatchModel) TableName() string {
	return "batches"
}

// ToDomain converts the persistence model to a domain Batch.
func (m *BatchModel) ToDomain() *inventory.Batch {
	return &inventory.Batch{
		TenantAggregateRoot: tenantRoot(&m.AggregateModel, m.CompanyID),
		BatchNo:             m.BatchNo,
		Description:         m.Description,
		ArrivalDate:         m.ArrivalDate,
		TotalCost:           m.TotalCost,
		TotalSalePrice:      m.TotalSalePrice,
		TotalInvestment:     m.TotalInvestment,
		TotalExpense:        m.TotalExpense,
		Profit:              m.Profit,
	}
}

// FromDomain populates the persistence model from a domain Batch.
func (m *BatchModel) FromDomain(b *inventory.Batch) {
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	m.CompanyID = b.CompanyID
	m.BatchNo = b.BatchNo
	m.Description = b.Description
	m.ArrivalDate = b.ArrivalDate
	m.TotalCost = b.TotalCost
	m.TotalSalePrice = b.TotalSalePrice
	m.TotalInvestment = b.TotalInvestment
	m.TotalExpense = b.TotalExpense
	m.Profit = b.Profit
}

// BatchModelFromDomain creates a new persistence model from a domain Batch.
func BatchModelFromDomain(b *inventory.Batch) *BatchModel {
	m := &BatchModel{}
	m.FromDomain(b)
	return m
}

// BatchExpenseModel is the persistence model for an expense booked against a batch.
type BatchExpenseModel struct {
	BaseModel
	CompanyID uuid.UUID       `gorm:"type:uuid;not null;index"`
	BatchID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title     string          `gorm:"type:varchar(200);not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Date      time.Time       `gorm:"not null"`
	Note      string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (BatchExpenseModel) TableName() string {
	return "batch_expenses"
}

// ToDomain converts the persistence model to a domain BatchExpense.
func (m *BatchExpenseModel) ToDomain() *inventory.BatchExpense {
	return &inventory.BatchExpense{
		BaseEntity: m.BaseModel.ToDomain(),
		CompanyID:  m.CompanyID,
		BatchID:    m.BatchID,
		Title:      m.Title,
		Amount:     m.Amount,
		Date:       m.Date,
		Note:       m.Note,
	}
}

// FromDomain populates the persistence model from a domain BatchExpense.
func (m *BatchExpenseModel) FromDomain(e *inventory.BatchExpense) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.CompanyID = e.CompanyID
	m.BatchID = e.BatchID
	m.Title = e.Title
	m.Amount = e.Amount
	m.Date = e.Date
	m.Note = e.Note
}

// CarModel is the persistence model for a car. The financing breakdown lives in
// car_financings and is loaded with Preload("Financing").
type CarModel struct {
	AggregateModel
	CompanyID     uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_cars_company_chassis,priority:1;index:idx_cars_company_batch,priority:1"`
	BatchNo       string              `gorm:"type:varchar(50);index:idx_cars_company_batch,priority:2"`
	ChassisNumber string              `gorm:"type:varchar(50);not null;uniqueIndex:idx_cars_company_chassis,priority:2"`
	Make          string              `gorm:"type:varchar(100)"`
	Model         string              `gorm:"type:varchar(100)"`
	Year          int                 `gorm:"not null;default:0"`
	Color         string              `gorm:"type:varchar(50)"`
	EngineNumber  string              `gorm:"type:varchar(100)"`
	AuctionGrade  string              `gorm:"type:varchar(20)"`
	Mileage       int                 `gorm:"not null;default:0"`
	Status        inventory.CarStatus `gorm:"type:varchar(20);not null;default:'in_stock'"`
	Financing     *CarFinancingModel  `gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CarModel) TableName() string {
	return "cars"
}

// ToDomain converts the persistence model to a domain Car.
func (m *CarModel) ToDomain() *inventory.Car {
	car := &inventory.Car{
		TenantAggregateRoot: tenantRoot(&m.AggregateModel, m.CompanyID),
		BatchNo:             m.BatchNo,
		ChassisNumber:       m.ChassisNumber,
		Make:                m.Make,
		Model:               m.Model,
		Year:                m.Year,
		Color:               m.Color,
		EngineNumber:        m.EngineNumber,
		AuctionGrade:        m.AuctionGrade,
		Mileage:             m.Mileage,
		Status:              m.Status,
	}
	if m.Financing != nil {
		car.Financing = m.Financing.ToDomain()
	}
	return car
}

// FromDomain populates the persistence model from a domain Car.
func (m *CarModel) FromDomain(c *inventory.Car) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.CompanyID = c.CompanyID
	m.BatchNo = c.BatchNo
	m.ChassisNumber = c.ChassisNumber
	m.Make = c.Make
	m.Model = c.Model
	m.Year = c.Year
	m.Color = c.Color
	m.EngineNumber = c.EngineNumber
	m.AuctionGrade = c.AuctionGrade
	m.Mileage = c.Mileage
	m.Status = c.Status
	m.Financing = nil
	if c.Financing != nil {
		m.Financing = CarFinancingModelFromDomain(c.ID, c.Financing)
	}
}

// CarModelFromDomain creates a new persistence model from a domain Car.
func CarModelFromDomain(c *inventory.Car) *CarModel {
	m := &CarModel{}
	m.FromDomain(c)
	return m
}

// CostTripleModel maps an {amount, rate, totalAmount} triple onto three columns.
type CostTripleModel struct {
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Rate        decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
}

func (t CostTripleModel) toDomain() inventory.CostTriple {
	return inventory.CostTriple{Amount: t.Amount, Rate: t.Rate, TotalAmount: t.TotalAmount}
}

func costTripleFromDomain(t inventory.CostTriple) CostTripleModel {
	return CostTripleModel{Amount: t.Amount, Rate: t.Rate, TotalAmount: t.TotalAmount}
}

// CarFinancingModel is the one-to-one landed cost breakdown of a car.
type CarFinancingModel struct {
	CarID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	AuctionPrice     CostTripleModel `gorm:"embedded;embeddedPrefix:auction_price_"`
	AuctionFee       CostTripleModel `gorm:"embedded;embeddedPrefix:auction_fee_"`
	InspectionFee    CostTripleModel `gorm:"embedded;embeddedPrefix:inspection_fee_"`
	RecycleFee       CostTripleModel `gorm:"embedded;embeddedPrefix:recycle_fee_"`
	RiksoFee         CostTripleModel `gorm:"embedded;embeddedPrefix:rikso_fee_"`
	ExportFreight    CostTripleModel `gorm:"embedded;embeddedPrefix:export_freight_"`
	InsuranceForeign CostTripleModel `gorm:"embedded;embeddedPrefix:insurance_foreign_"`

	CustomsDuty      decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	SalesTax         decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	IncomeTax        decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	RegulatoryDuty   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	PortCharges      decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	ClearingCharges  decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	LocalTransport   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	RepairCharges    decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	RegistrationFee  decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	AgentCommission  decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	LocalInsurance   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	DocumentationFee decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Miscellaneous    decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (CarFinancingModel) TableName() string {
	return "car_financings"
}

// ToDomain converts the persistence model to a domain Financing.
func (m *CarFinancingModel) ToDomain() *inventory.Financing {
	return &inventory.Financing{
		AuctionPrice:     m.AuctionPrice.toDomain(),
		AuctionFee:       m.AuctionFee.toDomain(),
		InspectionFee:    m.InspectionFee.toDomain(),
		RecycleFee:       m.RecycleFee.toDomain(),
		RiksoFee:         m.RiksoFee.toDomain(),
		ExportFreight:    m.ExportFreight.toDomain(),
		InsuranceForeign: m.InsuranceForeign.toDomain(),
		CustomsDuty:      m.CustomsDuty,
		SalesTax:         m.SalesTax,
		IncomeTax:        m.IncomeTax,
		RegulatoryDuty:   m.RegulatoryDuty,
		PortCharges:      m.PortCharges,
		ClearingCharges:  m.ClearingCharges,
		LocalTransport:   m.LocalTransport,
		RepairCharges:    m.RepairCharges,
		RegistrationFee:  m.RegistrationFee,
		AgentCommission:  m.AgentCommission,
		LocalInsurance:   m.LocalInsurance,
		DocumentationFee: m.DocumentationFee,
		Miscellaneous:    m.Miscellaneous,
	}
}

// CarFinancingModelFromDomain creates the financing row for carID.
func CarFinancingModelFromDomain(carID uuid.UUID, f *inventory.Financing) *CarFinancingModel {
	now := time.Now()
	return &CarFinancingModel{
		CarID:            carID,
		CreatedAt:        now,
		UpdatedAt:        now,
		AuctionPrice:     costTripleFromDomain(f.AuctionPrice),
		AuctionFee:       costTripleFromDomain(f.AuctionFee),
		InspectionFee:    costTripleFromDomain(f.InspectionFee),
		RecycleFee:       costTripleFromDomain(f.RecycleFee),
		RiksoFee:         costTripleFromDomain(f.RiksoFee),
		ExportFreight:    costTripleFromDomain(f.ExportFreight),
		InsuranceForeign: costTripleFromDomain(f.InsuranceForeign),
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
