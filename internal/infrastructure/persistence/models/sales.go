package models

import (
	"time"

	"github.com/dealerdesk/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for a sale to a buyer. Installments are
// stored in customer_payments and preloaded in installment order.
type CustomerModel struct {
	TenantAggregateModel

	BuyerName     string `gorm:"type:varchar(100);not null"`
	BuyerPhone    string `gorm:"type:varchar(50)"`
	BuyerEmail    string `gorm:"type:varchar(200)"`
	BuyerIDNumber string `gorm:"column:buyer_id_number;type:varchar(50)"`
	BuyerAddress  string `gorm:"type:text"`

	ChassisNumber string `gorm:"type:varchar(50);not null;index"`
	VehicleMake   string `gorm:"type:varchar(100)"`
	VehicleModel  string `gorm:"type:varchar(100)"`
	VehicleYear   int    `gorm:"not null;default:0"`
	VehicleColor  string `gorm:"type:varchar(50)"`

	SalePrice       decimal.Decimal     `gorm:"type:numeric(18,2);not null;default:0"`
	PaidAmount      decimal.Decimal     `gorm:"type:numeric(18,2);not null;default:0"`
	RemainingAmount decimal.Decimal     `gorm:"type:numeric(18,2);not null;default:0"`
	PaymentStatus   sales.PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	SaleDate        time.Time           `gorm:"not null"`

	Payments []CustomerPaymentModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer.
func (m *CustomerModel) ToDomain() *sales.Customer {
	c := &sales.Customer{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Buyer: sales.Buyer{
			Name:     m.BuyerName,
			Phone:    m.BuyerPhone,
			Email:    m.BuyerEmail,
			IDNumber: m.BuyerIDNumber,
			Address:  m.BuyerAddress,
		},
		Vehicle: sales.Vehicle{
			ChassisNumber: m.ChassisNumber,
			Make:          m.VehicleMake,
			Model:         m.VehicleModel,
			Year:          m.VehicleYear,
			Color:         m.VehicleColor,
		},
		Sale: sales.Sale{
			SalePrice:       m.SalePrice,
			PaidAmount:      m.PaidAmount,
			RemainingAmount: m.RemainingAmount,
			PaymentStatus:   m.PaymentStatus,
			SaleDate:        m.SaleDate,
		},
		Payments: make([]sales.Payment, 0, len(m.Payments)),
	}
	for i := range m.Payments {
		c.Payments = append(c.Payments, m.Payments[i].ToDomain())
	}
	return c
}

// FromDomain populates the persistence model from a domain Customer, payments included.
func (m *CustomerModel) FromDomain(c *sales.Customer) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.BuyerName = c.Buyer.Name
	m.BuyerPhone = c.Buyer.Phone
	m.BuyerEmail = c.Buyer.Email
	m.BuyerIDNumber = c.Buyer.IDNumber
	m.BuyerAddress = c.Buyer.Address
	m.ChassisNumber = c.Vehicle.ChassisNumber
	m.VehicleMake = c.Vehicle.Make
	m.VehicleModel = c.Vehicle.Model
	m.VehicleYear = c.Vehicle.Year
	m.VehicleColor = c.Vehicle.Color
	m.SalePrice = c.Sale.SalePrice
	m.PaidAmount = c.Sale.PaidAmount
	m.RemainingAmount = c.Sale.RemainingAmount
	m.PaymentStatus = c.Sale.PaymentStatus
	m.SaleDate = c.Sale.SaleDate
	m.Payments = make([]CustomerPaymentModel, 0, len(c.Payments))
	for _, p := range c.Payments {
		m.Payments = append(m.Payments, CustomerPaymentModelFromDomain(c.ID, c.CompanyID, p))
	}
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer.
func CustomerModelFromDomain(c *sales.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// CustomerPaymentModel is one installment row of a customer's ledger.
type CustomerPaymentModel struct {
	BaseModel
	CustomerID            uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_customer_payments_installment,priority:1"`
	CompanyID             uuid.UUID               `gorm:"type:uuid;not null;index"`
	InstallmentNumber     int                     `gorm:"not null;uniqueIndex:idx_customer_payments_installment,priority:2"`
	AmountPaid            decimal.Decimal         `gorm:"type:numeric(18,2);not null"`
	RemainingAfterPayment decimal.Decimal         `gorm:"type:numeric(18,2);not null"`
	TotalPaidUpToDate     decimal.Decimal         `gorm:"type:numeric(18,2);not null"`
	MethodType            sales.PaymentMethodType `gorm:"type:varchar(20);not null"`
	BankName              string                  `gorm:"type:varchar(100)"`
	AccountNumber         string                  `gorm:"type:varchar(100)"`
	ChequeNumber          string                  `gorm:"type:varchar(100)"`
	Reference             string                  `gorm:"type:varchar(200)"`
	Date                  time.Time               `gorm:"not null"`
	Status                sales.InstallmentStatus `gorm:"type:varchar(20);not null;default:'received'"`
	Note                  string                  `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerPaymentModel) TableName() string {
	return "customer_payments"
}

// ToDomain converts the persistence model to a domain Payment.
func (m *CustomerPaymentModel) ToDomain() sales.Payment {
	return sales.Payment{
		ID:                    m.ID,
		InstallmentNumber:     m.InstallmentNumber,
		AmountPaid:            m.AmountPaid,
		RemainingAfterPayment: m.RemainingAfterPayment,
		TotalPaidUpToDate:     m.TotalPaidUpToDate,
		Method: sales.PaymentMethod{
			Type:          m.MethodType,
			BankName:      m.BankName,
			AccountNumber: m.AccountNumber,
			ChequeNumber:  m.ChequeNumber,
			Reference:     m.Reference,
		},
		Date:      m.Date,
		Status:    m.Status,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CustomerPaymentModelFromDomain creates a ledger row for the given customer.
func CustomerPaymentModelFromDomain(customerID, companyID uuid.UUID, p sales.Payment) CustomerPaymentModel {
	return CustomerPaymentModel{
		BaseModel: BaseModel{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		},
		CustomerID:            customerID,
		CompanyID:             companyID,
		InstallmentNumber:     p.InstallmentNumber,
		AmountPaid:            p.AmountPaid,
		RemainingAfterPayment: p.RemainingAfterPayment,
		TotalPaidUpToDate:     p.TotalPaidUpToDate,
		MethodType:            p.Method.Type,
		BankName:              p.Method.BankName,
		AccountNumber:         p.Method.AccountNumber,
		ChequeNumber:          p.Method.ChequeNumber,
		Reference:             p.Method.Reference,
		Date:                  p.Date,
		Status:                p.Status,
		Note:                  p.Note,
	}
}

// AllModels lists every persistence model, in dependency order, for AutoMigrate in tests.
func AllModels() []any {
	return []any{
		&AdminModel{},
		&CompanyModel{},
		&SubUserModel{},
		&SiteUserModel{},
		&BatchModel{},
		&BatchExpenseModel{},
		&CarModel{},
		&CarFinancingModel{},
		&InvestorModel{},
		&CustomerModel{},
		&CustomerPaymentModel{},
	}
}
