package sales

import (
	"time"

	"github.com/dealerdesk/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BuyerDTO is the purchaser of a sale
type BuyerDTO struct {
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	IDNumber string `json:"idNumber,omitempty"`
	Address  string `json:"address,omitempty"`
}

func (b BuyerDTO) toDomain() sales.Buyer {
	return sales.Buyer{Name: b.Name, Phone: b.Phone, Email: b.Email, IDNumber: b.IDNumber, Address: b.Address}
}

// VehicleDTO identifies the car sold
type VehicleDTO struct {
	ChassisNumber string `json:"chassisNumber"`
	Make          string `json:"make,omitempty"`
	Model         string `json:"model,omitempty"`
	Year          int    `json:"year,omitempty"`
	Color         string `json:"color,omitempty"`
}

func (v VehicleDTO) toDomain() sales.Vehicle {
	return sales.Vehicle{ChassisNumber: v.ChassisNumber, Make: v.Make, Model: v.Model, Year: v.Year, Color: v.Color}
}

// SaleDTO holds the price and running totals of a sale
type SaleDTO struct {
	SalePrice       decimal.Decimal     `json:"salePrice"`
	PaidAmount      decimal.Decimal     `json:"paidAmount"`
	RemainingAmount decimal.Decimal     `json:"remainingAmount"`
	PaymentStatus   sales.PaymentStatus `json:"paymentStatus"`
	SaleDate        time.Time           `json:"saleDate"`
}

// PaymentMethodDTO describes how an installment was paid
type PaymentMethodDTO struct {
	Type          sales.PaymentMethodType `json:"type"`
	BankName      string                  `json:"bankName,omitempty"`
	AccountNumber string                  `json:"accountNumber,omitempty"`
	ChequeNumber  string                  `json:"chequeNumber,omitempty"`
	Reference     string                  `json:"reference,omitempty"`
}

func (m PaymentMethodDTO) toDomain() sales.PaymentMethod {
	return sales.PaymentMethod{
		Type:          m.Type,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		ChequeNumber:  m.ChequeNumber,
		Reference:     m.Reference,
	}
}

// PaymentDTO is one installment of the ledger
type PaymentDTO struct {
	ID                    uuid.UUID               `json:"id"`
	InstallmentNumber     int                     `json:"installmentNumber"`
	AmountPaid            decimal.Decimal         `json:"amountPaid"`
	RemainingAfterPayment decimal.Decimal         `json:"remainingAfterPayment"`
	TotalPaidUpToDate     decimal.Decimal         `json:"totalPaidUpToDate"`
	PaymentMethod         PaymentMethodDTO        `json:"paymentMethod"`
	PaymentDate           time.Time               `json:"paymentDate"`
	Status                sales.InstallmentStatus `json:"status"`
	Note                  string                  `json:"note,omitempty"`
}

// ToPaymentDTO converts an installment to its response form
func ToPaymentDTO(p sales.Payment) PaymentDTO {
	return PaymentDTO{
		ID:                    p.ID,
		InstallmentNumber:     p.InstallmentNumber,
		AmountPaid:            p.AmountPaid,
		RemainingAfterPayment: p.RemainingAfterPayment,
		TotalPaidUpToDate:     p.TotalPaidUpToDate,
		PaymentMethod: PaymentMethodDTO{
			Type:          p.Method.Type,
			BankName:      p.Method.BankName,
			AccountNumber: p.Method.AccountNumber,
			ChequeNumber:  p.Method.ChequeNumber,
			Reference:     p.Method.Reference,
		},
		PaymentDate: p.Date,
		Status:      p.Status,
		Note:        p.Note,
	}
}

// CustomerDTO represents a customer sale in API responses
type CustomerDTO struct {
	ID        uuid.UUID    `json:"id"`
	CompanyID uuid.UUID    `json:"companyId"`
	Buyer     BuyerDTO     `json:"buyer"`
	Vehicle   VehicleDTO   `json:"vehicle"`
	Sale      SaleDTO      `json:"sale"`
	Payments  []PaymentDTO `json:"payments"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// ToCustomerDTO converts a customer to its response form
func ToCustomerDTO(c *sales.Customer) *CustomerDTO {
	return &CustomerDTO{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Buyer: BuyerDTO{
			Name:     c.Buyer.Name,
			Phone:    c.Buyer.Phone,
			Email:    c.Buyer.Email,
			IDNumber: c.Buyer.IDNumber,
			Address:  c.Buyer.Address,
		},
		Vehicle: VehicleDTO{
			ChassisNumber: c.Vehicle.ChassisNumber,
			Make:          c.Vehicle.Make,
			Model:         c.Vehicle.Model,
			Year:          c.Vehicle.Year,
			Color:         c.Vehicle.Color,
		},
		Sale:      toSaleDTO(c.Sale),
		Payments:  toPaymentDTOs(c.Payments),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toSaleDTO(s sales.Sale) SaleDTO {
	return SaleDTO{
		SalePrice:       s.SalePrice,
		PaidAmount:      s.PaidAmount,
		RemainingAmount: s.RemainingAmount,
		PaymentStatus:   s.PaymentStatus,
		SaleDate:        s.SaleDate,
	}
}

func toPaymentDTOs(payments []sales.Payment) []PaymentDTO {
	out := make([]PaymentDTO, len(payments))
	for i, p := range payments {
		out[i] = ToPaymentDTO(p)
	}
	return out
}

// PaymentInput carries a new installment
type PaymentInput struct {
	AmountPaid    decimal.Decimal
	PaymentMethod PaymentMethodDTO
	PaymentDate   *time.Time
	Status        sales.InstallmentStatus
	Note          string
}

func (in PaymentInput) toDomain() sales.PaymentInput {
	return sales.PaymentInput{
		AmountPaid: in.AmountPaid,
		Method:     in.PaymentMethod.toDomain(),
		Date:       in.PaymentDate,
		Status:     in.Status,
		Note:       in.Note,
	}
}

// UpdatePaymentInput carries the editable fields of an installment
type UpdatePaymentInput struct {
	AmountPaid    decimal.Decimal
	PaymentMethod PaymentMethodDTO
}

// CreateCustomerInput contains the fields to record a sale. InitialPayment,
// when present, becomes installment 1.
type CreateCustomerInput struct {
	Buyer          BuyerDTO
	Vehicle        VehicleDTO
	SalePrice      decimal.Decimal
	SaleDate       *time.Time
	InitialPayment *PaymentInput
}

// UpdateCustomerInput contains the editable parts of a sale. Nil parts are left unchanged.
type UpdateCustomerInput struct {
	Buyer     *BuyerDTO
	Vehicle   *VehicleDTO
	SalePrice *decimal.Decimal
	SaleDate  *time.Time
}

// LedgerResult is returned by ledger operations: the affected installment and
// the sale totals after it
type LedgerResult struct {
	CustomerID uuid.UUID  `json:"customerId"`
	Payment    PaymentDTO `json:"payment"`
	Sale       SaleDTO    `json:"sale"`
}
