package handler

import (
	"time"

	appsales "github.com/dealerdesk/backend/internal/application/sales"
	"github.com/dealerdesk/backend/internal/domain/sales"
	"github.com/dealerdesk/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
)

// BuyerRequest identifies the buyer of a car
type BuyerRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Phone    string `json:"phone" binding:"omitempty,max=50"`
	Email    string `json:"email" binding:"omitempty,email,max=254"`
	IDNumber string `json:"idNumber" binding:"omitempty,max=100"`
	Address  string `json:"address" binding:"omitempty,max=500"`
}

func (r BuyerRequest) toDTO() appsales.BuyerDTO {
	return appsales.BuyerDTO{
		Name:     r.Name,
		Phone:    r.Phone,
		Email:    r.Email,
		IDNumber: r.IDNumber,
		Address:  r.Address,
	}
}

// VehicleRequest identifies the car sold
type VehicleRequest struct {
	ChassisNumber string `json:"chassisNumber" binding:"required,max=100"`
	Make          string `json:"make" binding:"omitempty,max=100"`
	Model         string `json:"model" binding:"omitempty,max=100"`
	Year          int    `json:"year" binding:"omitempty,min=1900,max=2100"`
	Color         string `json:"color" binding:"omitempty,max=50"`
}

func (r VehicleRequest) toDTO() appsales.VehicleDTO {
	return appsales.VehicleDTO{
		ChassisNumber: r.ChassisNumber,
		Make:          r.Make,
		Model:         r.Model,
		Year:          r.Year,
		Color:         r.Color,
	}
}

// PaymentMethodRequest describes how an installment was paid
type PaymentMethodRequest struct {
	Type          sales.PaymentMethodType `json:"type" binding:"required,payment_method"`
	BankName      string                  `json:"bankName" binding:"omitempty,max=200"`
	AccountNumber string                  `json:"accountNumber" binding:"omitempty,max=100"`
	ChequeNumber  string                  `json:"chequeNumber" binding:"omitempty,max=100"`
	Reference     string                  `json:"reference" binding:"omitempty,max=200"`
}

func (r PaymentMethodRequest) toDTO() appsales.PaymentMethodDTO {
	return appsales.PaymentMethodDTO{
		Type:          r.Type,
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		ChequeNumber:  r.ChequeNumber,
		Reference:     r.Reference,
	}
}

// PaymentRequest records an installment
type PaymentRequest struct {
	AmountPaid    decimal.Decimal         `json:"amountPaid" binding:"required,gt=0"`
	PaymentMethod PaymentMethodRequest    `json:"paymentMethod"`
	PaymentDate   *time.Time              `json:"paymentDate"`
	Status        sales.InstallmentStatus `json:"status" binding:"omitempty,oneof=received pending"`
	Note          string                  `json:"note" binding:"omitempty,max=1000"`
}

func (r PaymentRequest) input() appsales.PaymentInput {
	return appsales.PaymentInput{
		AmountPaid:    r.AmountPaid,
		PaymentMethod: r.PaymentMethod.toDTO(),
		PaymentDate:   r.PaymentDate,
		Status:        r.Status,
		Note:          r.Note,
	}
}

// UpdatePaymentRequest corrects an installment
type UpdatePaymentRequest struct {
	AmountPaid    decimal.Decimal      `json:"amountPaid" binding:"required,gt=0"`
	PaymentMethod PaymentMethodRequest `json:"paymentMethod"`
}

// CreateCustomerRequest records a sale. initialPayment, when present, becomes
// installment 1.
type CreateCustomerRequest struct {
	Buyer          BuyerRequest    `json:"buyer"`
	Vehicle        VehicleRequest  `json:"vehicle"`
	SalePrice      decimal.Decimal `json:"salePrice" binding:"required,gt=0"`
	SaleDate       *time.Time      `json:"saleDate"`
	InitialPayment *PaymentRequest `json:"initialPayment"`
}

func (r CreateCustomerRequest) input() appsales.CreateCustomerInput {
	in := appsales.CreateCustomerInput{
		Buyer:     r.Buyer.toDTO(),
		Vehicle:   r.Vehicle.toDTO(),
		SalePrice: r.SalePrice,
		SaleDate:  r.SaleDate,
	}
	if r.InitialPayment != nil {
		p := r.InitialPayment.input()
		in.InitialPayment = &p
	}
	return in
}

// UpdateCustomerRequest changes the buyer, vehicle or sale terms
type UpdateCustomerRequest struct {
	Buyer     *BuyerRequest    `json:"buyer"`
	Vehicle   *VehicleRequest  `json:"vehicle"`
	SalePrice *decimal.Decimal `json:"salePrice" binding:"omitempty,gt=0"`
	SaleDate  *time.Time       `json:"saleDate"`
}

func (r UpdateCustomerRequest) input() appsales.UpdateCustomerInput {
	in := appsales.UpdateCustomerInput{SalePrice: r.SalePrice, SaleDate: r.SaleDate}
	if r.Buyer != nil {
		b := r.Buyer.toDTO()
		in.Buyer = &b
	}
	if r.Vehicle != nil {
		v := r.Vehicle.toDTO()
		in.Vehicle = &v
	}
	return in
}

// CustomerListRequest holds customer listing query parameters
type CustomerListRequest struct {
	dto.ListRequest
	PaymentStatus sales.PaymentStatus `form:"paymentStatus" binding:"omitempty,oneof=pending partial paid"`
	ChassisNumber string              `form:"chassisNumber"`
}
