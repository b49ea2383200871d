package finance

import (
	"time"

	"github.com/dealerdesk/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestorDTO represents an investor in API responses
type InvestorDTO struct {
	ID              uuid.UUID       `json:"id"`
	CompanyID       uuid.UUID       `json:"companyId"`
	BatchNo         string          `json:"batchNo"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone,omitempty"`
	Email           string          `json:"email,omitempty"`
	InvestAmount    decimal.Decimal `json:"investAmount"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	InvestmentDate  time.Time       `json:"investmentDate"`
	Note            string          `json:"note,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ToInvestorDTO converts an investor to its response form
func ToInvestorDTO(i *finance.Investor) *InvestorDTO {
	return &InvestorDTO{
		ID:              i.ID,
		CompanyID:       i.CompanyID,
		BatchNo:         i.BatchNo,
		Name:            i.Name,
		Phone:           i.Phone,
		Email:           i.Email,
		InvestAmount:    i.InvestAmount,
		AmountPaid:      i.AmountPaid,
		RemainingAmount: i.RemainingAmount,
		InvestmentDate:  i.InvestmentDate,
		Note:            i.Note,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

// CreateInvestorInput contains the fields to create an investor
type CreateInvestorInput struct {
	BatchNo        string
	Name           string
	Phone          string
	Email          string
	InvestAmount   decimal.Decimal
	AmountPaid     decimal.Decimal
	InvestmentDate *time.Time
	Note           string
}

// UpdateInvestorInput contains the mutable investor fields
type UpdateInvestorInput struct {
	BatchNo        *string
	Name           *string
	Phone          *string
	Email          *string
	InvestAmount   *decimal.Decimal
	AmountPaid     *decimal.Decimal
	InvestmentDate *time.Time
	Note           *string
}
