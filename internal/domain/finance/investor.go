package finance

import (
	"strings"
	"time"

	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Investor records capital placed into a batch by a third party and how much
// of it has been paid back.
type Investor struct {
	shared.TenantAggregateRoot
	BatchNo         string
	Name            string
	Phone           string
	Email           string
	InvestAmount    decimal.Decimal
	AmountPaid      decimal.Decimal
	RemainingAmount decimal.Decimal
	InvestmentDate  time.Time
	Note            string
}

// InvestorDetails carries the fields used to create an investor
type InvestorDetails struct {
	BatchNo        string
	Name           string
	Phone          string
	Email          string
	InvestAmount   decimal.Decimal
	AmountPaid     decimal.Decimal
	InvestmentDate *time.Time
	Note           string
}

// InvestorUpdate carries the mutable fields of an investor. Nil fields are left unchanged.
type InvestorUpdate struct {
	BatchNo        *string
	Name           *string
	Phone          *string
	Email          *string
	InvestAmount   *decimal.Decimal
	AmountPaid     *decimal.Decimal
	InvestmentDate *time.Time
	Note           *string
}

// NewInvestor creates an investor with the remaining amount derived
func NewInvestor(companyID uuid.UUID, d InvestorDetails) (*Investor, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	inv := &Investor{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		BatchNo:             strings.TrimSpace(d.BatchNo),
		Name:                shared.NormalizeTitle(d.Name),
		Phone:               strings.TrimSpace(d.Phone),
		Email:               shared.NormalizeEmail(d.Email),
		InvestAmount:        shared.RoundMoney(d.InvestAmount),
		AmountPaid:          shared.RoundMoney(d.AmountPaid),
		Note:                strings.TrimSpace(d.Note),
	}
	inv.InvestmentDate = inv.CreatedAt
	if d.InvestmentDate != nil {
		inv.InvestmentDate = *d.InvestmentDate
	}
	if err := inv.validate(); err != nil {
		return nil, err
	}
	inv.Recompute()
	return inv, nil
}

// Apply applies an update and re-derives the remaining amount
func (i *Investor) Apply(u InvestorUpdate) error {
	next := *i
	if u.BatchNo != nil {
		next.BatchNo = strings.TrimSpace(*u.BatchNo)
	}
	if u.Name != nil {
		next.Name = shared.NormalizeTitle(*u.Name)
	}
	if u.Phone != nil {
		next.Phone = strings.TrimSpace(*u.Phone)
	}
	if u.Email != nil {
		next.Email = shared.NormalizeEmail(*u.Email)
	}
	if u.InvestAmount != nil {
		next.InvestAmount = shared.RoundMoney(*u.InvestAmount)
	}
	if u.AmountPaid != nil {
		next.AmountPaid = shared.RoundMoney(*u.AmountPaid)
	}
	if u.InvestmentDate != nil {
		next.InvestmentDate = *u.InvestmentDate
	}
	if u.Note != nil {
		next.Note = strings.TrimSpace(*u.Note)
	}
	if err := next.validate(); err != nil {
		return err
	}
	*i = next
	i.Recompute()
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

// Recompute derives RemainingAmount = InvestAmount - AmountPaid
func (i *Investor) Recompute() {
	i.RemainingAmount = RemainingOf(i.InvestAmount, i.AmountPaid)
}

// RemainingOf returns invest - paid
func RemainingOf(invest, paid decimal.Decimal) decimal.Decimal {
	return invest.Sub(paid)
}

func (i *Investor) validate() error {
	if i.BatchNo == "" {
		return shared.NewDomainError("INVALID_BATCH_NO", "Batch number is required")
	}
	if i.Name == "" {
		return shared.NewDomainError("INVALID_NAME", "Investor name is required")
	}
	if i.InvestAmount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Invest amount cannot be negative")
	}
	if i.AmountPaid.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount paid cannot be negative")
	}
	if i.AmountPaid.GreaterThan(i.InvestAmount) {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount paid cannot exceed the invested amount")
	}
	return nil
}
