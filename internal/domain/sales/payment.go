package sales

import (
	"strings"
	"time"

	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethodType is how an installment was paid
type PaymentMethodType string

const (
	PaymentMethodCash        PaymentMethodType = "Cash"
	PaymentMethodBank        PaymentMethodType = "Bank"
	PaymentMethodCheque      PaymentMethodType = "Cheque"
	PaymentMethodBankDeposit PaymentMethodType = "BankDeposit"
)

// IsValid reports whether the method type is accepted
func (t PaymentMethodType) IsValid() bool {
	switch t {
	case PaymentMethodCash, PaymentMethodBank, PaymentMethodCheque, PaymentMethodBankDeposit:
		return true
	}
	return false
}

// PaymentMethod describes the instrument used for a payment
type PaymentMethod struct {
	Type          PaymentMethodType
	BankName      string
	AccountNumber string
	ChequeNumber  string
	Reference     string
}

// Validate checks the method type
func (m PaymentMethod) Validate() error {
	if !m.Type.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method must be one of Cash, Bank, Cheque, BankDeposit")
	}
	return nil
}

func (m PaymentMethod) normalized() PaymentMethod {
	return PaymentMethod{
		Type:          m.Type,
		BankName:      strings.TrimSpace(m.BankName),
		AccountNumber: strings.TrimSpace(m.AccountNumber),
		ChequeNumber:  strings.TrimSpace(m.ChequeNumber),
		Reference:     strings.TrimSpace(m.Reference),
	}
}

// InstallmentStatus is whether the money has actually arrived
type InstallmentStatus string

const (
	InstallmentReceived InstallmentStatus = "received"
	InstallmentPending  InstallmentStatus = "pending"
)

// IsValid reports whether the status is known
func (s InstallmentStatus) IsValid() bool {
	return s == InstallmentReceived || s == InstallmentPending
}

// Payment is one installment in a customer's ledger. RemainingAfterPayment and
// TotalPaidUpToDate are snapshots of the sale at the time of the installment.
type Payment struct {
	ID                    uuid.UUID
	InstallmentNumber     int
	AmountPaid            decimal.Decimal
	RemainingAfterPayment decimal.Decimal
	TotalPaidUpToDate     decimal.Decimal
	Method                PaymentMethod
	Date                  time.Time
	Status                InstallmentStatus
	Note                  string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// PaymentInput carries the fields of a new installment
type PaymentInput struct {
	AmountPaid decimal.Decimal
	Method     PaymentMethod
	Date       *time.Time
	Status     InstallmentStatus // defaults to received
	Note       string
}
