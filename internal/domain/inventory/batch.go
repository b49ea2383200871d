package inventory

import (
	"regexp"
	"strings"
	"time"

	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var batchNoRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/-]{0,49}$`)

// TotalKind selects one of the derived batch totals
type TotalKind string

const (
	TotalKindCost       TotalKind = "cost"
	TotalKindSalePrice  TotalKind = "sale_price"
	TotalKindInvestment TotalKind = "investment"
	TotalKindExpense    TotalKind = "expense"
)

// Column returns the storage column holding the total
func (k TotalKind) Column() string {
	switch k {
	case TotalKindCost:
		return "total_cost"
	case TotalKindSalePrice:
		return "total_sale_price"
	case TotalKindInvestment:
		return "total_investment"
	case TotalKindExpense:
		return "total_expense"
	}
	return ""
}

// Batch is an import shipment of cars. Its totals are derived from the cars,
// sales, investors and expenses that reference it and are recomputed on demand.
type Batch struct {
	shared.TenantAggregateRoot
	BatchNo         string
	Description     string
	ArrivalDate     *time.Time
	TotalCost       decimal.Decimal
	TotalSalePrice  decimal.Decimal
	TotalInvestment decimal.Decimal
	TotalExpense    decimal.Decimal
	Profit          decimal.Decimal
}

// NewBatch creates a batch with zero totals
func NewBatch(companyID uuid.UUID, batchNo, description string, arrivalDate *time.Time) (*Batch, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	batchNo = strings.TrimSpace(batchNo)
	if err := ValidateBatchNo(batchNo); err != nil {
		return nil, err
	}
	return &Batch{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		BatchNo:             batchNo,
		Description:         strings.TrimSpace(description),
		ArrivalDate:         arrivalDate,
		TotalCost:           decimal.Zero,
		TotalSalePrice:      decimal.Zero,
		TotalInvestment:     decimal.Zero,
		TotalExpense:        decimal.Zero,
		Profit:              decimal.Zero,
	}, nil
}

// ValidateBatchNo checks the format of a batch number
func ValidateBatchNo(batchNo string) error {
	if batchNo == "" {
		return shared.NewDomainError("INVALID_BATCH_NO", "Batch number is required")
	}
	if !batchNoRegex.MatchString(batchNo) {
		return shared.NewDomainError("INVALID_BATCH_NO", "Batch number must be 1-50 letters, digits, '.', '_', '/' or '-'")
	}
	return nil
}

// UpdateDetails changes the descriptive fields. The batch number is immutable.
func (b *Batch) UpdateDetails(description *string, arrivalDate *time.Time) {
	if description != nil {
		b.Description = strings.TrimSpace(*description)
	}
	if arrivalDate != nil {
		b.ArrivalDate = arrivalDate
	}
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// SetTotal sets one derived total and refreshes the profit
func (b *Batch) SetTotal(kind TotalKind, value decimal.Decimal) {
	switch kind {
	case TotalKindCost:
		b.TotalCost = value
	case TotalKindSalePrice:
		b.TotalSalePrice = value
	case TotalKindInvestment:
		b.TotalInvestment = value
	case TotalKindExpense:
		b.TotalExpense = value
	}
	b.Profit = ComputeProfit(b.TotalSalePrice, b.TotalCost, b.TotalExpense)
}

// Total returns the value of one derived total
func (b *Batch) Total(kind TotalKind) decimal.Decimal {
	switch kind {
	case TotalKindCost:
		return b.TotalCost
	case TotalKindSalePrice:
		return b.TotalSalePrice
	case TotalKindInvestment:
		return b.TotalInvestment
	case TotalKindExpense:
		return b.TotalExpense
	}
	return decimal.Zero
}

// ComputeProfit returns sale - cost - expense
func ComputeProfit(salePrice, cost, expense decimal.Decimal) decimal.Decimal {
	return salePrice.Sub(cost).Sub(expense)
}

// BatchExpense is a batch-level cost not attributable to a single car
// (shipping agent fees, yard rent and so on).
type BatchExpense struct {
	shared.BaseEntity
	CompanyID uuid.UUID
	BatchID   uuid.UUID
	Title     string
	Amount    decimal.Decimal
	Date      time.Time
	Note      string
}

// NewBatchExpense creates an expense on the given batch
func NewBatchExpense(batch *Batch, title string, amount decimal.Decimal, date *time.Time, note string) (*BatchExpense, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Expense title is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}
	e := &BatchExpense{
		BaseEntity: shared.NewBaseEntity(),
		CompanyID:  batch.CompanyID,
		BatchID:    batch.ID,
		Title:      title,
		Amount:     shared.RoundMoney(amount),
		Note:       strings.TrimSpace(note),
	}
	e.Date = e.CreatedAt
	if date != nil {
		e.Date = *date
	}
	return e, nil
}
