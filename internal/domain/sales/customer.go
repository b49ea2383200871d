package sales

import (
	"strings"
	"time"

	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus summarizes how much of a sale has been paid
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Buyer identifies the purchaser
type Buyer struct {
	Name     string
	Phone    string
	Email    string
	IDNumber string
	Address  string
}

// Vehicle identifies the car sold. ChassisNumber links the sale to a Car.
type Vehicle struct {
	ChassisNumber string
	Make          string
	Model         string
	Year          int
	Color         string
}

// Sale holds the price and running payment totals
type Sale struct {
	SalePrice       decimal.Decimal
	PaidAmount      decimal.Decimal
	RemainingAmount decimal.Decimal
	PaymentStatus   PaymentStatus
	SaleDate        time.Time
}

// Customer is the sale of one vehicle to a buyer, together with its
// installment ledger.
type Customer struct {
	shared.TenantAggregateRoot
	Buyer    Buyer
	Vehicle  Vehicle
	Sale     Sale
	Payments []Payment // ordered by InstallmentNumber
}

// NewCustomer creates a customer with an empty ledger
func NewCustomer(companyID uuid.UUID, buyer Buyer, vehicle Vehicle, salePrice decimal.Decimal, saleDate *time.Time) (*Customer, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	c := &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Buyer:               normalizeBuyer(buyer),
		Vehicle:             normalizeVehicle(vehicle),
		Payments:            make([]Payment, 0),
	}
	if err := c.validateParties(); err != nil {
		return nil, err
	}
	if salePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_SALE_PRICE", "Sale price cannot be negative")
	}
	c.Sale = Sale{
		SalePrice: shared.RoundMoney(salePrice),
		SaleDate:  c.CreatedAt,
	}
	if saleDate != nil {
		c.Sale.SaleDate = *saleDate
	}
	c.recompute()
	return c, nil
}

// AddPayment appends a validated installment and updates the sale totals.
// The amount may equal but never exceed the remaining amount.
func (c *Customer) AddPayment(in PaymentInput) (*Payment, error) {
	amount := shared.RoundMoney(in.AmountPaid)
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be a positive number")
	}
	if err := in.Method.Validate(); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = InstallmentReceived
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Payment status must be received or pending")
	}
	if amount.GreaterThan(c.Sale.RemainingAmount) {
		return nil, shared.NewDomainError("PAYMENT_EXCEEDS_REMAINING", "Payment amount exceeds the remaining amount of "+c.Sale.RemainingAmount.StringFixed(2))
	}

	now := time.Now()
	newTotalPaid := c.Sale.PaidAmount.Add(amount)
	p := Payment{
		ID:                    uuid.New(),
		InstallmentNumber:     len(c.Payments) + 1,
		AmountPaid:            amount,
		TotalPaidUpToDate:     newTotalPaid,
		RemainingAfterPayment: c.Sale.SalePrice.Sub(newTotalPaid),
		Method:                in.Method.normalized(),
		Date:                  now,
		Status:                status,
		Note:                  strings.TrimSpace(in.Note),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if in.Date != nil {
		p.Date = *in.Date
	}
	c.Payments = append(c.Payments, p)
	c.recompute()
	c.touch()
	return &c.Payments[len(c.Payments)-1], nil
}

// UpdatePayment edits the amount and method of an installment, then recomputes
// the snapshots of that installment and every later one. The edit is rejected
// when the ledger total would exceed the sale price.
func (c *Customer) UpdatePayment(paymentID uuid.UUID, amountPaid decimal.Decimal, method PaymentMethod) (*Payment, error) {
	idx := c.paymentIndex(paymentID)
	if idx < 0 {
		return nil, shared.NewDomainError("PAYMENT_NOT_FOUND", "Payment not found")
	}
	amount := shared.RoundMoney(amountPaid)
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be a positive number")
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}
	newTotal := c.Sale.PaidAmount.Sub(c.Payments[idx].AmountPaid).Add(amount)
	if newTotal.GreaterThan(c.Sale.SalePrice) {
		return nil, shared.NewDomainError("PAYMENT_EXCEEDS_REMAINING", "Updated payments would exceed the sale price")
	}

	c.Payments[idx].AmountPaid = amount
	c.Payments[idx].Method = method.normalized()
	c.Payments[idx].UpdatedAt = time.Now()
	c.recompute()
	c.touch()
	return &c.Payments[idx], nil
}

// UpdateSale changes the sale price and/or date. The price cannot drop below
// what has already been paid.
func (c *Customer) UpdateSale(salePrice *decimal.Decimal, saleDate *time.Time) error {
	if salePrice != nil {
		price := shared.RoundMoney(*salePrice)
		if price.IsNegative() {
			return shared.NewDomainError("INVALID_SALE_PRICE", "Sale price cannot be negative")
		}
		if price.LessThan(c.Sale.PaidAmount) {
			return shared.NewDomainError("SALE_PRICE_BELOW_PAID", "Sale price cannot be lower than the amount already paid")
		}
		c.Sale.SalePrice = price
	}
	if saleDate != nil {
		c.Sale.SaleDate = *saleDate
	}
	c.recompute()
	c.touch()
	return nil
}

// UpdateBuyer replaces the buyer details
func (c *Customer) UpdateBuyer(b Buyer) error {
	next := normalizeBuyer(b)
	if next.Name == "" {
		return shared.NewDomainError("INVALID_BUYER", "Buyer name is required")
	}
	c.Buyer = next
	c.touch()
	return nil
}

// UpdateVehicle replaces the vehicle details
func (c *Customer) UpdateVehicle(v Vehicle) error {
	next := normalizeVehicle(v)
	if next.ChassisNumber == "" {
		return shared.NewDomainError("INVALID_CHASSIS_NUMBER", "Vehicle chassis number is required")
	}
	c.Vehicle = next
	c.touch()
	return nil
}

// FindPayment returns the installment with the given id
func (c *Customer) FindPayment(paymentID uuid.UUID) (*Payment, bool) {
	idx := c.paymentIndex(paymentID)
	if idx < 0 {
		return nil, false
	}
	return &c.Payments[idx], true
}

// recompute rebuilds the running snapshots from the installment amounts and
// derives the sale totals from them.
func (c *Customer) recompute() {
	running := decimal.Zero
	for i := range c.Payments {
		running = running.Add(c.Payments[i].AmountPaid)
		c.Payments[i].InstallmentNumber = i + 1
		c.Payments[i].TotalPaidUpToDate = running
		c.Payments[i].RemainingAfterPayment = c.Sale.SalePrice.Sub(running)
	}
	c.Sale.PaidAmount = running
	c.Sale.RemainingAmount = c.Sale.SalePrice.Sub(running)
	c.Sale.PaymentStatus = statusFor(c.Sale.SalePrice, running)
}

func statusFor(price, paid decimal.Decimal) PaymentStatus {
	switch {
	case paid.IsZero() && price.IsPositive():
		return PaymentStatusPending
	case paid.GreaterThanOrEqual(price):
		return PaymentStatusPaid
	default:
		return PaymentStatusPartial
	}
}

func (c *Customer) paymentIndex(id uuid.UUID) int {
	for i := range c.Payments {
		if c.Payments[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Customer) validateParties() error {
	if c.Buyer.Name == "" {
		return shared.NewDomainError("INVALID_BUYER", "Buyer name is required")
	}
	if c.Vehicle.ChassisNumber == "" {
		return shared.NewDomainError("INVALID_CHASSIS_NUMBER", "Vehicle chassis number is required")
	}
	return nil
}

func (c *Customer) touch() {
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

func normalizeBuyer(b Buyer) Buyer {
	return Buyer{
		Name:     shared.NormalizeTitle(b.Name),
		Phone:    strings.TrimSpace(b.Phone),
		Email:    shared.NormalizeEmail(b.Email),
		IDNumber: strings.TrimSpace(b.IDNumber),
		Address:  strings.TrimSpace(b.Address),
	}
}

func normalizeVehicle(v Vehicle) Vehicle {
	return Vehicle{
		ChassisNumber: shared.NormalizeIdentifier(v.ChassisNumber),
		Make:          shared.NormalizeTitle(v.Make),
		Model:         shared.NormalizeTitle(v.Model),
		Year:          v.Year,
		Color:         shared.NormalizeTitle(v.Color),
	}
}
