package inventory

import (
	"strings"
	"time"

	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarStatus represents the stock status of a car
type CarStatus string

const (
	CarStatusInStock CarStatus = "in_stock"
	CarStatusSold    CarStatus = "sold"
)

// IsValid reports whether the status is known
func (s CarStatus) IsValid() bool {
	return s == CarStatusInStock || s == CarStatusSold
}

const (
	minCarYear = 1950
	maxCarYear = 2100
)

// Car is a single vehicle held by a company, optionally part of a batch
type Car struct {
	shared.TenantAggregateRoot
	BatchNo       string // empty when the car is not part of a batch
	ChassisNumber string
	Make          string
	Model         string
	Year          int
	Color         string
	EngineNumber  string
	AuctionGrade  string
	Mileage       int
	Status        CarStatus
	Financing     *Financing
}

// CarDetails carries the descriptive fields used to create a car
type CarDetails struct {
	BatchNo       string
	ChassisNumber string
	Make          string
	Model         string
	Year          int
	Color         string
	EngineNumber  string
	AuctionGrade  string
	Mileage       int
	Financing     *Financing
}

// CarUpdate carries the mutable fields of a car. Nil fields are left unchanged.
type CarUpdate struct {
	BatchNo       *string
	ChassisNumber *string
	Make          *string
	Model         *string
	Year          *int
	Color         *string
	EngineNumber  *string
	AuctionGrade  *string
	Mileage       *int
	Status        *CarStatus
	Financing     *Financing
}

// NewCar creates an in-stock car. Batch existence and chassis uniqueness are
// checked by the application layer.
func NewCar(companyID uuid.UUID, d CarDetails) (*Car, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	car := &Car{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		BatchNo:             strings.TrimSpace(d.BatchNo),
		ChassisNumber:       shared.NormalizeIdentifier(d.ChassisNumber),
		Make:                shared.NormalizeTitle(d.Make),
		Model:               shared.NormalizeTitle(d.Model),
		Year:                d.Year,
		Color:               shared.NormalizeTitle(d.Color),
		EngineNumber:        shared.NormalizeIdentifier(d.EngineNumber),
		AuctionGrade:        strings.TrimSpace(d.AuctionGrade),
		Mileage:             d.Mileage,
		Status:              CarStatusInStock,
		Financing:           d.Financing,
	}
	if err := car.validate(); err != nil {
		return nil, err
	}
	return car, nil
}

// Apply applies an update and re-validates the car
func (c *Car) Apply(u CarUpdate) error {
	next := *c
	if u.BatchNo != nil {
		next.BatchNo = strings.TrimSpace(*u.BatchNo)
	}
	if u.ChassisNumber != nil {
		next.ChassisNumber = shared.NormalizeIdentifier(*u.ChassisNumber)
	}
	if u.Make != nil {
		next.Make = shared.NormalizeTitle(*u.Make)
	}
	if u.Model != nil {
		next.Model = shared.NormalizeTitle(*u.Model)
	}
	if u.Year != nil {
		next.Year = *u.Year
	}
	if u.Color != nil {
		next.Color = shared.NormalizeTitle(*u.Color)
	}
	if u.EngineNumber != nil {
		next.EngineNumber = shared.NormalizeIdentifier(*u.EngineNumber)
	}
	if u.AuctionGrade != nil {
		next.AuctionGrade = strings.TrimSpace(*u.AuctionGrade)
	}
	if u.Mileage != nil {
		next.Mileage = *u.Mileage
	}
	if u.Status != nil {
		next.Status = *u.Status
	}
	if u.Financing != nil {
		next.Financing = u.Financing
	}
	if err := next.validate(); err != nil {
		return err
	}
	*c = next
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// TotalCost returns the landed cost of the car; zero without a financing breakdown
func (c *Car) TotalCost() decimal.Decimal {
	return c.Financing.TotalCost()
}

// MarkSold marks the car as sold
func (c *Car) MarkSold() {
	if c.Status == CarStatusSold {
		return
	}
	c.Status = CarStatusSold
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// MarkInStock returns a car to stock after its sale was withdrawn
func (c *Car) MarkInStock() {
	if c.Status == CarStatusInStock {
		return
	}
	c.Status = CarStatusInStock
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

func (c *Car) validate() error {
	if c.ChassisNumber == "" {
		return shared.NewDomainError("INVALID_CHASSIS_NUMBER", "Chassis number is required")
	}
	if len(c.ChassisNumber) > 50 {
		return shared.NewDomainError("INVALID_CHASSIS_NUMBER", "Chassis number cannot exceed 50 characters")
	}
	if c.BatchNo != "" {
		if err := ValidateBatchNo(c.BatchNo); err != nil {
			return err
		}
	}
	if c.Year != 0 && (c.Year < minCarYear || c.Year > maxCarYear) {
		return shared.NewDomainError("INVALID_YEAR", "Year is out of range")
	}
	if c.Mileage < 0 {
		return shared.NewDomainError("INVALID_MILEAGE", "Mileage cannot be negative")
	}
	if !c.Status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Status must be in_stock or sold")
	}
	if c.Financing != nil {
		if err := c.Financing.Validate(); err != nil {
			return err
		}
	}
	return nil
}
