package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/dealerdesk/backend/internal/domain/sales"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ErrCustomerNotFound is returned when a customer does not exist within the company
var ErrCustomerNotFound = shared.NewDomainError("CUSTOMER_NOT_FOUND", "Customer not found")

// CustomerService manages customer sales and their installment ledgers
type CustomerService struct {
	customers sales.CustomerRepository
	cars      inventory.CarRepository
	metrics   *telemetry.DealerMetrics
	logger    *zap.Logger
}

// NewCustomerService creates a customer service. metrics may be nil.
func NewCustomerService(customers sales.CustomerRepository, cars inventory.CarRepository, metrics *telemetry.DealerMetrics, logger *zap.Logger) *CustomerService {
	if metrics == nil {
		metrics = telemetry.NewNopDealerMetrics()
	}
	return &CustomerService{customers: customers, cars: cars, metrics: metrics, logger: logger}
}

// Create records a sale. An initial payment becomes installment 1 and the
// company's car with the same chassis number, if any, is marked sold.
func (s *CustomerService) Create(ctx context.Context, companyID uuid.UUID, input CreateCustomerInput) (*CustomerDTO, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "customer_service", "create",
		attribute.String(telemetry.AttrCompanyID, companyID.String()),
	)
	defer span.End()

	customer, err := sales.NewCustomer(companyID, input.Buyer.toDomain(), input.Vehicle.toDomain(), input.SalePrice, input.SaleDate)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String(telemetry.AttrChassis, customer.Vehicle.ChassisNumber))

	var initial *sales.Payment
	if input.InitialPayment != nil {
		if initial, err = customer.AddPayment(input.InitialPayment.toDomain()); err != nil {
			return nil, err
		}
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("create customer: %w", err)
	}
	if initial != nil {
		s.recordPayment(ctx, *initial)
	}
	s.markCarSold(ctx, companyID, customer.Vehicle.ChassisNumber)

	s.logger.Info("Customer sale recorded",
		zap.String("company_id", companyID.String()),
		zap.String("customer_id", customer.ID.String()),
		zap.String("chassis_number", customer.Vehicle.ChassisNumber),
		zap.String("sale_price", customer.Sale.SalePrice.StringFixed(2)),
	)
	telemetry.SetOK(span)
	return ToCustomerDTO(customer), nil
}

// markCarSold flags the sold car. A sale of a car that is not in inventory is
// still recorded, so failures here are logged and not returned.
func (s *CustomerService) markCarSold(ctx context.Context, companyID uuid.UUID, chassis string) {
	car, err := s.cars.FindByChassis(ctx, companyID, chassis)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Failed to look up sold car", zap.String("chassis_number", chassis), zap.Error(err))
		}
		return
	}
	if car.Status == inventory.CarStatusSold {
		return
	}
	car.MarkSold()
	if err := s.cars.Update(ctx, car); err != nil {
		s.logger.Warn("Failed to mark car sold", zap.String("chassis_number", chassis), zap.Error(err))
	}
}

// releaseCar puts a car back in stock once no customer of the company refers
// to its chassis any more. Best effort, like markCarSold.
func (s *CustomerService) releaseCar(ctx context.Context, companyID uuid.UUID, chassis string) {
	others, err := s.customers.FindByChassisNumbers(ctx, companyID, []string{chassis})
	if err != nil {
		s.logger.Warn("Failed to check remaining buyers of car", zap.String("chassis_number", chassis), zap.Error(err))
		return
	}
	if len(others) > 0 {
		return
	}
	car, err := s.cars.FindByChassis(ctx, companyID, chassis)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Failed to look up released car", zap.String("chassis_number", chassis), zap.Error(err))
		}
		return
	}
	if car.Status != inventory.CarStatusSold {
		return
	}
	car.MarkInStock()
	if err := s.cars.Update(ctx, car); err != nil {
		s.logger.Warn("Failed to return car to stock", zap.String("chassis_number", chassis), zap.Error(err))
	}
}

func (s *CustomerService) recordPayment(ctx context.Context, p sales.Payment) {
	amount, _ := p.AmountPaid.Float64()
	s.metrics.RecordPayment(ctx, string(p.Method.Type), amount)
}

func (s *CustomerService) load(ctx context.Context, companyID, id uuid.UUID) (*sales.Customer, error) {
	customer, err := s.customers.FindByIDForCompany(ctx, companyID, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	return customer, err
}

// Get returns a customer with its ledger
func (s *CustomerService) Get(ctx context.Context, companyID, id uuid.UUID) (*CustomerDTO, error) {
	customer, err := s.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return ToCustomerDTO(customer), nil
}

// List lists the company's customers by payment status, chassis number and search
func (s *CustomerService) List(ctx context.Context, companyID uuid.UUID, filter sales.CustomerFilter) (*shared.Paginated[CustomerDTO], error) {
	filter.Filter = filter.Filter.Normalize()
	switch filter.PaymentStatus {
	case "", sales.PaymentStatusPending, sales.PaymentStatusPartial, sales.PaymentStatusPaid:
	default:
		return nil, shared.NewDomainError("INVALID_STATUS", "Payment status must be pending, partial or paid")
	}
	customers, err := s.customers.FindAll(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("Failed to list customers", zap.Error(err))
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to list customers", err)
	}
	total, err := s.customers.Count(ctx, companyID, filter)
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to count customers", err)
	}
	items := make([]CustomerDTO, len(customers))
	for i, c := range customers {
		items[i] = *ToCustomerDTO(c)
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update changes the buyer, the vehicle or the sale terms. The sale price
// cannot drop below what has been paid.
func (s *CustomerService) Update(ctx context.Context, companyID, id uuid.UUID, input UpdateCustomerInput) (*CustomerDTO, error) {
	customer, err := s.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	previousChassis := customer.Vehicle.ChassisNumber

	if input.Buyer != nil {
		if err := customer.UpdateBuyer(input.Buyer.toDomain()); err != nil {
			return nil, err
		}
	}
	if input.Vehicle != nil {
		if err := customer.UpdateVehicle(input.Vehicle.toDomain()); err != nil {
			return nil, err
		}
	}
	if input.SalePrice != nil || input.SaleDate != nil {
		if err := customer.UpdateSale(input.SalePrice, input.SaleDate); err != nil {
			return nil, err
		}
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	if customer.Vehicle.ChassisNumber != previousChassis {
		s.markCarSold(ctx, companyID, customer.Vehicle.ChassisNumber)
		s.releaseCar(ctx, companyID, previousChassis)
	}
	return ToCustomerDTO(customer), nil
}

// Delete removes a customer and its ledger. The car returns to stock.
func (s *CustomerService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	customer, err := s.load(ctx, companyID, id)
	if err != nil {
		return err
	}
	if err := s.customers.Delete(ctx, customer.ID); err != nil {
		return err
	}
	s.releaseCar(ctx, companyID, customer.Vehicle.ChassisNumber)
	s.logger.Info("Customer deleted",
		zap.String("company_id", companyID.String()),
		zap.String("customer_id", customer.ID.String()),
	)
	return nil
}

// AddPayment appends an installment to the customer's ledger
func (s *CustomerService) AddPayment(ctx context.Context, companyID, customerID uuid.UUID, input PaymentInput) (*LedgerResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "customer_service", "add_payment",
		attribute.String(telemetry.AttrCompanyID, companyID.String()),
		attribute.String(telemetry.AttrCustomerID, customerID.String()),
		attribute.String(telemetry.AttrPayMethod, string(input.PaymentMethod.Type)),
	)
	defer span.End()

	customer, err := s.load(ctx, companyID, customerID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	payment, err := customer.AddPayment(input.toDomain())
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("save payment: %w", err)
	}
	s.recordPayment(ctx, *payment)

	s.logger.Info("Payment recorded",
		zap.String("customer_id", customer.ID.String()),
		zap.Int("installment", payment.InstallmentNumber),
		zap.String("amount", payment.AmountPaid.StringFixed(2)),
		zap.String("remaining", customer.Sale.RemainingAmount.StringFixed(2)),
	)
	telemetry.SetOK(span)
	return &LedgerResult{CustomerID: customer.ID, Payment: ToPaymentDTO(*payment), Sale: toSaleDTO(customer.Sale)}, nil
}

// UpdatePayment edits an installment. The snapshots of that installment and
// every later one are recomputed.
func (s *CustomerService) UpdatePayment(ctx context.Context, companyID, customerID, paymentID uuid.UUID, input UpdatePaymentInput) (*LedgerResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "customer_service", "update_payment",
		attribute.String(telemetry.AttrCompanyID, companyID.String()),
		attribute.String(telemetry.AttrCustomerID, customerID.String()),
	)
	defer span.End()

	customer, err := s.load(ctx, companyID, customerID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	payment, err := customer.UpdatePayment(paymentID, input.AmountPaid, input.PaymentMethod.toDomain())
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("save payment: %w", err)
	}
	telemetry.SetOK(span)
	return &LedgerResult{CustomerID: customer.ID, Payment: ToPaymentDTO(*payment), Sale: toSaleDTO(customer.Sale)}, nil
}

// ListPayments returns the ledger ordered by installment number
func (s *CustomerService) ListPayments(ctx context.Context, companyID, customerID uuid.UUID) ([]PaymentDTO, error) {
	customer, err := s.load(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}
	return toPaymentDTOs(customer.Payments), nil
}
