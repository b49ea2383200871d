package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCarNotFound  = shared.NewDomainError("CAR_NOT_FOUND", "Car not found")
	ErrChassisTaken = shared.NewDomainError("CHASSIS_ALREADY_EXISTS", "A car with this chassis number already exists")
	ErrUnknownBatch = shared.NewDomainError("UNKNOWN_BATCH", "No batch with this number exists")
)

// CarService manages the cars of a company
type CarService struct {
	cars    inventory.CarRepository
	batches inventory.BatchRepository
	logger  *zap.Logger
}

// NewCarService creates a car service
func NewCarService(cars inventory.CarRepository, batches inventory.BatchRepository, logger *zap.Logger) *CarService {
	return &CarService{cars: cars, batches: batches, logger: logger}
}

// Create creates a car. The chassis number must be unique within the company
// and the batch, when given, must exist in the same company.
func (s *CarService) Create(ctx context.Context, companyID uuid.UUID, input CreateCarInput) (*CarDTO, error) {
	car, err := inventory.NewCar(companyID, inventory.CarDetails{
		BatchNo:       input.BatchNo,
		ChassisNumber: input.ChassisNumber,
		Make:          input.Make,
		Model:         input.Model,
		Year:          input.Year,
		Color:         input.Color,
		EngineNumber:  input.EngineNumber,
		AuctionGrade:  input.AuctionGrade,
		Mileage:       input.Mileage,
		Financing:     input.Financing.ToDomain(),
	})
	if err != nil {
		return nil, err
	}
	if err := s.ensureBatch(ctx, companyID, car.BatchNo); err != nil {
		return nil, err
	}
	if err := s.ensureChassisFree(ctx, companyID, car.ChassisNumber, nil); err != nil {
		return nil, err
	}

	if err := s.cars.Create(ctx, car); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, ErrChassisTaken
		}
		return nil, fmt.Errorf("create car: %w", err)
	}
	s.logger.Info("Car created",
		zap.String("company_id", companyID.String()),
		zap.String("chassis_number", car.ChassisNumber),
		zap.String("batch_no", car.BatchNo),
	)
	return ToCarDTO(car), nil
}

func (s *CarService) ensureBatch(ctx context.Context, companyID uuid.UUID, batchNo string) error {
	if batchNo == "" {
		return nil
	}
	exists, err := s.batches.ExistsByBatchNo(ctx, companyID, batchNo)
	if err != nil {
		return shared.WrapDomainError("INTERNAL_ERROR", "Failed to check batch", err)
	}
	if !exists {
		return shared.NewDomainError(ErrUnknownBatch.Code, "Batch "+batchNo+" does not exist")
	}
	return nil
}

func (s *CarService) ensureChassisFree(ctx context.Context, companyID uuid.UUID, chassis string, self *uuid.UUID) error {
	taken, err := s.cars.ExistsByChassis(ctx, companyID, chassis, self)
	if err != nil {
		return shared.WrapDomainError("INTERNAL_ERROR", "Failed to check chassis number", err)
	}
	if taken {
		return ErrChassisTaken
	}
	return nil
}

func (s *CarService) load(ctx context.Context, companyID, id uuid.UUID) (*inventory.Car, error) {
	car, err := s.cars.FindByIDForCompany(ctx, companyID, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, ErrCarNotFound
	}
	return car, err
}

// Get returns a car of the company
func (s *CarService) Get(ctx context.Context, companyID, id uuid.UUID) (*CarDTO, error) {
	car, err := s.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return ToCarDTO(car), nil
}

// List lists the company's cars by batch, status and free-text search
func (s *CarService) List(ctx context.Context, companyID uuid.UUID, filter inventory.CarFilter) (*shared.Paginated[CarDTO], error) {
	filter.Filter = filter.Filter.Normalize()
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Status must be in_stock or sold")
	}
	cars, err := s.cars.FindAll(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("Failed to list cars", zap.Error(err))
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to list cars", err)
	}
	total, err := s.cars.Count(ctx, companyID, filter)
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to count cars", err)
	}
	items := make([]CarDTO, len(cars))
	for i, c := range cars {
		items[i] = *ToCarDTO(c)
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update applies changes to a car, re-checking the batch and chassis rules
// for the fields that change
func (s *CarService) Update(ctx context.Context, companyID, id uuid.UUID, input UpdateCarInput) (*CarDTO, error) {
	car, err := s.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	previousChassis, previousBatch := car.ChassisNumber, car.BatchNo

	if err := car.Apply(inventory.CarUpdate{
		BatchNo:       input.BatchNo,
		ChassisNumber: input.ChassisNumber,
		Make:          input.Make,
		Model:         input.Model,
		Year:          input.Year,
		Color:         input.Color,
		EngineNumber:  input.EngineNumber,
		AuctionGrade:  input.AuctionGrade,
		Mileage:       input.Mileage,
		Status:        input.Status,
		Financing:     input.Financing.ToDomain(),
	}); err != nil {
		return nil, err
	}
	if car.BatchNo != previousBatch {
		if err := s.ensureBatch(ctx, companyID, car.BatchNo); err != nil {
			return nil, err
		}
	}
	if !strings.EqualFold(car.ChassisNumber, previousChassis) {
		if err := s.ensureChassisFree(ctx, companyID, car.ChassisNumber, &car.ID); err != nil {
			return nil, err
		}
	}

	if err := s.cars.Update(ctx, car); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, ErrChassisTaken
		}
		return nil, fmt.Errorf("update car: %w", err)
	}
	return ToCarDTO(car), nil
}

// Delete removes a car of the company
func (s *CarService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	car, err := s.load(ctx, companyID, id)
	if err != nil {
		return err
	}
	if err := s.cars.Delete(ctx, car.ID); err != nil {
		return err
	}
	s.logger.Info("Car deleted",
		zap.String("company_id", companyID.String()),
		zap.String("chassis_number", car.ChassisNumber),
	)
	return nil
}
