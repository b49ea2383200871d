package finance

import (
	"context"
	"errors"
	"fmt"

	"github.com/dealerdesk/backend/internal/domain/finance"
	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvestorNotFound = shared.NewDomainError("INVESTOR_NOT_FOUND", "Investor not found")
	ErrUnknownBatch     = shared.NewDomainError("UNKNOWN_BATCH", "No batch with this number exists")
)

// InvestorService manages the investors of a company
type InvestorService struct {
	investors finance.InvestorRepository
	batches   inventory.BatchRepository
	logger    *zap.Logger
}

// NewInvestorService creates an investor service
func NewInvestorService(investors finance.InvestorRepository, batches inventory.BatchRepository, logger *zap.Logger) *InvestorService {
	return &InvestorService{investors: investors, batches: batches, logger: logger}
}

// Create records an investor against an existing batch of the company
func (s *InvestorService) Create(ctx context.Context, companyID uuid.UUID, input CreateInvestorInput) (*InvestorDTO, error) {
	inv, err := finance.NewInvestor(companyID, finance.InvestorDetails{
		BatchNo:        input.BatchNo,
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		InvestAmount:   input.InvestAmount,
		AmountPaid:     input.AmountPaid,
		InvestmentDate: input.InvestmentDate,
		Note:           input.Note,
	})
	if err != nil {
		return nil, err
	}
	if err := s.ensureBatch(ctx, companyID, inv.BatchNo); err != nil {
		return nil, err
	}
	if err := s.investors.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create investor: %w", err)
	}

	s.logger.Info("Investor created",
		zap.String("company_id", companyID.String()),
		zap.String("batch_no", inv.BatchNo),
		zap.String("invest_amount", inv.InvestAmount.StringFixed(2)),
	)
	return ToInvestorDTO(inv), nil
}

func (s *InvestorService) ensureBatch(ctx context.Context, companyID uuid.UUID, batchNo string) error {
	exists, err := s.batches.ExistsByBatchNo(ctx, companyID, batchNo)
	if err != nil {
		return shared.WrapDomainError("INTERNAL_ERROR", "Failed to check batch", err)
	}
	if !exists {
		return shared.NewDomainError(ErrUnknownBatch.Code, "Batch "+batchNo+" does not exist")
	}
	return nil
}

func (s *InvestorService) load(ctx context.Context, companyID, id uuid.UUID) (*finance.Investor, error) {
	inv, err := s.investors.FindByIDForCompany(ctx, companyID, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, ErrInvestorNotFound
	}
	return inv, err
}

// Get returns an investor of the company
func (s *InvestorService) Get(ctx context.Context, companyID, id uuid.UUID) (*InvestorDTO, error) {
	inv, err := s.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return ToInvestorDTO(inv), nil
}

// List lists investors, optionally narrowed to one batch
func (s *InvestorService) List(ctx context.Context, companyID uuid.UUID, filter finance.InvestorFilter) (*shared.Paginated[InvestorDTO], error) {
	filter.Filter = filter.Filter.Normalize()
	investors, err := s.investors.FindAll(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("Failed to list investors", zap.Error(err))
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to list investors", err)
	}
	total, err := s.investors.Count(ctx, companyID, filter)
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to count investors", err)
	}
	items := make([]InvestorDTO, len(investors))
	for i, inv := range investors {
		items[i] = *ToInvestorDTO(inv)
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update applies changes to an investor. The remaining amount is always
// re-derived from the invested and paid amounts.
func (s *InvestorService) Update(ctx context.Context, companyID, id uuid.UUID, input UpdateInvestorInput) (*InvestorDTO, error) {
	inv, err := s.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	previousBatch := inv.BatchNo
	if err := inv.Apply(finance.InvestorUpdate{
		BatchNo:        input.BatchNo,
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		InvestAmount:   input.InvestAmount,
		AmountPaid:     input.AmountPaid,
		InvestmentDate: input.InvestmentDate,
		Note:           input.Note,
	}); err != nil {
		return nil, err
	}
	if inv.BatchNo != previousBatch {
		if err := s.ensureBatch(ctx, companyID, inv.BatchNo); err != nil {
			return nil, err
		}
	}
	if err := s.investors.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("update investor: %w", err)
	}
	return ToInvestorDTO(inv), nil
}

// Delete removes an investor of the company
func (s *InvestorService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	inv, err := s.load(ctx, companyID, id)
	if err != nil {
		return err
	}
	if err := s.investors.Delete(ctx, inv.ID); err != nil {
		return err
	}
	s.logger.Info("Investor deleted",
		zap.String("company_id", companyID.String()),
		zap.String("investor_id", inv.ID.String()),
	)
	return nil
}
