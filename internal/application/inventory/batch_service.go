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
	ErrBatchNoTaken     = shared.NewDomainError("BATCH_NO_ALREADY_EXISTS", "A batch with this number already exists")
	ErrBatchNoImmutable = shared.NewDomainError("BATCH_NO_IMMUTABLE", "Batch number cannot be changed")
	ErrBatchInUse       = shared.NewDomainError("BATCH_IN_USE", "Batch is referenced by cars or investors")
	ErrExpenseNotFound  = shared.NewDomainError("EXPENSE_NOT_FOUND", "Expense not found")
)

// BatchService manages batches and their expenses
type BatchService struct {
	batches  inventory.BatchRepository
	expenses inventory.BatchExpenseRepository
	logger   *zap.Logger
}

// NewBatchService creates a batch service
func NewBatchService(batches inventory.BatchRepository, expenses inventory.BatchExpenseRepository, logger *zap.Logger) *BatchService {
	return &BatchService{batches: batches, expenses: expenses, logger: logger}
}

// Create creates a batch. Batch numbers are unique within a company.
func (s *BatchService) Create(ctx context.Context, companyID uuid.UUID, input CreateBatchInput) (*BatchDTO, error) {
	batch, err := inventory.NewBatch(companyID, input.BatchNo, input.Description, input.ArrivalDate)
	if err != nil {
		return nil, err
	}
	exists, err := s.batches.ExistsByBatchNo(ctx, companyID, batch.BatchNo)
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to check batch number", err)
	}
	if exists {
		return nil, ErrBatchNoTaken
	}
	if err := s.batches.Create(ctx, batch); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, ErrBatchNoTaken
		}
		return nil, fmt.Errorf("create batch: %w", err)
	}
	s.logger.Info("Batch created",
		zap.String("company_id", companyID.String()),
		zap.String("batch_no", batch.BatchNo),
	)
	return ToBatchDTO(batch), nil
}

func (s *BatchService) load(ctx context.Context, companyID, id uuid.UUID) (*inventory.Batch, error) {
	batch, err := s.batches.FindByIDForCompany(ctx, companyID, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, ErrBatchNotFound
	}
	return batch, err
}

// Get returns a batch of the company
func (s *BatchService) Get(ctx context.Context, companyID, id uuid.UUID) (*BatchDTO, error) {
	batch, err := s.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return ToBatchDTO(batch), nil
}

// List lists the company's batches, searching by batch number or description
func (s *BatchService) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[BatchDTO], error) {
	f := filter.Normalize()
	batches, err := s.batches.FindAll(ctx, companyID, f)
	if err != nil {
		s.logger.Error("Failed to list batches", zap.Error(err))
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to list batches", err)
	}
	total, err := s.batches.Count(ctx, companyID, f)
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to count batches", err)
	}
	items := make([]BatchDTO, len(batches))
	for i, b := range batches {
		items[i] = *ToBatchDTO(b)
	}
	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// Update changes the description and arrival date. The batch number is fixed
// at creation since cars and investors refer to the batch by it.
func (s *BatchService) Update(ctx context.Context, companyID, id uuid.UUID, input UpdateBatchInput) (*BatchDTO, error) {
	batch, err := s.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if input.BatchNo != nil && strings.TrimSpace(*input.BatchNo) != batch.BatchNo {
		return nil, ErrBatchNoImmutable
	}
	batch.UpdateDetails(input.Description, input.ArrivalDate)
	if err := s.batches.Update(ctx, batch); err != nil {
		return nil, fmt.Errorf("update batch: %w", err)
	}
	return ToBatchDTO(batch), nil
}

// Delete removes a batch that no car or investor references
func (s *BatchService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	batch, err := s.load(ctx, companyID, id)
	if err != nil {
		return err
	}
	cars, investors, err := s.batches.CountReferences(ctx, companyID, batch.BatchNo)
	if err != nil {
		return shared.WrapDomainError("INTERNAL_ERROR", "Failed to check batch references", err)
	}
	if cars > 0 || investors > 0 {
		return shared.NewDomainError(ErrBatchInUse.Code,
			fmt.Sprintf("Batch %s is referenced by %d car(s) and %d investor(s)", batch.BatchNo, cars, investors))
	}
	if err := s.batches.Delete(ctx, batch.ID); err != nil {
		return err
	}
	s.logger.Info("Batch deleted",
		zap.String("company_id", companyID.String()),
		zap.String("batch_no", batch.BatchNo),
	)
	return nil
}

// AddExpense records an expense on a batch. The expense total is refreshed by
// the next expense recompute.
func (s *BatchService) AddExpense(ctx context.Context, companyID, batchID uuid.UUID, input CreateExpenseInput) (*BatchExpenseDTO, error) {
	batch, err := s.load(ctx, companyID, batchID)
	if err != nil {
		return nil, err
	}
	expense, err := inventory.NewBatchExpense(batch, input.Title, input.Amount, input.Date, input.Note)
	if err != nil {
		return nil, err
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create batch expense: %w", err)
	}
	return ToBatchExpenseDTO(expense), nil
}

// ListExpenses lists the expenses of a batch
func (s *BatchService) ListExpenses(ctx context.Context, companyID, batchID uuid.UUID) ([]BatchExpenseDTO, error) {
	batch, err := s.load(ctx, companyID, batchID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.FindByBatch(ctx, batch.ID)
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to list expenses", err)
	}
	out := make([]BatchExpenseDTO, len(expenses))
	for i, e := range expenses {
		out[i] = *ToBatchExpenseDTO(e)
	}
	return out, nil
}

// DeleteExpense removes an expense of a batch
func (s *BatchService) DeleteExpense(ctx context.Context, companyID, batchID, expenseID uuid.UUID) error {
	expense, err := s.expenses.FindByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return ErrExpenseNotFound
		}
		return err
	}
	if expense.CompanyID != companyID || expense.BatchID != batchID {
		return ErrExpenseNotFound
	}
	return s.expenses.Delete(ctx, expense.ID)
}
