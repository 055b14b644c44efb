package finance

import (
	"context"

	"github.com/estoque/backend/internal/domain/finance"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FinanceService handles accounts payable and receivable. Accounts are
// created by the receiving and invoicing workflows; this service only
// reads and settles them.
type FinanceService struct {
	payableRepo    finance.AccountPayableRepository
	receivableRepo finance.AccountReceivableRepository
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(payableRepo finance.AccountPayableRepository, receivableRepo finance.AccountReceivableRepository) *FinanceService {
	return &FinanceService{
		payableRepo:    payableRepo,
		receivableRepo: receivableRepo,
	}
}

// GetPayable returns a payable by ID
func (s *FinanceService) GetPayable(ctx context.Context, id uuid.UUID) (*PayableDTO, error) {
	payable, err := s.payableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := PayableFromDomain(payable)
	return &dto, nil
}

// ListPayables returns the payables matching the filter
func (s *FinanceService) ListPayables(ctx context.Context, filter shared.Filter) (*shared.Paginated[PayableDTO], error) {
	payables, err := s.payableRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.payableRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]PayableDTO, 0, len(payables))
	for _, p := range payables {
		dtos = append(dtos, PayableFromDomain(p))
	}
	return shared.NewPaginated(dtos, total, filter.Page, filter.PageSize), nil
}

// SettlePayable marks a payable as PAGO. Settling twice is an error.
func (s *FinanceService) SettlePayable(ctx context.Context, id uuid.UUID) (*PayableDTO, error) {
	payable, err := s.payableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := payable.MarkPaid(); err != nil {
		return nil, err
	}
	if err := s.payableRepo.Save(ctx, payable); err != nil {
		return nil, err
	}

	dto := PayableFromDomain(payable)
	return &dto, nil
}

// GetReceivable returns a receivable by ID
func (s *FinanceService) GetReceivable(ctx context.Context, id uuid.UUID) (*ReceivableDTO, error) {
	receivable, err := s.receivableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := ReceivableFromDomain(receivable)
	return &dto, nil
}

// ListReceivables returns the receivables matching the filter
func (s *FinanceService) ListReceivables(ctx context.Context, filter shared.Filter) (*shared.Paginated[ReceivableDTO], error) {
	receivables, err := s.receivableRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.receivableRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]ReceivableDTO, 0, len(receivables))
	for _, r := range receivables {
		dtos = append(dtos, ReceivableFromDomain(r))
	}
	return shared.NewPaginated(dtos, total, filter.Page, filter.PageSize), nil
}

// SettleReceivable marks a receivable as RECEBIDO. Settling twice is an error.
func (s *FinanceService) SettleReceivable(ctx context.Context, id uuid.UUID) (*ReceivableDTO, error) {
	receivable, err := s.receivableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := receivable.MarkReceived(); err != nil {
		return nil, err
	}
	if err := s.receivableRepo.Save(ctx, receivable); err != nil {
		return nil, err
	}

	dto := ReceivableFromDomain(receivable)
	return &dto, nil
}
