package finance

import (
	"context"

	"github.com/estoque/backend/internal/domain/finance"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// In-memory repositories for exercising the service without a database.

type fakePayableRepo struct {
	payables map[uuid.UUID]*finance.AccountPayable
}

func newFakePayableRepo() *fakePayableRepo {
	return &fakePayableRepo{payables: make(map[uuid.UUID]*finance.AccountPayable)}
}

func (r *fakePayableRepo) Create(_ context.Context, p *finance.AccountPayable) error {
	r.payables[p.ID] = p
	return nil
}

func (r *fakePayableRepo) FindByID(_ context.Context, id uuid.UUID) (*finance.AccountPayable, error) {
	p, ok := r.payables[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (r *fakePayableRepo) FindByOrder(_ context.Context, orderID uuid.UUID) ([]*finance.AccountPayable, error) {
	out := make([]*finance.AccountPayable, 0)
	for _, p := range r.payables {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePayableRepo) FindAll(_ context.Context, _ shared.Filter) ([]*finance.AccountPayable, error) {
	out := make([]*finance.AccountPayable, 0, len(r.payables))
	for _, p := range r.payables {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePayableRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.payables)), nil
}

func (r *fakePayableRepo) Save(_ context.Context, p *finance.AccountPayable) error {
	r.payables[p.ID] = p
	return nil
}

func (r *fakePayableRepo) SumPendingAmount(_ context.Context) (int64, error) {
	var total int64
	for _, p := range r.payables {
		if p.Status == finance.PayableStatusPendente {
			total += p.Amount
		}
	}
	return total, nil
}

var _ finance.AccountPayableRepository = (*fakePayableRepo)(nil)

type fakeReceivableRepo struct {
	receivables map[uuid.UUID]*finance.AccountReceivable
}

func newFakeReceivableRepo() *fakeReceivableRepo {
	return &fakeReceivableRepo{receivables: make(map[uuid.UUID]*finance.AccountReceivable)}
}

func (r *fakeReceivableRepo) Create(_ context.Context, rec *finance.AccountReceivable) error {
	r.receivables[rec.ID] = rec
	return nil
}

func (r *fakeReceivableRepo) FindByID(_ context.Context, id uuid.UUID) (*finance.AccountReceivable, error) {
	rec, ok := r.receivables[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return rec, nil
}

func (r *fakeReceivableRepo) FindByOrder(_ context.Context, orderID uuid.UUID) ([]*finance.AccountReceivable, error) {
	out := make([]*finance.AccountReceivable, 0)
	for _, rec := range r.receivables {
		if rec.OrderID == orderID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeReceivableRepo) FindAll(_ context.Context, _ shared.Filter) ([]*finance.AccountReceivable, error) {
	out := make([]*finance.AccountReceivable, 0, len(r.receivables))
	for _, rec := range r.receivables {
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakeReceivableRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.receivables)), nil
}

func (r *fakeReceivableRepo) Save(_ context.Context, rec *finance.AccountReceivable) error {
	r.receivables[rec.ID] = rec
	return nil
}

func (r *fakeReceivableRepo) SumPendingAmount(_ context.Context) (int64, error) {
	var total int64
	for _, rec := range r.receivables {
		if rec.Status == finance.ReceivableStatusPendente {
			total += rec.Amount
		}
	}
	return total, nil
}

var _ finance.AccountReceivableRepository = (*fakeReceivableRepo)(nil)
