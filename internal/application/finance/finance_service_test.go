package finance

import (
	"context"
	"testing"

	"github.com/estoque/backend/internal/domain/finance"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinanceService_SettlePayable(t *testing.T) {
	payableRepo := newFakePayableRepo()
	service := NewFinanceService(payableRepo, newFakeReceivableRepo())
	ctx := context.Background()

	payable, err := finance.NewAccountPayable(uuid.New(), "Fornecedor Alfa", uuid.New(), "PO-0001", uuid.New(), 60000, nil)
	require.NoError(t, err)
	require.NoError(t, payableRepo.Create(ctx, payable))

	dto, err := service.SettlePayable(ctx, payable.ID)
	require.NoError(t, err)
	assert.Equal(t, finance.PayableStatusPago.String(), dto.Status)
	assert.NotNil(t, dto.PaidAt)

	// settling twice
	_, err = service.SettlePayable(ctx, payable.ID)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeInvalidState, domainErr.Code)

	_, err = service.SettlePayable(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestFinanceService_SettleReceivable(t *testing.T) {
	receivableRepo := newFakeReceivableRepo()
	service := NewFinanceService(newFakePayableRepo(), receivableRepo)
	ctx := context.Background()

	receivable, err := finance.NewAccountReceivable(uuid.New(), "Cliente Gama", uuid.New(), "VD-0001", 32000, nil)
	require.NoError(t, err)
	require.NoError(t, receivableRepo.Create(ctx, receivable))

	dto, err := service.SettleReceivable(ctx, receivable.ID)
	require.NoError(t, err)
	assert.Equal(t, finance.ReceivableStatusRecebido.String(), dto.Status)
	assert.NotNil(t, dto.ReceivedAt)

	_, err = service.SettleReceivable(ctx, receivable.ID)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeInvalidState, domainErr.Code)
}

func TestFinanceService_ListPayables(t *testing.T) {
	payableRepo := newFakePayableRepo()
	service := NewFinanceService(payableRepo, newFakeReceivableRepo())
	ctx := context.Background()

	for _, amount := range []int64{10000, 25000} {
		payable, err := finance.NewAccountPayable(uuid.New(), "Fornecedor Alfa", uuid.New(), "PO-0001", uuid.New(), amount, nil)
		require.NoError(t, err)
		require.NoError(t, payableRepo.Create(ctx, payable))
	}

	page, err := service.ListPayables(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Total)
}
