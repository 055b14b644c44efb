package persistence

import (
	"context"
	"testing"

	"github.com/estoque/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormAccountPayableRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAccountPayableRepository(db)
	ctx := context.Background()

	orderID := uuid.New()
	payable, err := finance.NewAccountPayable(uuid.New(), "Fornecedor Alfa", orderID, "PO-0001", uuid.New(), 60000, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, payable))

	other, err := finance.NewAccountPayable(uuid.New(), "Fornecedor Beta", uuid.New(), "PO-0002", uuid.New(), 15000, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, other))

	byOrder, err := repo.FindByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, byOrder, 1)
	assert.Equal(t, payable.ID, byOrder[0].ID)

	total, err := repo.SumPendingAmount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(75000), total)

	// settling removes the amount from the pending sum
	require.NoError(t, payable.MarkPaid())
	require.NoError(t, repo.Save(ctx, payable))

	total, err = repo.SumPendingAmount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), total)
}

func TestGormAccountReceivableRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAccountReceivableRepository(db)
	ctx := context.Background()

	orderID := uuid.New()
	receivable, err := finance.NewAccountReceivable(uuid.New(), "Cliente Gama", orderID, "VD-0001", 32000, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, receivable))

	byOrder, err := repo.FindByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, byOrder, 1)

	total, err := repo.SumPendingAmount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(32000), total)

	require.NoError(t, receivable.MarkReceived())
	require.NoError(t, repo.Save(ctx, receivable))

	total, err = repo.SumPendingAmount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
