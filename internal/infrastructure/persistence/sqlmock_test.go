package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB wires GORM's postgres dialector onto a sqlmock connection so the
// exact SQL issued against production can be asserted.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestGormProductRepository_AdjustQuantity_SQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()
	id := uuid.New()

	t.Run("negative delta carries the stock guard", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "products" SET .+ WHERE id = \$\d+ AND quantity >= \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.AdjustQuantity(ctx, id, -4))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("guard rejection on an existing row maps to insufficient stock", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "products" SET .+ WHERE id = \$\d+ AND quantity >= \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE id = \$\d+`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := repo.AdjustQuantity(ctx, id, -4)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "products" SET .+ WHERE id = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE id = \$\d+`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := repo.AdjustQuantity(ctx, id, 4)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormAccountPayableRepository_SumPendingAmount_SQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormAccountPayableRepository(db)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "accounts_payable" WHERE status = \$\d+`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(125000))

	total, err := repo.SumPendingAmount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(125000), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
