package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/velmart/storefront/internal/adapter/storage"
	"github.com/velmart/storefront/internal/adapter/storage/repository"
	"github.com/velmart/storefront/internal/core/domain"
)

func newMockRepository(t *testing.T) (*repository.Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	assert.NoError(t, err)

	repo, err := repository.NewRepository(storage.NewDB(pool))
	assert.NoError(t, err)
	return repo, pool
}

func lockedPaymentRows(now time.Time) *pgxmock.Rows {
	ref := "pi_1"
	return pgxmock.NewRows([]string{
		"id", "order_id", "user_id", "amount", "gateway_ref",
		"status", "created_at", "updated_at",
	}).AddRow(uint64(55), uint64(10), uint64(1), decimal.MustParse("102.13"),
		&ref, domain.PaymentStatusProcessing, now, now)
}

func lockedOrderRows(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "shipping_address_id", "billing_address_id",
		"total", "status", "created_at", "updated_at",
	}).AddRow(uint64(10), uint64(1), (*uint64)(nil), (*uint64)(nil),
		decimal.MustParse("102.13"), domain.OrderStatusPending, now, now)
}

func TestRepository_UpdatePaymentAndOrder(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	completeFn := func(p *domain.Payment, o *domain.Order) error {
		p.Status = domain.PaymentStatusSucceeded
		o.Status = domain.OrderStatusCompleted
		return nil
	}

	t.Run("writes both rows and commits", func(t *testing.T) {
		repo, pool := newMockRepository(t)
		defer pool.Close()

		pool.ExpectBegin()
		pool.ExpectQuery("SELECT (.+) FROM payments WHERE (.+) for update").
			WithArgs(uint64(55)).
			WillReturnRows(lockedPaymentRows(now))
		pool.ExpectQuery("SELECT (.+) FROM orders WHERE (.+) for update").
			WithArgs(uint64(10)).
			WillReturnRows(lockedOrderRows(now))
		pool.ExpectExec("UPDATE payments").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		pool.ExpectExec("UPDATE orders").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		pool.ExpectCommit()

		payment, err := repo.UpdatePaymentAndOrder(ctx, 55, completeFn)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusSucceeded, payment.Status)
		assert.Equal(t, "pi_1", payment.GatewayRef)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("failure between the two writes rolls both back", func(t *testing.T) {
		repo, pool := newMockRepository(t)
		defer pool.Close()

		writeErr := errors.New("connection reset by peer")
		pool.ExpectBegin()
		pool.ExpectQuery("SELECT (.+) FROM payments WHERE (.+) for update").
			WithArgs(uint64(55)).
			WillReturnRows(lockedPaymentRows(now))
		pool.ExpectQuery("SELECT (.+) FROM orders WHERE (.+) for update").
			WithArgs(uint64(10)).
			WillReturnRows(lockedOrderRows(now))
		pool.ExpectExec("UPDATE payments").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		pool.ExpectExec("UPDATE orders").
			WillReturnError(writeErr)
		pool.ExpectRollback()

		payment, err := repo.UpdatePaymentAndOrder(ctx, 55, completeFn)
		assert.ErrorIs(t, err, writeErr)
		assert.Nil(t, payment)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("update callback error aborts before any write", func(t *testing.T) {
		repo, pool := newMockRepository(t)
		defer pool.Close()

		pool.ExpectBegin()
		pool.ExpectQuery("SELECT (.+) FROM payments WHERE (.+) for update").
			WithArgs(uint64(55)).
			WillReturnRows(lockedPaymentRows(now))
		pool.ExpectQuery("SELECT (.+) FROM orders WHERE (.+) for update").
			WithArgs(uint64(10)).
			WillReturnRows(lockedOrderRows(now))
		pool.ExpectRollback()

		payment, err := repo.UpdatePaymentAndOrder(ctx, 55,
			func(p *domain.Payment, o *domain.Order) error {
				return domain.ErrOrderNotPurchasable
			})
		assert.ErrorIs(t, err, domain.ErrOrderNotPurchasable)
		assert.Nil(t, payment)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("unknown payment maps to not found", func(t *testing.T) {
		repo, pool := newMockRepository(t)
		defer pool.Close()

		pool.ExpectBegin()
		pool.ExpectQuery("SELECT (.+) FROM payments WHERE (.+) for update").
			WithArgs(uint64(99)).
			WillReturnError(pgx.ErrNoRows)
		pool.ExpectRollback()

		payment, err := repo.UpdatePaymentAndOrder(ctx, 99, completeFn)
		assert.ErrorIs(t, err, domain.ErrDataNotFound)
		assert.Nil(t, payment)
		assert.NoError(t, pool.ExpectationsWereMet())
	})
}
