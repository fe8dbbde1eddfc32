package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
)

func (r *Repository) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Insert("payments").
		Columns("order_id", "user_id", "amount", "gateway_ref", "status").
		Values(payment.OrderID, payment.UserID, payment.Amount,
			nullableRef(payment.GatewayRef), payment.Status).
		Suffix("returning id, created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *Repository) GetPayment(ctx context.Context, id uint64) (*domain.Payment, error) {
	return r.getPayment(ctx, sq.Eq{"id": id})
}

func (r *Repository) GetPaymentByGatewayRef(ctx context.Context, ref string) (*domain.Payment, error) {
	return r.getPayment(ctx, sq.Eq{"gateway_ref": ref})
}

func (r *Repository) getPayment(ctx context.Context, where sq.Eq) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "user_id", "amount", "gateway_ref",
			"status", "created_at", "updated_at").
		From("payments").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	payment, err := scanPayment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return payment, nil
}

func (r *Repository) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	return r.listPayments(ctx, nil)
}

func (r *Repository) ListPaymentsByUser(ctx context.Context, userID uint64) ([]*domain.Payment, error) {
	return r.listPayments(ctx, sq.Eq{"user_id": userID})
}

func (r *Repository) listPayments(ctx context.Context, where sq.Eq) ([]*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "user_id", "amount", "gateway_ref",
			"status", "created_at", "updated_at").
		From("payments").
		OrderBy("id")
	if where != nil {
		statement = statement.Where(where)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, payment)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Update("payments").
		Set("gateway_ref", nullableRef(payment.GatewayRef)).
		Set("status", payment.Status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": payment.ID}).
		Suffix("returning updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&payment.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return payment, nil
}

// UpdatePaymentAndOrder locks the payment and its order, applies updateFn and
// writes both rows in one transaction. The confirm path and the webhook path
// both go through here, so concurrent writers to the same pair serialize on
// the row locks.
func (r *Repository) UpdatePaymentAndOrder(ctx context.Context, paymentID uint64,
	updateFn port.UpdatePaymentOrderFn) (*domain.Payment, error) {
	var payment *domain.Payment

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		paymentSt := r.db.QueryBuilder.
			Select("id", "order_id", "user_id", "amount", "gateway_ref",
				"status", "created_at", "updated_at").
			From("payments").
			Where(sq.Eq{"id": paymentID}).
			Suffix("for update")

		sql, args, err := paymentSt.ToSql()
		if err != nil {
			return err
		}

		payment, err = scanPayment(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrDataNotFound
			}
			return err
		}

		orderSt := r.db.QueryBuilder.
			Select("id", "user_id", "shipping_address_id", "billing_address_id",
				"total", "status", "created_at", "updated_at").
			From("orders").
			Where(sq.Eq{"id": payment.OrderID}).
			Suffix("for update")

		sql, args, err = orderSt.ToSql()
		if err != nil {
			return err
		}

		order := domain.Order{}
		err = tx.QueryRow(ctx, sql, args...).Scan(
			&order.ID,
			&order.UserID,
			&order.ShippingAddressID,
			&order.BillingAddressID,
			&order.Total,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrDataNotFound
			}
			return err
		}

		err = updateFn(payment, &order)
		if err != nil {
			return err
		}

		updPayment := r.db.QueryBuilder.
			Update("payments").
			Set("gateway_ref", nullableRef(payment.GatewayRef)).
			Set("status", payment.Status).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": payment.ID})

		sql, args, err = updPayment.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		updOrder := r.db.QueryBuilder.
			Update("orders").
			Set("total", order.Total).
			Set("status", order.Status).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": order.ID})

		sql, args, err = updOrder.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})

	if err != nil {
		return nil, err
	}

	return payment, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	payment := domain.Payment{}
	var ref *string

	err := row.Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.UserID,
		&payment.Amount,
		&ref,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if ref != nil {
		payment.GatewayRef = *ref
	}
	return &payment, nil
}

func nullableRef(ref string) *string {
	if ref == "" {
		return nil
	}
	return &ref
}
