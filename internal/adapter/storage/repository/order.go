package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/velmart/storefront/internal/core/domain"
)

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns("user_id", "shipping_address_id", "billing_address_id", "total", "status").
			Values(order.UserID, order.ShippingAddressID, order.BillingAddressID,
				order.Total, order.Status).
			Suffix("returning id, created_at, updated_at")

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return err
		}

		for _, item := range order.Items {
			item.OrderID = order.ID

			itemSt := r.db.QueryBuilder.
				Insert("order_items").
				Columns("order_id", "product_id", "quantity", "price").
				Values(item.OrderID, item.ProductID, item.Quantity, item.Price).
				Suffix("returning id")

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}

			err = tx.QueryRow(ctx, sql, args...).Scan(&item.ID)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) GetOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "shipping_address_id", "billing_address_id",
			"total", "status", "created_at", "updated_at").
		From("orders").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
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
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	items, err := r.listOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

// listOrderItems loads line items joined with their current product records.
func (r *Repository) listOrderItems(ctx context.Context, orderID uint64) ([]*domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("i.id", "i.order_id", "i.product_id", "i.quantity", "i.price",
			"p.id", "p.name", "p.description", "p.price", "p.quantity",
			"p.in_stock", "p.image_url", "p.created_at", "p.updated_at").
		From("order_items i").
		Join("products p on p.id = i.product_id").
		Where(sq.Eq{"i.order_id": orderID}).
		OrderBy("i.id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{Product: &domain.Product{}}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
			&item.Product.ID,
			&item.Product.Name,
			&item.Product.Description,
			&item.Product.Price,
			&item.Product.Quantity,
			&item.Product.InStock,
			&item.Product.ImageURL,
			&item.Product.CreatedAt,
			&item.Product.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *Repository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return r.listOrders(ctx, nil)
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"user_id": userID})
}

func (r *Repository) listOrders(ctx context.Context, where sq.Eq) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "shipping_address_id", "billing_address_id",
			"total", "status", "created_at", "updated_at").
		From("orders").
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

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
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
			return nil, err
		}
		list = append(list, &order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("total", order.Total).
		Set("status", order.Status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": order.ID}).
		Suffix("returning updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&order.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) DeleteOrder(ctx context.Context, id uint64) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		itemsSt := r.db.QueryBuilder.
			Delete("order_items").
			Where(sq.Eq{"order_id": id})

		sql, args, err := itemsSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		orderSt := r.db.QueryBuilder.
			Delete("orders").
			Where(sq.Eq{"id": id})

		sql, args, err = orderSt.ToSql()
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrDataNotFound
		}
		return nil
	})
}
