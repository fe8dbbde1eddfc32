package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/velmart/storefront/internal/core/domain"
)

func (r *Repository) GetDiscountCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	statement := r.db.QueryBuilder.
		Select("code", "type", "value", "active").
		From("discount_codes").
		Where(sq.Eq{"code": code})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	discount := domain.DiscountCode{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&discount.Code,
		&discount.Type,
		&discount.Value,
		&discount.Active,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &discount, nil
}
