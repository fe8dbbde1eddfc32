package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/velmart/storefront/internal/core/domain"
)

func (r *Repository) CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	statement := r.db.QueryBuilder.
		Insert("addresses").
		Columns("user_id", "label", "address1", "address2", "city", "state", "zipcode", "country").
		Values(address.UserID, address.Label, address.Address1, address.Address2,
			address.City, address.State, address.Zipcode, address.Country).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&address.ID)
	if err != nil {
		return nil, err
	}
	return address, nil
}

func (r *Repository) GetAddress(ctx context.Context, id uint64) (*domain.Address, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "label", "address1", "address2", "city", "state", "zipcode", "country").
		From("addresses").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	address := domain.Address{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&address.ID,
		&address.UserID,
		&address.Label,
		&address.Address1,
		&address.Address2,
		&address.City,
		&address.State,
		&address.Zipcode,
		&address.Country,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &address, nil
}

func (r *Repository) ListAddressesByUser(ctx context.Context, userID uint64) ([]*domain.Address, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "label", "address1", "address2", "city", "state", "zipcode", "country").
		From("addresses").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Address, 0)
	for rows.Next() {
		address := domain.Address{}
		err := rows.Scan(
			&address.ID,
			&address.UserID,
			&address.Label,
			&address.Address1,
			&address.Address2,
			&address.City,
			&address.State,
			&address.Zipcode,
			&address.Country,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &address)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	statement := r.db.QueryBuilder.
		Update("addresses").
		Set("label", address.Label).
		Set("address1", address.Address1).
		Set("address2", address.Address2).
		Set("city", address.City).
		Set("state", address.State).
		Set("zipcode", address.Zipcode).
		Set("country", address.Country).
		Where(sq.Eq{"id": address.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}
	return address, nil
}

func (r *Repository) DeleteAddress(ctx context.Context, id uint64) error {
	statement := r.db.QueryBuilder.
		Delete("addresses").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}
