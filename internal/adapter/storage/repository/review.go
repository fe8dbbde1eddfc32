package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/velmart/storefront/internal/core/domain"
)

func (r *Repository) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	statement := r.db.QueryBuilder.
		Insert("reviews").
		Columns("user_id", "product_id", "star_rating", "comment").
		Values(review.UserID, review.ProductID, review.StarRating, review.Comment).
		Suffix("returning id, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return review, nil
}

func (r *Repository) GetReview(ctx context.Context, id uint64) (*domain.Review, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "product_id", "star_rating", "comment", "created_at").
		From("reviews").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	review := domain.Review{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&review.ID,
		&review.UserID,
		&review.ProductID,
		&review.StarRating,
		&review.Comment,
		&review.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &review, nil
}

func (r *Repository) ListReviewsByProduct(ctx context.Context, productID uint64) ([]*domain.Review, error) {
	return r.listReviews(ctx, sq.Eq{"product_id": productID})
}

func (r *Repository) ListReviewsByUser(ctx context.Context, userID uint64) ([]*domain.Review, error) {
	return r.listReviews(ctx, sq.Eq{"user_id": userID})
}

func (r *Repository) listReviews(ctx context.Context, where sq.Eq) ([]*domain.Review, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "product_id", "star_rating", "comment", "created_at").
		From("reviews").
		Where(where).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Review, 0)
	for rows.Next() {
		review := domain.Review{}
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.ProductID,
			&review.StarRating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &review)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	statement := r.db.QueryBuilder.
		Update("reviews").
		Set("star_rating", review.StarRating).
		Set("comment", review.Comment).
		Where(sq.Eq{"id": review.ID})

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
	return review, nil
}

func (r *Repository) DeleteReview(ctx context.Context, id uint64) error {
	statement := r.db.QueryBuilder.
		Delete("reviews").
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
