package repository

import (
	"context"

	"go-tour-booking/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	ListByTourID(ctx context.Context, tourID int) ([]*model.Review, error)
}

type ReviewRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &ReviewRepositoryImpl{
		pool: pool,
	}
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	query := `
		INSERT INTO reviews (user_id, tour_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, tour_id, rating, comment, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		review.UserID, review.TourID, review.Rating, review.Comment,
	).Scan(
		&review.ID,
		&review.UserID,
		&review.TourID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return review, nil
}

func (r *ReviewRepositoryImpl) ListByTourID(ctx context.Context, tourID int) ([]*model.Review, error) {
	query := `
		SELECT id, user_id, tour_id, rating, comment, created_at, updated_at
		FROM reviews
		WHERE tour_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]*model.Review, 0)

	for rows.Next() {
		var review model.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.TourID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
