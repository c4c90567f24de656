package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-tour-booking/internal/model"
	apperrors "go-tour-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TourRepository interface {
	Create(ctx context.Context, tour *model.Tour) (*model.Tour, error)
	List(ctx context.Context) ([]*model.Tour, error)
	FindByID(ctx context.Context, id int) (*model.Tour, error)
	FindByTourID(ctx context.Context, tourID uuid.UUID) (*model.Tour, error)
	Update(ctx context.Context, id int, params model.UpdateTourParams) (*model.Tour, error)
	Delete(ctx context.Context, id int) error
	ListItinerary(ctx context.Context, tourID int) ([]model.ItineraryItem, error)
}

type TourRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTourRepository(pool *pgxpool.Pool) TourRepository {
	return &TourRepositoryImpl{
		pool: pool,
	}
}

func (r *TourRepositoryImpl) Create(ctx context.Context, tour *model.Tour) (*model.Tour, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO tours (
			tour_id, owner_id, title, description, price_per_person,
			max_group_size, duration_days, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, tour_id, owner_id, title, description, price_per_person,
			max_group_size, duration_days, status, created_at, updated_at
	`

	err = tx.QueryRow(ctx, query,
		tour.TourID, tour.OwnerID, tour.Title, tour.Description, tour.PricePerPerson,
		tour.MaxGroupSize, tour.DurationDays, tour.Status,
	).Scan(
		&tour.ID,
		&tour.TourID,
		&tour.OwnerID,
		&tour.Title,
		&tour.Description,
		&tour.PricePerPerson,
		&tour.MaxGroupSize,
		&tour.DurationDays,
		&tour.Status,
		&tour.CreatedAt,
		&tour.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}

	// 行程表與行程同一個事務寫入
	for i := range tour.Itinerary {
		item := &tour.Itinerary[i]
		item.TourID = tour.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO itinerary_items (tour_id, day, title, activity)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, item.TourID, item.Day, item.Title, item.Activity).Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create itinerary item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return tour, nil
}

func (r *TourRepositoryImpl) List(ctx context.Context) ([]*model.Tour, error) {
	query := `
		SELECT id, tour_id, owner_id, title, description, price_per_person,
				max_group_size, duration_days, status,
				created_at, updated_at, deleted_at
		FROM tours
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tours := make([]*model.Tour, 0)

	for rows.Next() {
		var tour model.Tour
		err := rows.Scan(
			&tour.ID,
			&tour.TourID,
			&tour.OwnerID,
			&tour.Title,
			&tour.Description,
			&tour.PricePerPerson,
			&tour.MaxGroupSize,
			&tour.DurationDays,
			&tour.Status,
			&tour.CreatedAt,
			&tour.UpdatedAt,
			&tour.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		tours = append(tours, &tour)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tours, nil
}

func (r *TourRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Tour, error) {
	query := `
		SELECT id, tour_id, owner_id, title, description, price_per_person,
				max_group_size, duration_days, status,
				created_at, updated_at, deleted_at
		FROM tours
		WHERE id = $1 AND deleted_at IS NULL
	`

	var tour model.Tour
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&tour.ID,
		&tour.TourID,
		&tour.OwnerID,
		&tour.Title,
		&tour.Description,
		&tour.PricePerPerson,
		&tour.MaxGroupSize,
		&tour.DurationDays,
		&tour.Status,
		&tour.CreatedAt,
		&tour.UpdatedAt,
		&tour.DeletedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTourNotFound
		}
		return nil, err
	}

	return &tour, nil
}

func (r *TourRepositoryImpl) FindByTourID(ctx context.Context, tourID uuid.UUID) (*model.Tour, error) {
	query := `
		SELECT id, tour_id, owner_id, title, description, price_per_person,
				max_group_size, duration_days, status,
				created_at, updated_at, deleted_at
		FROM tours
		WHERE tour_id = $1 AND deleted_at IS NULL
	`

	var tour model.Tour
	err := r.pool.QueryRow(ctx, query, tourID).Scan(
		&tour.ID,
		&tour.TourID,
		&tour.OwnerID,
		&tour.Title,
		&tour.Description,
		&tour.PricePerPerson,
		&tour.MaxGroupSize,
		&tour.DurationDays,
		&tour.Status,
		&tour.CreatedAt,
		&tour.UpdatedAt,
		&tour.DeletedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTourNotFound
		}
		return nil, err
	}

	return &tour, nil
}

func (r *TourRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateTourParams) (*model.Tour, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argPos))
		args = append(args, *params.Title)
		argPos++
	}
	if params.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *params.Description)
		argPos++
	}
	if params.PricePerPerson != nil {
		sets = append(sets, fmt.Sprintf("price_per_person = $%d", argPos))
		args = append(args, *params.PricePerPerson)
		argPos++
	}
	if params.MaxGroupSize != nil {
		sets = append(sets, fmt.Sprintf("max_group_size = $%d", argPos))
		args = append(args, *params.MaxGroupSize)
		argPos++
	}
	if params.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *params.Status)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE tours
		SET %s
		WHERE id = $%d AND deleted_at IS NULL
		RETURNING id, tour_id, owner_id, title, description, price_per_person,
			max_group_size, duration_days, status, created_at, updated_at
	`, strings.Join(sets, ", "), argPos)

	var tour model.Tour

	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&tour.ID,
		&tour.TourID,
		&tour.OwnerID,
		&tour.Title,
		&tour.Description,
		&tour.PricePerPerson,
		&tour.MaxGroupSize,
		&tour.DurationDays,
		&tour.Status,
		&tour.CreatedAt,
		&tour.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTourNotFound
		}
		return nil, err
	}

	return &tour, nil
}

func (r *TourRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		UPDATE tours
		SET deleted_at = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
	`

	now := time.Now().UTC()
	result, err := r.pool.Exec(ctx, query, now, now, id)
	if err != nil {
		return err
	}

	// check if tour exists and not already deleted
	if result.RowsAffected() == 0 {
		return apperrors.ErrTourNotFound
	}

	return nil
}

func (r *TourRepositoryImpl) ListItinerary(ctx context.Context, tourID int) ([]model.ItineraryItem, error) {
	query := `
		SELECT id, tour_id, day, title, activity
		FROM itinerary_items
		WHERE tour_id = $1
		ORDER BY day ASC
	`

	rows, err := r.pool.Query(ctx, query, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ItineraryItem, 0)

	for rows.Next() {
		var item model.ItineraryItem
		err := rows.Scan(&item.ID, &item.TourID, &item.Day, &item.Title, &item.Activity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
