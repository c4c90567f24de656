package repository

import (
	"context"
	"time"

	"go-tour-booking/internal/model"
	apperrors "go-tour-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, availability *model.TourAvailability) (*model.TourAvailability, error)
	FindByID(ctx context.Context, id int) (*model.TourAvailability, error)
	ListByTourID(ctx context.Context, tourID int) ([]*model.TourAvailability, error)
	// ListOpenSlots 查詢尚有名額的出團日期（available_slots > 0），可選日期區間，依 start_date 升冪
	ListOpenSlots(ctx context.Context, tourID int, from, to *time.Time) ([]*model.AvailabilitySlot, error)
	Delete(ctx context.Context, id int) error

	// Transaction methods
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.TourAvailability, error)
	// DecrementSlots 條件式扣減：available_slots >= n 才會扣，零列受影響代表名額不足或紀錄不存在
	DecrementSlots(ctx context.Context, tx pgx.Tx, id int, travelers int) error
	// IncrementSlots 歸還名額，永不超過 total_slots
	IncrementSlots(ctx context.Context, tx pgx.Tx, id int, travelers int) error
}

type AvailabilityRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAvailabilityRepository(pool *pgxpool.Pool) AvailabilityRepository {
	return &AvailabilityRepositoryImpl{
		pool: pool,
	}
}

func (r *AvailabilityRepositoryImpl) Create(ctx context.Context, availability *model.TourAvailability) (*model.TourAvailability, error) {
	query := `
		INSERT INTO tour_availabilities (
			tour_id, start_date, end_date, total_slots, available_slots)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, tour_id, start_date, end_date, total_slots, available_slots,
			created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		availability.TourID, availability.StartDate, availability.EndDate,
		availability.TotalSlots, availability.AvailableSlots,
	).Scan(
		&availability.ID,
		&availability.TourID,
		&availability.StartDate,
		&availability.EndDate,
		&availability.TotalSlots,
		&availability.AvailableSlots,
		&availability.CreatedAt,
		&availability.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return availability, nil
}

func (r *AvailabilityRepositoryImpl) FindByID(ctx context.Context, id int) (*model.TourAvailability, error) {
	query := `
		SELECT id, tour_id, start_date, end_date, total_slots, available_slots,
				created_at, updated_at, deleted_at
		FROM tour_availabilities
		WHERE id = $1 AND deleted_at IS NULL
	`

	var availability model.TourAvailability
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&availability.ID,
		&availability.TourID,
		&availability.StartDate,
		&availability.EndDate,
		&availability.TotalSlots,
		&availability.AvailableSlots,
		&availability.CreatedAt,
		&availability.UpdatedAt,
		&availability.DeletedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAvailabilityNotFound
		}
		return nil, err
	}

	return &availability, nil
}

func (r *AvailabilityRepositoryImpl) ListByTourID(ctx context.Context, tourID int) ([]*model.TourAvailability, error) {
	query := `
		SELECT id, tour_id, start_date, end_date, total_slots, available_slots,
				created_at, updated_at, deleted_at
		FROM tour_availabilities
		WHERE tour_id = $1 AND deleted_at IS NULL
		ORDER BY start_date ASC
	`

	rows, err := r.pool.Query(ctx, query, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	availabilities := make([]*model.TourAvailability, 0)

	for rows.Next() {
		var availability model.TourAvailability
		err := rows.Scan(
			&availability.ID,
			&availability.TourID,
			&availability.StartDate,
			&availability.EndDate,
			&availability.TotalSlots,
			&availability.AvailableSlots,
			&availability.CreatedAt,
			&availability.UpdatedAt,
			&availability.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		availabilities = append(availabilities, &availability)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return availabilities, nil
}

func (r *AvailabilityRepositoryImpl) ListOpenSlots(ctx context.Context, tourID int, from, to *time.Time) ([]*model.AvailabilitySlot, error) {
	query := `
		SELECT a.id, a.start_date, a.end_date, a.available_slots, t.max_group_size
		FROM tour_availabilities a
		JOIN tours t ON t.id = a.tour_id
		WHERE a.tour_id = $1
		  AND a.available_slots > 0
		  AND a.deleted_at IS NULL
		  AND t.deleted_at IS NULL
		  AND ($2::date IS NULL OR a.start_date >= $2)
		  AND ($3::date IS NULL OR a.end_date <= $3)
		ORDER BY a.start_date ASC
	`

	rows, err := r.pool.Query(ctx, query, tourID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]*model.AvailabilitySlot, 0)

	for rows.Next() {
		var slot model.AvailabilitySlot
		err := rows.Scan(
			&slot.AvailabilityID,
			&slot.StartDate,
			&slot.EndDate,
			&slot.AvailableSlots,
			&slot.MaxGroupSize,
		)
		if err != nil {
			return nil, err
		}
		slot.CanBook = slot.AvailableSlots > 0
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *AvailabilityRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.TourAvailability, error) {
	query := `
		SELECT id, tour_id, start_date, end_date, total_slots, available_slots,
				created_at, updated_at, deleted_at
		FROM tour_availabilities
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE
	`

	var availability model.TourAvailability
	err := tx.QueryRow(ctx, query, id).Scan(
		&availability.ID,
		&availability.TourID,
		&availability.StartDate,
		&availability.EndDate,
		&availability.TotalSlots,
		&availability.AvailableSlots,
		&availability.CreatedAt,
		&availability.UpdatedAt,
		&availability.DeletedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAvailabilityNotFound
		}
		return nil, err
	}

	return &availability, nil
}

func (r *AvailabilityRepositoryImpl) DecrementSlots(ctx context.Context, tx pgx.Tx, id int, travelers int) error {
	query := `
		UPDATE tour_availabilities
		SET available_slots = available_slots - $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL AND available_slots >= $1
	`

	result, err := tx.Exec(ctx, query, travelers, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		// 零列受影響：分辨是紀錄不存在還是名額不足
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM tour_availabilities WHERE id = $1 AND deleted_at IS NULL)`,
			id,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrAvailabilityNotFound
		}
		return apperrors.ErrInsufficientSlots
	}

	return nil
}

func (r *AvailabilityRepositoryImpl) IncrementSlots(ctx context.Context, tx pgx.Tx, id int, travelers int) error {
	query := `
		UPDATE tour_availabilities
		SET available_slots = available_slots + $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL AND available_slots + $1 <= total_slots
	`

	result, err := tx.Exec(ctx, query, travelers, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM tour_availabilities WHERE id = $1 AND deleted_at IS NULL)`,
			id,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrAvailabilityNotFound
		}
		return apperrors.ErrInvalidInput
	}

	return nil
}

func (r *AvailabilityRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		UPDATE tour_availabilities
		SET deleted_at = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
	`

	now := time.Now().UTC()
	result, err := r.pool.Exec(ctx, query, now, now, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrAvailabilityNotFound
	}

	return nil
}
