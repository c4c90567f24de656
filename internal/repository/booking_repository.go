package repository

import (
	"context"
	"fmt"
	"time"

	"go-tour-booking/internal/model"
	apperrors "go-tour-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	List(ctx context.Context) ([]*model.Booking, error)
	FindByID(ctx context.Context, id int) (*model.Booking, error)
	FindByUserID(ctx context.Context, userID int) ([]*model.Booking, error)
	FindByAvailabilityID(ctx context.Context, availabilityID int) ([]*model.Booking, error)
	CountConfirmedByTourID(ctx context.Context, tourID int) (int, error)
	HasConfirmedByUserAndTour(ctx context.Context, userID int, tourID int) (bool, error)
	SumConfirmedTravelers(ctx context.Context, availabilityID int) (int, error)
	Delete(ctx context.Context, id int) error

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error)
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Booking, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id int, status model.BookingStatus) (*model.Booking, error)
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

const bookingColumns = `id, user_id, tour_id, availability_id, travelers_count, total_price, status, created_at, updated_at, deleted_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var booking model.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.TourID,
		&booking.AvailabilityID,
		&booking.TravelersCount,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error) {
	query := `
		INSERT INTO bookings (
			user_id, tour_id, availability_id, travelers_count, total_price, status
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, tour_id, availability_id, travelers_count, total_price, status, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		booking.UserID, booking.TourID, booking.AvailabilityID,
		booking.TravelersCount, booking.TotalPrice, booking.Status,
	).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.TourID,
		&booking.AvailabilityID,
		&booking.TravelersCount,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

func (r *BookingRepositoryImpl) List(ctx context.Context) ([]*model.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`, bookingColumns)

	return r.queryBookings(ctx, query)
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings
		WHERE id = $1 AND deleted_at IS NULL
	`, bookingColumns)

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return booking, nil
}

func (r *BookingRepositoryImpl) FindByUserID(ctx context.Context, userID int) ([]*model.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`, bookingColumns)

	return r.queryBookings(ctx, query, userID)
}

func (r *BookingRepositoryImpl) FindByAvailabilityID(ctx context.Context, availabilityID int) ([]*model.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings
		WHERE availability_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`, bookingColumns)

	return r.queryBookings(ctx, query, availabilityID)
}

func (r *BookingRepositoryImpl) queryBookings(ctx context.Context, query string, args ...interface{}) ([]*model.Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*model.Booking

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE
	`, bookingColumns)

	booking, err := scanBooking(tx.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return booking, nil
}

func (r *BookingRepositoryImpl) UpdateStatus(
	ctx context.Context,
	tx pgx.Tx,
	id int,
	status model.BookingStatus,
) (*model.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, user_id, tour_id, availability_id, travelers_count, total_price, status, created_at, updated_at
	`

	var booking model.Booking

	err := tx.QueryRow(ctx, query, status, time.Now().UTC(), id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.TourID,
		&booking.AvailabilityID,
		&booking.TravelersCount,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	return &booking, nil
}

func (r *BookingRepositoryImpl) CountConfirmedByTourID(ctx context.Context, tourID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE tour_id = $1
		  AND status = $2
		  AND deleted_at IS NULL
	`

	var count int
	err := r.pool.QueryRow(ctx, query, tourID, model.BookingStatusConfirmed).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *BookingRepositoryImpl) HasConfirmedByUserAndTour(ctx context.Context, userID int, tourID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1
			FROM bookings
			WHERE user_id = $1
			  AND tour_id = $2
			  AND status = $3
			  AND deleted_at IS NULL
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, userID, tourID, model.BookingStatusConfirmed).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *BookingRepositoryImpl) SumConfirmedTravelers(ctx context.Context, availabilityID int) (int, error) {
	query := `
		SELECT COALESCE(SUM(travelers_count), 0)
		FROM bookings
		WHERE availability_id = $1
		  AND status = $2
		  AND deleted_at IS NULL
	`

	var total int
	err := r.pool.QueryRow(ctx, query, availabilityID, model.BookingStatusConfirmed).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		UPDATE bookings
		SET deleted_at = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
	`
	now := time.Now().UTC()
	result, err := r.pool.Exec(ctx, query, now, now, id)
	if err != nil {
		return err
	}

	// check if booking exists and not already deleted
	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}
