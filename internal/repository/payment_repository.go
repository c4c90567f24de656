package repository

import (
	"context"
	"time"

	"go-tour-booking/internal/model"
	apperrors "go-tour-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	FindByBookingID(ctx context.Context, bookingID int) (*model.Payment, error)
	UpdateStatus(ctx context.Context, id int, status model.PaymentStatus) (*model.Payment, error)
}

type PaymentRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &PaymentRepositoryImpl{
		pool: pool,
	}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	query := `
		INSERT INTO payments (
			booking_id, amount, currency, method, provider, status, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, booking_id, amount, currency, method, provider, status, reference,
			created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		payment.BookingID, payment.Amount, payment.Currency,
		payment.Method, payment.Provider, payment.Status, payment.Reference,
	).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Currency,
		&payment.Method,
		&payment.Provider,
		&payment.Status,
		&payment.Reference,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return payment, nil
}

func (r *PaymentRepositoryImpl) FindByBookingID(ctx context.Context, bookingID int) (*model.Payment, error) {
	query := `
		SELECT id, booking_id, amount, currency, method, provider, status, reference,
				created_at, updated_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var payment model.Payment
	err := r.pool.QueryRow(ctx, query, bookingID).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Currency,
		&payment.Method,
		&payment.Provider,
		&payment.Status,
		&payment.Reference,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	return &payment, nil
}

func (r *PaymentRepositoryImpl) UpdateStatus(ctx context.Context, id int, status model.PaymentStatus) (*model.Payment, error) {
	query := `
		UPDATE payments
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, booking_id, amount, currency, method, provider, status, reference,
			created_at, updated_at
	`

	var payment model.Payment
	err := r.pool.QueryRow(ctx, query, status, time.Now().UTC(), id).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Currency,
		&payment.Method,
		&payment.Provider,
		&payment.Status,
		&payment.Reference,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	return &payment, nil
}
