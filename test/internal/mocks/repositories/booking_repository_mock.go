package repositories

import (
	"context"
	"go-tour-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type BookingRepositoryMock struct {
	mock.Mock
}

func NewBookingRepositoryMock() *BookingRepositoryMock {
	return &BookingRepositoryMock{}
}

func (m *BookingRepositoryMock) List(ctx context.Context) ([]*model.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) FindByID(ctx context.Context, id int) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) FindByUserID(ctx context.Context, userID int) ([]*model.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) FindByAvailabilityID(ctx context.Context, availabilityID int) ([]*model.Booking, error) {
	args := m.Called(ctx, availabilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) CountConfirmedByTourID(ctx context.Context, tourID int) (int, error) {
	args := m.Called(ctx, tourID)
	return args.Int(0), args.Error(1)
}

func (m *BookingRepositoryMock) HasConfirmedByUserAndTour(ctx context.Context, userID int, tourID int) (bool, error) {
	args := m.Called(ctx, userID, tourID)
	return args.Bool(0), args.Error(1)
}

func (m *BookingRepositoryMock) SumConfirmedTravelers(ctx context.Context, availabilityID int) (int, error) {
	args := m.Called(ctx, availabilityID)
	return args.Int(0), args.Error(1)
}

func (m *BookingRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BookingRepositoryMock) Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error) {
	args := m.Called(ctx, tx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Booking, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) UpdateStatus(ctx context.Context, tx pgx.Tx, id int, status model.BookingStatus) (*model.Booking, error) {
	args := m.Called(ctx, tx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}
