package repositories

import (
	"context"
	"time"

	"go-tour-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type AvailabilityRepositoryMock struct {
	mock.Mock
}

func NewAvailabilityRepositoryMock() *AvailabilityRepositoryMock {
	return &AvailabilityRepositoryMock{}
}

func (m *AvailabilityRepositoryMock) Create(ctx context.Context, availability *model.TourAvailability) (*model.TourAvailability, error) {
	args := m.Called(ctx, availability)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TourAvailability), args.Error(1)
}

func (m *AvailabilityRepositoryMock) FindByID(ctx context.Context, id int) (*model.TourAvailability, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TourAvailability), args.Error(1)
}

func (m *AvailabilityRepositoryMock) ListByTourID(ctx context.Context, tourID int) ([]*model.TourAvailability, error) {
	args := m.Called(ctx, tourID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TourAvailability), args.Error(1)
}

func (m *AvailabilityRepositoryMock) ListOpenSlots(ctx context.Context, tourID int, from, to *time.Time) ([]*model.AvailabilitySlot, error) {
	args := m.Called(ctx, tourID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AvailabilitySlot), args.Error(1)
}

func (m *AvailabilityRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AvailabilityRepositoryMock) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.TourAvailability, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TourAvailability), args.Error(1)
}

func (m *AvailabilityRepositoryMock) DecrementSlots(ctx context.Context, tx pgx.Tx, id int, travelers int) error {
	args := m.Called(ctx, tx, id, travelers)
	return args.Error(0)
}

func (m *AvailabilityRepositoryMock) IncrementSlots(ctx context.Context, tx pgx.Tx, id int, travelers int) error {
	args := m.Called(ctx, tx, id, travelers)
	return args.Error(0)
}
