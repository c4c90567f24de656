package services

import (
	"context"
	"time"

	"go-tour-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type AvailabilityServiceMock struct {
	mock.Mock
}

func NewAvailabilityServiceMock() *AvailabilityServiceMock {
	return &AvailabilityServiceMock{}
}

func (m *AvailabilityServiceMock) CheckAvailability(ctx context.Context, tourID int, from, to *time.Time) ([]*model.AvailabilitySlot, error) {
	args := m.Called(ctx, tourID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AvailabilitySlot), args.Error(1)
}

func (m *AvailabilityServiceMock) CanAccommodate(ctx context.Context, availabilityID int, travelers int) (bool, error) {
	args := m.Called(ctx, availabilityID, travelers)
	return args.Bool(0), args.Error(1)
}

func (m *AvailabilityServiceMock) GetByID(ctx context.Context, availabilityID int) (*model.TourAvailability, error) {
	args := m.Called(ctx, availabilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TourAvailability), args.Error(1)
}

func (m *AvailabilityServiceMock) ListByTourID(ctx context.Context, tourID int) ([]*model.TourAvailability, error) {
	args := m.Called(ctx, tourID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TourAvailability), args.Error(1)
}

func (m *AvailabilityServiceMock) Create(ctx context.Context, principal model.Principal, availability *model.TourAvailability) (*model.TourAvailability, error) {
	args := m.Called(ctx, principal, availability)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TourAvailability), args.Error(1)
}

func (m *AvailabilityServiceMock) Delete(ctx context.Context, principal model.Principal, availabilityID int) error {
	args := m.Called(ctx, principal, availabilityID)
	return args.Error(0)
}

func (m *AvailabilityServiceMock) ReserveSlots(ctx context.Context, tx pgx.Tx, availabilityID int, travelers int) error {
	args := m.Called(ctx, tx, availabilityID, travelers)
	return args.Error(0)
}

func (m *AvailabilityServiceMock) ReleaseSlots(ctx context.Context, tx pgx.Tx, availabilityID int, travelers int) error {
	args := m.Called(ctx, tx, availabilityID, travelers)
	return args.Error(0)
}

func (m *AvailabilityServiceMock) InvalidateCache(ctx context.Context, availabilityID int) {
	m.Called(ctx, availabilityID)
}
