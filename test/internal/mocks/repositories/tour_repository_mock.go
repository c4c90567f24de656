package repositories

import (
	"context"
	"go-tour-booking/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type TourRepositoryMock struct {
	mock.Mock
}

func NewTourRepositoryMock() *TourRepositoryMock {
	return &TourRepositoryMock{}
}

func (m *TourRepositoryMock) Create(ctx context.Context, tour *model.Tour) (*model.Tour, error) {
	args := m.Called(ctx, tour)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tour), args.Error(1)
}

func (m *TourRepositoryMock) List(ctx context.Context) ([]*model.Tour, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Tour), args.Error(1)
}

func (m *TourRepositoryMock) FindByID(ctx context.Context, id int) (*model.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tour), args.Error(1)
}

func (m *TourRepositoryMock) FindByTourID(ctx context.Context, tourID uuid.UUID) (*model.Tour, error) {
	args := m.Called(ctx, tourID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tour), args.Error(1)
}

func (m *TourRepositoryMock) Update(ctx context.Context, id int, params model.UpdateTourParams) (*model.Tour, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tour), args.Error(1)
}

func (m *TourRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TourRepositoryMock) ListItinerary(ctx context.Context, tourID int) ([]model.ItineraryItem, error) {
	args := m.Called(ctx, tourID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ItineraryItem), args.Error(1)
}
