package services

import (
	"context"

	"go-tour-booking/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type TourServiceMock struct {
	mock.Mock
}

func NewTourServiceMock() *TourServiceMock {
	return &TourServiceMock{}
}

func (m *TourServiceMock) List(ctx context.Context) ([]*model.Tour, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Tour), args.Error(1)
}

func (m *TourServiceMock) GetByID(ctx context.Context, id int) (*model.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tour), args.Error(1)
}

func (m *TourServiceMock) GetByTourID(ctx context.Context, tourID uuid.UUID) (*model.Tour, error) {
	args := m.Called(ctx, tourID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tour), args.Error(1)
}

func (m *TourServiceMock) Create(ctx context.Context, principal model.Principal, tour *model.Tour) (*model.Tour, error) {
	args := m.Called(ctx, principal, tour)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tour), args.Error(1)
}

func (m *TourServiceMock) Update(ctx context.Context, principal model.Principal, id int, params model.UpdateTourParams) (*model.Tour, error) {
	args := m.Called(ctx, principal, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tour), args.Error(1)
}

func (m *TourServiceMock) Delete(ctx context.Context, principal model.Principal, id int) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}

func (m *TourServiceMock) OpenForBooking(ctx context.Context, principal model.Principal, id int) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}
