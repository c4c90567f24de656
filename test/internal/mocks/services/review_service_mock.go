package services

import (
	"context"

	"go-tour-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type ReviewServiceMock struct {
	mock.Mock
}

func NewReviewServiceMock() *ReviewServiceMock {
	return &ReviewServiceMock{}
}

func (m *ReviewServiceMock) Create(ctx context.Context, principal model.Principal, req model.CreateReviewRequest) (*model.Review, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *ReviewServiceMock) ListByTourID(ctx context.Context, tourID int) ([]*model.Review, error) {
	args := m.Called(ctx, tourID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Review), args.Error(1)
}
