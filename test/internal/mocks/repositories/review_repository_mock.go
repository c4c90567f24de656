package repositories

import (
	"context"
	"go-tour-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type ReviewRepositoryMock struct {
	mock.Mock
}

func NewReviewRepositoryMock() *ReviewRepositoryMock {
	return &ReviewRepositoryMock{}
}

func (m *ReviewRepositoryMock) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *ReviewRepositoryMock) ListByTourID(ctx context.Context, tourID int) ([]*model.Review, error) {
	args := m.Called(ctx, tourID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Review), args.Error(1)
}
