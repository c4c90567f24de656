package repositories

import (
	"context"
	"go-tour-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type PaymentRepositoryMock struct {
	mock.Mock
}

func NewPaymentRepositoryMock() *PaymentRepositoryMock {
	return &PaymentRepositoryMock{}
}

func (m *PaymentRepositoryMock) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *PaymentRepositoryMock) FindByBookingID(ctx context.Context, bookingID int) (*model.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *PaymentRepositoryMock) UpdateStatus(ctx context.Context, id int, status model.PaymentStatus) (*model.Payment, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}
