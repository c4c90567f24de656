package services

import (
	"context"

	"go-tour-booking/internal/model"
	"go-tour-booking/internal/service"

	"github.com/stretchr/testify/mock"
)

type PaymentServiceMock struct {
	mock.Mock
}

func NewPaymentServiceMock() *PaymentServiceMock {
	return &PaymentServiceMock{}
}

func (m *PaymentServiceMock) Create(ctx context.Context, req service.CreatePaymentRequest) (*model.Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *PaymentServiceMock) GetByBookingID(ctx context.Context, bookingID int) (*model.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *PaymentServiceMock) HandleResult(ctx context.Context, req model.PaymentResultRequest) (*model.Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}
