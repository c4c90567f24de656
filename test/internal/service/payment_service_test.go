package service

import (
	"context"
	"testing"

	"go-tour-booking/internal/model"
	"go-tour-booking/internal/service"
	apperrors "go-tour-booking/pkg/app_errors"
	repoMocks "go-tour-booking/test/internal/mocks/repositories"
	serviceMocks "go-tour-booking/test/internal/mocks/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupPaymentMocks() (*repoMocks.PaymentRepositoryMock, *repoMocks.BookingRepositoryMock, *serviceMocks.BookingServiceMock) {
	return repoMocks.NewPaymentRepositoryMock(),
		repoMocks.NewBookingRepositoryMock(),
		serviceMocks.NewBookingServiceMock()
}

func TestPaymentService_Create(t *testing.T) {
	ctx := context.Background()

	validRequest := func() service.CreatePaymentRequest {
		return service.CreatePaymentRequest{
			BookingID: 1,
			Amount:    300.0,
			Currency:  "USD",
			Method:    model.PaymentMethodCard,
			Provider:  model.PaymentProviderStripe,
			Reference: "ref-001",
		}
	}

	t.Run("Success", func(t *testing.T) {
		paymentRepo, bookingRepo, bookingService := setupPaymentMocks()
		paymentService := service.NewPaymentService(paymentRepo, bookingRepo, bookingService)

		bookingRepo.On("FindByID", ctx, 1).Return(&model.Booking{ID: 1, TotalPrice: 300.0, Status: model.BookingStatusPending}, nil).Once()
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*model.Payment")).Return(&model.Payment{
			ID: 1, BookingID: 1, Amount: 300.0, Status: model.PaymentStatusPending,
		}, nil).Once()

		payment, err := paymentService.Create(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusPending, payment.Status)
		paymentRepo.AssertExpectations(t)
	})

	// 容差 0.01 內視為相符
	t.Run("Success - AmountWithinTolerance", func(t *testing.T) {
		paymentRepo, bookingRepo, bookingService := setupPaymentMocks()
		paymentService := service.NewPaymentService(paymentRepo, bookingRepo, bookingService)

		bookingRepo.On("FindByID", ctx, 1).Return(&model.Booking{ID: 1, TotalPrice: 300.005, Status: model.BookingStatusPending}, nil).Once()
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*model.Payment")).Return(&model.Payment{ID: 1, BookingID: 1}, nil).Once()

		_, err := paymentService.Create(ctx, validRequest())

		require.NoError(t, err)
	})

	t.Run("Failed - AmountMismatch", func(t *testing.T) {
		paymentRepo, bookingRepo, bookingService := setupPaymentMocks()
		paymentService := service.NewPaymentService(paymentRepo, bookingRepo, bookingService)

		bookingRepo.On("FindByID", ctx, 1).Return(&model.Booking{ID: 1, TotalPrice: 250.0, Status: model.BookingStatusPending}, nil).Once()

		_, err := paymentService.Create(ctx, validRequest())

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		paymentRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - BookingNotFound", func(t *testing.T) {
		paymentRepo, bookingRepo, bookingService := setupPaymentMocks()
		paymentService := service.NewPaymentService(paymentRepo, bookingRepo, bookingService)

		bookingRepo.On("FindByID", ctx, 1).Return(nil, apperrors.ErrBookingNotFound).Once()

		_, err := paymentService.Create(ctx, validRequest())

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
	})

	// stripe 不支援 mobile_money，規則層擋下
	t.Run("Failed - UnsupportedMethodForProvider", func(t *testing.T) {
		paymentRepo, bookingRepo, bookingService := setupPaymentMocks()
		paymentService := service.NewPaymentService(paymentRepo, bookingRepo, bookingService)

		req := validRequest()
		req.Method = model.PaymentMethodMobileMoney

		_, err := paymentService.Create(ctx, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		bookingRepo.AssertNotCalled(t, "FindByID")
	})
}

func TestPaymentService_HandleResult(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - ConfirmsBooking", func(t *testing.T) {
		paymentRepo, bookingRepo, bookingService := setupPaymentMocks()
		paymentService := service.NewPaymentService(paymentRepo, bookingRepo, bookingService)

		paymentRepo.On("FindByBookingID", ctx, 1).Return(&model.Payment{ID: 5, BookingID: 1, Status: model.PaymentStatusPending}, nil).Once()
		paymentRepo.On("UpdateStatus", ctx, 5, model.PaymentStatusSuccess).Return(&model.Payment{ID: 5, BookingID: 1, Status: model.PaymentStatusSuccess}, nil).Once()
		bookingService.On("HandlePaymentResult", ctx, 1, model.PaymentStatusSuccess).Return(&model.Booking{ID: 1, Status: model.BookingStatusConfirmed}, nil).Once()

		payment, err := paymentService.HandleResult(ctx, model.PaymentResultRequest{BookingID: 1, Status: model.PaymentStatusSuccess})

		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusSuccess, payment.Status)
		bookingService.AssertExpectations(t)
	})

	// failed 只更新付款紀錄，預訂停留在 pending
	t.Run("Failed Result - BookingUntouched", func(t *testing.T) {
		paymentRepo, bookingRepo, bookingService := setupPaymentMocks()
		paymentService := service.NewPaymentService(paymentRepo, bookingRepo, bookingService)

		paymentRepo.On("FindByBookingID", ctx, 1).Return(&model.Payment{ID: 5, BookingID: 1, Status: model.PaymentStatusPending}, nil).Once()
		paymentRepo.On("UpdateStatus", ctx, 5, model.PaymentStatusFailed).Return(&model.Payment{ID: 5, BookingID: 1, Status: model.PaymentStatusFailed}, nil).Once()

		payment, err := paymentService.HandleResult(ctx, model.PaymentResultRequest{BookingID: 1, Status: model.PaymentStatusFailed})

		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusFailed, payment.Status)
		bookingService.AssertNotCalled(t, "HandlePaymentResult")
		_ = bookingRepo
	})

	t.Run("Failed - UnknownStatus", func(t *testing.T) {
		paymentRepo, bookingRepo, bookingService := setupPaymentMocks()
		paymentService := service.NewPaymentService(paymentRepo, bookingRepo, bookingService)

		_, err := paymentService.HandleResult(ctx, model.PaymentResultRequest{BookingID: 1, Status: "refunded"})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		paymentRepo.AssertNotCalled(t, "FindByBookingID")
		_ = bookingRepo
		_ = bookingService
	})

	t.Run("Failed - PaymentNotFound", func(t *testing.T) {
		paymentRepo, bookingRepo, bookingService := setupPaymentMocks()
		paymentService := service.NewPaymentService(paymentRepo, bookingRepo, bookingService)

		paymentRepo.On("FindByBookingID", ctx, 99).Return(nil, apperrors.ErrPaymentNotFound).Once()

		_, err := paymentService.HandleResult(ctx, model.PaymentResultRequest{BookingID: 99, Status: model.PaymentStatusSuccess})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrPaymentNotFound)
		_ = bookingRepo
		_ = bookingService
	})
}
