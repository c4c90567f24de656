package service

import (
	"context"
	"math"

	"go-tour-booking/internal/model"
	"go-tour-booking/internal/repository"
	"go-tour-booking/internal/rules"
	apperrors "go-tour-booking/pkg/app_errors"
)

// CreatePaymentRequest 發起付款請求
type CreatePaymentRequest struct {
	BookingID int                   `json:"booking_id" binding:"required"`
	Amount    float64               `json:"amount" binding:"required"`
	Currency  string                `json:"currency" binding:"required"`
	Method    model.PaymentMethod   `json:"method" binding:"required"`
	Provider  model.PaymentProvider `json:"provider" binding:"required"`
	Reference string                `json:"reference"`
}

// PaymentService 付款紀錄與結果處理。金流本身由外部支付服務處理，
// 這裡只驗證、落盤，並把 success 結果轉成預訂確認。
type PaymentService interface {
	Create(ctx context.Context, req CreatePaymentRequest) (*model.Payment, error)
	GetByBookingID(ctx context.Context, bookingID int) (*model.Payment, error)
	// HandleResult 消費外部回報：success 觸發預訂確認，failed 不改變預訂狀態
	HandleResult(ctx context.Context, req model.PaymentResultRequest) (*model.Payment, error)
}

type PaymentServiceImpl struct {
	repo           repository.PaymentRepository
	bookingRepo    repository.BookingRepository
	bookingService BookingService
}

func NewPaymentService(
	repo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	bookingService BookingService,
) PaymentService {
	return &PaymentServiceImpl{
		repo:           repo,
		bookingRepo:    bookingRepo,
		bookingService: bookingService,
	}
}

func (s *PaymentServiceImpl) Create(ctx context.Context, req CreatePaymentRequest) (*model.Payment, error) {
	if err := rules.ValidatePayment(req.Amount, req.Currency, req.Method, req.Provider); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	// 付款金額必須對上預訂總價
	if math.Abs(req.Amount-booking.TotalPrice) > rules.PriceTolerance {
		return nil, apperrors.NewValidationError("amount", "does not match booking total price")
	}

	payment := &model.Payment{
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Provider:  req.Provider,
		Status:    model.PaymentStatusPending,
		Reference: req.Reference,
	}

	return s.repo.Create(ctx, payment)
}

func (s *PaymentServiceImpl) GetByBookingID(ctx context.Context, bookingID int) (*model.Payment, error) {
	return s.repo.FindByBookingID(ctx, bookingID)
}

func (s *PaymentServiceImpl) HandleResult(ctx context.Context, req model.PaymentResultRequest) (*model.Payment, error) {
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	payment, err := s.repo.FindByBookingID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, payment.ID, req.Status)
	if err != nil {
		return nil, err
	}

	if req.Status == model.PaymentStatusSuccess {
		if _, err := s.bookingService.HandlePaymentResult(ctx, req.BookingID, req.Status); err != nil {
			return nil, err
		}
	}
	// failed：預訂停留在 pending，等待重試或取消

	return updated, nil
}
