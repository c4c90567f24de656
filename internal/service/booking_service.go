package service

import (
	"context"
	"time"

	"go-tour-booking/internal/model"
	"go-tour-booking/internal/repository"
	"go-tour-booking/internal/rules"
	apperrors "go-tour-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingService 預訂生命週期管理：創建與狀態轉換，
// 並保證預訂紀錄與名額帳本在同一事務內一起變動。
type BookingService interface {
	Create(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
	GetByID(ctx context.Context, id int) (*model.Booking, error)
	ListByUserID(ctx context.Context, userID int) ([]*model.Booking, error)
	// Confirm 付款成功後確認預訂：扣減名額 + 狀態改 confirmed，同一事務
	Confirm(ctx context.Context, id int) (*model.Booking, error)
	// Cancel 取消預訂：已確認的才歸還名額，重複取消會失敗
	Cancel(ctx context.Context, id int) (*model.Booking, error)
	// UpdateStatus 依目標狀態分派到 Confirm / Cancel / 單純欄位更新
	UpdateStatus(ctx context.Context, id int, target model.BookingStatus) (*model.Booking, error)
	// HandlePaymentResult 消費外部支付結果：success 觸發確認，failed 不改變預訂狀態
	HandlePaymentResult(ctx context.Context, bookingID int, status model.PaymentStatus) (*model.Booking, error)
	Delete(ctx context.Context, id int) error
}

type BookingServiceImpl struct {
	pool           *pgxpool.Pool
	repository     repository.BookingRepository
	tourRepository repository.TourRepository
	ledger         AvailabilityService
}

func NewBookingService(
	pool *pgxpool.Pool,
	bookingRepository repository.BookingRepository,
	tourRepository repository.TourRepository,
	ledger AvailabilityService,
) BookingService {
	return &BookingServiceImpl{
		pool:           pool,
		repository:     bookingRepository,
		tourRepository: tourRepository,
		ledger:         ledger,
	}
}

// Create 創建 pending 預訂。此時不扣名額：未付款的預訂不佔用真實庫存，
// 名額在 Confirm 時才扣減。
func (s *BookingServiceImpl) Create(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error) {
	tour, err := s.tourRepository.FindByID(ctx, req.TourID)
	if err != nil {
		return nil, err
	}

	availability, err := s.ledger.GetByID(ctx, req.AvailabilityID)
	if err != nil {
		return nil, err
	}

	if err := rules.ValidateBookingAvailability(tour, availability, req.TravelersCount, time.Now()); err != nil {
		return nil, err
	}

	// 1. 問帳本容不容得下（快取快路徑）
	ok, err := s.ledger.CanAccommodate(ctx, req.AvailabilityID, req.TravelersCount)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrInsufficientSlots
	}

	// 2. 總價一律由行程單價推算，不信任呼叫端
	totalPrice := rules.ExpectedTotalPrice(tour, req.TravelersCount)

	booking := &model.Booking{
		UserID:         req.UserID,
		TourID:         req.TourID,
		AvailabilityID: req.AvailabilityID,
		TravelersCount: req.TravelersCount,
		TotalPrice:     totalPrice,
		Status:         model.BookingStatusPending,
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	created, err := s.repository.Create(ctx, tx, booking)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *BookingServiceImpl) List(ctx context.Context) ([]*model.Booking, error) {
	return s.repository.List(ctx)
}

func (s *BookingServiceImpl) GetByID(ctx context.Context, id int) (*model.Booking, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *BookingServiceImpl) ListByUserID(ctx context.Context, userID int) ([]*model.Booking, error) {
	return s.repository.FindByUserID(ctx, userID)
}

// Confirm 只接受 pending 預訂。扣減名額與狀態更新在同一事務，
// 名額不足時整筆回滾，預訂停留在 pending。
func (s *BookingServiceImpl) Confirm(ctx context.Context, id int) (*model.Booking, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	booking, err := s.repository.FindByIDWithLock(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status == model.BookingStatusCancelled {
		return nil, apperrors.ErrBookingAlreadyCancelled
	}
	if !booking.Status.CanTransitionTo(model.BookingStatusConfirmed) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	// 創建到確認之間名額可能已被搶走，這裡的條件式扣減就是最終檢查
	err = s.ledger.ReserveSlots(ctx, tx, booking.AvailabilityID, booking.TravelersCount)
	if err != nil {
		return nil, err
	}

	confirmed, err := s.repository.UpdateStatus(ctx, tx, id, model.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.ledger.InvalidateCache(ctx, booking.AvailabilityID)

	return confirmed, nil
}

// Cancel 接受 pending 或 confirmed 預訂。已確認的先歸還名額再改狀態，
// pending 沒扣過名額所以不動帳本。重複取消會失敗且不會再次歸還名額。
func (s *BookingServiceImpl) Cancel(ctx context.Context, id int) (*model.Booking, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	booking, err := s.repository.FindByIDWithLock(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status == model.BookingStatusCancelled {
		return nil, apperrors.ErrBookingAlreadyCancelled
	}
	if !booking.Status.CanTransitionTo(model.BookingStatusCancelled) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	wasConfirmed := booking.Status == model.BookingStatusConfirmed
	if wasConfirmed {
		err = s.ledger.ReleaseSlots(ctx, tx, booking.AvailabilityID, booking.TravelersCount)
		if err != nil {
			return nil, err
		}
	}

	cancelled, err := s.repository.UpdateStatus(ctx, tx, id, model.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if wasConfirmed {
		s.ledger.InvalidateCache(ctx, booking.AvailabilityID)
	}

	return cancelled, nil
}

func (s *BookingServiceImpl) UpdateStatus(ctx context.Context, id int, target model.BookingStatus) (*model.Booking, error) {
	if !target.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	switch target {
	case model.BookingStatusConfirmed:
		return s.Confirm(ctx, id)
	case model.BookingStatusCancelled:
		return s.Cancel(ctx, id)
	default:
		// 其他目標不動帳本。confirmed -> pending 會讓已扣的名額失去對應，直接拒絕
		booking, err := s.repository.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if booking.Status == target {
			return booking, nil
		}
		return nil, apperrors.ErrInvalidStatusTransition
	}
}

func (s *BookingServiceImpl) HandlePaymentResult(ctx context.Context, bookingID int, status model.PaymentStatus) (*model.Booking, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	switch status {
	case model.PaymentStatusSuccess:
		return s.Confirm(ctx, bookingID)
	default:
		// failed / pending：預訂停留在 pending，不做任何狀態變化
		return s.repository.FindByID(ctx, bookingID)
	}
}

func (s *BookingServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repository.Delete(ctx, id)
}
