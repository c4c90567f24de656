package service

import (
	"context"

	"go-tour-booking/internal/cache"
	"go-tour-booking/internal/model"
	"go-tour-booking/internal/repository"
	"go-tour-booking/internal/rules"
	apperrors "go-tour-booking/pkg/app_errors"

	"github.com/google/uuid"
)

type TourService interface {
	List(ctx context.Context) ([]*model.Tour, error)
	GetByID(ctx context.Context, id int) (*model.Tour, error)
	GetByTourID(ctx context.Context, tourID uuid.UUID) (*model.Tour, error)
	Create(ctx context.Context, principal model.Principal, tour *model.Tour) (*model.Tour, error)
	Update(ctx context.Context, principal model.Principal, id int, params model.UpdateTourParams) (*model.Tour, error)
	// Delete 有已確認預訂的行程不可刪除
	Delete(ctx context.Context, principal model.Principal, id int) error
	// OpenForBooking 開放預訂：預熱該行程所有出團日期的名額快取
	OpenForBooking(ctx context.Context, principal model.Principal, id int) error
}

type TourServiceImpl struct {
	repo             repository.TourRepository
	availabilityRepo repository.AvailabilityRepository
	bookingRepo      repository.BookingRepository
	slotCache        cache.AvailabilitySlotCache
}

func NewTourService(
	repo repository.TourRepository,
	availabilityRepo repository.AvailabilityRepository,
	bookingRepo repository.BookingRepository,
	slotCache cache.AvailabilitySlotCache,
) TourService {
	return &TourServiceImpl{
		repo:             repo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		slotCache:        slotCache,
	}
}

func (s *TourServiceImpl) List(ctx context.Context) ([]*model.Tour, error) {
	return s.repo.List(ctx)
}

func (s *TourServiceImpl) GetByID(ctx context.Context, id int) (*model.Tour, error) {
	tour, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	itinerary, err := s.repo.ListItinerary(ctx, tour.ID)
	if err != nil {
		return nil, err
	}
	tour.Itinerary = itinerary

	return tour, nil
}

func (s *TourServiceImpl) GetByTourID(ctx context.Context, tourID uuid.UUID) (*model.Tour, error) {
	tour, err := s.repo.FindByTourID(ctx, tourID)
	if err != nil {
		return nil, err
	}

	itinerary, err := s.repo.ListItinerary(ctx, tour.ID)
	if err != nil {
		return nil, err
	}
	tour.Itinerary = itinerary

	return tour, nil
}

func (s *TourServiceImpl) Create(ctx context.Context, principal model.Principal, tour *model.Tour) (*model.Tour, error) {
	if err := rules.RequireRole(principal, model.RoleAdmin); err != nil {
		return nil, err
	}
	if err := rules.ValidateTourPricing(tour.PricePerPerson, tour.MaxGroupSize); err != nil {
		return nil, err
	}
	if err := rules.ValidateItinerary(tour.Itinerary, tour.DurationDays); err != nil {
		return nil, err
	}

	if tour.TourID == uuid.Nil {
		tour.TourID = uuid.New()
	}
	if tour.Status == "" {
		tour.Status = model.TourStatusActive
	}
	tour.OwnerID = principal.UserID

	return s.repo.Create(ctx, tour)
}

func (s *TourServiceImpl) Update(ctx context.Context, principal model.Principal, id int, params model.UpdateTourParams) (*model.Tour, error) {
	if err := rules.RequireRole(principal, model.RoleAdmin); err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 定價規則要對更新後的組合重新檢查
	price := current.PricePerPerson
	if params.PricePerPerson != nil {
		price = *params.PricePerPerson
	}
	maxGroup := current.MaxGroupSize
	if params.MaxGroupSize != nil {
		maxGroup = *params.MaxGroupSize
	}
	if err := rules.ValidateTourPricing(price, maxGroup); err != nil {
		return nil, err
	}

	if params.Status != nil && !params.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be active or inactive")
	}

	return s.repo.Update(ctx, id, params)
}

func (s *TourServiceImpl) Delete(ctx context.Context, principal model.Principal, id int) error {
	if err := rules.RequireRole(principal, model.RoleAdmin); err != nil {
		return err
	}

	confirmed, err := s.bookingRepo.CountConfirmedByTourID(ctx, id)
	if err != nil {
		return err
	}
	if confirmed > 0 {
		return apperrors.ErrTourHasConfirmedBookings
	}

	return s.repo.Delete(ctx, id)
}

func (s *TourServiceImpl) OpenForBooking(ctx context.Context, principal model.Principal, id int) error {
	if err := rules.RequireRole(principal, model.RoleStaff); err != nil {
		return err
	}

	tour, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	availabilities, err := s.availabilityRepo.ListByTourID(ctx, tour.ID)
	if err != nil {
		return err
	}
	for _, a := range availabilities {
		if err := s.slotCache.WarmUp(ctx, a.ID, a.AvailableSlots, tour.MaxGroupSize); err != nil {
			return err
		}
	}
	return nil
}
