package service

import (
	"context"

	"go-tour-booking/internal/model"
	"go-tour-booking/internal/repository"
	"go-tour-booking/internal/rules"
	apperrors "go-tour-booking/pkg/app_errors"
)

type ReviewService interface {
	// Create 只有對該行程有已確認預訂的用戶可以發表評論
	Create(ctx context.Context, principal model.Principal, req model.CreateReviewRequest) (*model.Review, error)
	ListByTourID(ctx context.Context, tourID int) ([]*model.Review, error)
}

type ReviewServiceImpl struct {
	repo        repository.ReviewRepository
	tourRepo    repository.TourRepository
	bookingRepo repository.BookingRepository
}

func NewReviewService(
	repo repository.ReviewRepository,
	tourRepo repository.TourRepository,
	bookingRepo repository.BookingRepository,
) ReviewService {
	return &ReviewServiceImpl{
		repo:        repo,
		tourRepo:    tourRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *ReviewServiceImpl) Create(ctx context.Context, principal model.Principal, req model.CreateReviewRequest) (*model.Review, error) {
	if err := rules.ValidateReview(req.Rating, req.Comment); err != nil {
		return nil, err
	}

	if _, err := s.tourRepo.FindByID(ctx, req.TourID); err != nil {
		return nil, err
	}

	eligible, err := s.bookingRepo.HasConfirmedByUserAndTour(ctx, principal.UserID, req.TourID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, apperrors.ErrReviewNotAllowed
	}

	review := &model.Review{
		UserID:  principal.UserID,
		TourID:  req.TourID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	return s.repo.Create(ctx, review)
}

func (s *ReviewServiceImpl) ListByTourID(ctx context.Context, tourID int) ([]*model.Review, error) {
	return s.repo.ListByTourID(ctx, tourID)
}
