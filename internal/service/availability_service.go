package service

import (
	"context"
	"errors"
	"time"

	"go-tour-booking/internal/cache"
	"go-tour-booking/internal/model"
	"go-tour-booking/internal/repository"
	"go-tour-booking/internal/rules"
	apperrors "go-tour-booking/pkg/app_errors"
	"go-tour-booking/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// AvailabilityService 名額帳本：持有每個出團日期的名額計數器，
// 回答容量查詢，並提供預訂流程在同一事務內扣減/歸還名額的操作。
type AvailabilityService interface {
	// CheckAvailability 查詢尚有名額的出團日期，可選日期區間
	CheckAvailability(ctx context.Context, tourID int, from, to *time.Time) ([]*model.AvailabilitySlot, error)
	// CanAccommodate 檢查某次出團是否容得下指定人數；紀錄不存在回傳 false
	CanAccommodate(ctx context.Context, availabilityID int, travelers int) (bool, error)
	GetByID(ctx context.Context, availabilityID int) (*model.TourAvailability, error)
	ListByTourID(ctx context.Context, tourID int) ([]*model.TourAvailability, error)
	Create(ctx context.Context, principal model.Principal, availability *model.TourAvailability) (*model.TourAvailability, error)
	Delete(ctx context.Context, principal model.Principal, availabilityID int) error

	// ReserveSlots 扣減名額支撐一筆確認的預訂，呼叫端負責把它放進同一個事務
	ReserveSlots(ctx context.Context, tx pgx.Tx, availabilityID int, travelers int) error
	// ReleaseSlots 取消已確認的預訂後歸還名額
	ReleaseSlots(ctx context.Context, tx pgx.Tx, availabilityID int, travelers int) error
	// InvalidateCache 名額變動提交後作廢快取
	InvalidateCache(ctx context.Context, availabilityID int)
}

type AvailabilityServiceImpl struct {
	repo      repository.AvailabilityRepository
	slotCache cache.AvailabilitySlotCache
}

func NewAvailabilityService(repo repository.AvailabilityRepository, slotCache cache.AvailabilitySlotCache) AvailabilityService {
	return &AvailabilityServiceImpl{
		repo:      repo,
		slotCache: slotCache,
	}
}

func (s *AvailabilityServiceImpl) CheckAvailability(ctx context.Context, tourID int, from, to *time.Time) ([]*model.AvailabilitySlot, error) {
	return s.repo.ListOpenSlots(ctx, tourID, from, to)
}

func (s *AvailabilityServiceImpl) CanAccommodate(ctx context.Context, availabilityID int, travelers int) (bool, error) {
	if travelers < 1 {
		return false, nil
	}

	// 1. 先走快取（開放預訂時預熱），未命中再回退資料庫
	cached, err := s.slotCache.Get(ctx, availabilityID)
	if err == nil {
		return travelers <= cached.Slots, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		// Redis 故障不擋預訂流程，降級讀資料庫
		logger.WithComponent("service").Warn("slot cache read failed", zap.Int("availability_id", availabilityID), zap.Error(err))
	}

	availability, err := s.repo.FindByID(ctx, availabilityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAvailabilityNotFound) {
			return false, nil
		}
		return false, err
	}

	return availability.HasCapacity(travelers), nil
}

func (s *AvailabilityServiceImpl) GetByID(ctx context.Context, availabilityID int) (*model.TourAvailability, error) {
	return s.repo.FindByID(ctx, availabilityID)
}

func (s *AvailabilityServiceImpl) ListByTourID(ctx context.Context, tourID int) ([]*model.TourAvailability, error) {
	return s.repo.ListByTourID(ctx, tourID)
}

func (s *AvailabilityServiceImpl) Create(ctx context.Context, principal model.Principal, availability *model.TourAvailability) (*model.TourAvailability, error) {
	if err := rules.RequireRole(principal, model.RoleStaff); err != nil {
		return nil, err
	}
	if err := rules.ValidateAvailabilityDates(availability.StartDate, availability.EndDate, availability.TotalSlots, time.Now()); err != nil {
		return nil, err
	}

	availability.AvailableSlots = availability.TotalSlots
	return s.repo.Create(ctx, availability)
}

func (s *AvailabilityServiceImpl) Delete(ctx context.Context, principal model.Principal, availabilityID int) error {
	if err := rules.RequireRole(principal, model.RoleStaff); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, availabilityID); err != nil {
		return err
	}
	s.InvalidateCache(ctx, availabilityID)
	return nil
}

func (s *AvailabilityServiceImpl) ReserveSlots(ctx context.Context, tx pgx.Tx, availabilityID int, travelers int) error {
	if travelers < 1 {
		return apperrors.ErrInvalidInput
	}
	return s.repo.DecrementSlots(ctx, tx, availabilityID, travelers)
}

func (s *AvailabilityServiceImpl) ReleaseSlots(ctx context.Context, tx pgx.Tx, availabilityID int, travelers int) error {
	if travelers < 1 {
		return apperrors.ErrInvalidInput
	}
	return s.repo.IncrementSlots(ctx, tx, availabilityID, travelers)
}

func (s *AvailabilityServiceImpl) InvalidateCache(ctx context.Context, availabilityID int) {
	if err := s.slotCache.Invalidate(ctx, availabilityID); err != nil {
		// 快取作廢失敗只記 log，TTL 到期後仍會自行失效
		logger.WithComponent("service").Warn("slot cache invalidate failed", zap.Int("availability_id", availabilityID), zap.Error(err))
	}
}
