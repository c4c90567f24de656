package rules

import (
	"time"

	"go-tour-booking/internal/model"
	apperrors "go-tour-booking/pkg/app_errors"
)

// ValidateAvailabilityDates 檢查出團日期區間與名額上限（建立出團日期時使用）
func ValidateAvailabilityDates(startDate, endDate time.Time, totalSlots int, now time.Time) error {
	if endDate.Before(startDate) {
		return apperrors.NewValidationError("end_date", "must not be before start_date")
	}
	if startDate.Before(truncateToDay(now)) {
		return apperrors.NewValidationError("start_date", "must not be in the past")
	}
	if totalSlots < 1 {
		return apperrors.NewValidationError("total_slots", "must be at least 1")
	}
	if totalSlots > model.MaxSlotsPerAvailability {
		return apperrors.NewValidationError("total_slots", "must not exceed 1000")
	}
	return nil
}

// ValidateBookingAvailability 檢查某次出團是否可接受指定人數的預訂：
// 行程必須是 active、人數不超過剩餘名額與單團上限、出團日不可在今天之前
func ValidateBookingAvailability(tour *model.Tour, availability *model.TourAvailability, requestedSlots int, now time.Time) error {
	if !tour.IsBookable() {
		return apperrors.NewValidationError("tour", "tour is not open for booking")
	}
	if requestedSlots < 1 {
		return apperrors.NewValidationError("travelers_count", "must be at least 1")
	}
	if requestedSlots > availability.AvailableSlots {
		return apperrors.NewValidationError("travelers_count", "exceeds available slots")
	}
	if requestedSlots > tour.MaxGroupSize {
		return apperrors.NewValidationError("travelers_count", "exceeds tour max group size")
	}
	if availability.StartDate.Before(truncateToDay(now)) {
		return apperrors.NewValidationError("start_date", "availability has already departed")
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
