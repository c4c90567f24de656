package rules

import (
	"math"

	"go-tour-booking/internal/model"
	apperrors "go-tour-booking/pkg/app_errors"
)

// PriceTolerance 總價比對容差
const PriceTolerance = 0.01

// ValidateBooking 檢查預訂：人數範圍與總價一致性
func ValidateBooking(tour *model.Tour, travelersCount int, totalPrice float64) error {
	if travelersCount < 1 {
		return apperrors.NewValidationError("travelers_count", "must be at least 1")
	}
	if travelersCount > tour.MaxGroupSize {
		return apperrors.NewValidationError("travelers_count", "exceeds tour max group size")
	}

	expected := tour.PricePerPerson * float64(travelersCount)
	if math.Abs(totalPrice-expected) > PriceTolerance {
		return apperrors.NewValidationError("total_price", "does not match price_per_person x travelers_count")
	}
	return nil
}

// ExpectedTotalPrice 依行程單價計算總價
func ExpectedTotalPrice(tour *model.Tour, travelersCount int) float64 {
	return tour.PricePerPerson * float64(travelersCount)
}
