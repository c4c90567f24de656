package rules

import (
	"go-tour-booking/internal/model"
	apperrors "go-tour-booking/pkg/app_errors"
)

const (
	// MaxPricePerPerson 單人價格上限
	MaxPricePerPerson = 100000.0
	// MaxGroupSize 單團人數上限
	MaxGroupSize = 100
	// MaxTourValue 單團總價值上限 (price_per_person × max_group_size)
	MaxTourValue = 1000000.0
)

// ValidateTourPricing 檢查行程定價：價格區間、人數上限、總價值上限
func ValidateTourPricing(pricePerPerson float64, maxGroupSize int) error {
	if pricePerPerson <= 0 {
		return apperrors.NewValidationError("price_per_person", "must be greater than 0")
	}
	if pricePerPerson > MaxPricePerPerson {
		return apperrors.NewValidationError("price_per_person", "must not exceed 100000")
	}
	if maxGroupSize < 1 {
		return apperrors.NewValidationError("max_group_size", "must be at least 1")
	}
	if maxGroupSize > MaxGroupSize {
		return apperrors.NewValidationError("max_group_size", "must not exceed 100")
	}
	if pricePerPerson*float64(maxGroupSize) > MaxTourValue {
		return apperrors.NewValidationError("price_per_person", "price_per_person x max_group_size must not exceed 1000000")
	}
	return nil
}

// ValidateItinerary 檢查行程表：每一天一筆，從第 1 天起連續編號，不可缺漏或重複
func ValidateItinerary(items []model.ItineraryItem, durationDays int) error {
	if durationDays < 1 {
		return apperrors.NewValidationError("duration_days", "must be at least 1")
	}
	if len(items) != durationDays {
		return apperrors.NewValidationError("itinerary", "must contain exactly one entry per duration day")
	}

	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if item.Day < 1 || item.Day > durationDays {
			return apperrors.NewValidationError("itinerary", "day numbers must be between 1 and duration_days")
		}
		if seen[item.Day] {
			return apperrors.NewValidationError("itinerary", "duplicate day number")
		}
		seen[item.Day] = true
	}
	return nil
}
