package caches

import (
	"context"

	"go-tour-booking/internal/cache"

	"github.com/stretchr/testify/mock"
)

type AvailabilitySlotCacheMock struct {
	mock.Mock
}

func NewAvailabilitySlotCacheMock() *AvailabilitySlotCacheMock {
	return &AvailabilitySlotCacheMock{}
}

func (m *AvailabilitySlotCacheMock) WarmUp(ctx context.Context, availabilityID int, slots int, maxGroupSize int) error {
	args := m.Called(ctx, availabilityID, slots, maxGroupSize)
	return args.Error(0)
}

func (m *AvailabilitySlotCacheMock) Get(ctx context.Context, availabilityID int) (cache.CachedAvailability, error) {
	args := m.Called(ctx, availabilityID)
	return args.Get(0).(cache.CachedAvailability), args.Error(1)
}

func (m *AvailabilitySlotCacheMock) Invalidate(ctx context.Context, availabilityID int) error {
	args := m.Called(ctx, availabilityID)
	return args.Error(0)
}
