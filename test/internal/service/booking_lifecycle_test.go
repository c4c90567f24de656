package service

import (
	"context"
	"testing"

	"go-tour-booking/internal/model"
	apperrors "go-tour-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 完整生命週期：三個用戶搶 5 個名額，確認、取消、重複取消一路走到底
func TestBookingLifecycle_EndToEnd(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	ctx := context.Background()
	bookingService, _ := newRealBookingService(t)

	tourID := createTestTour(t, "Lifecycle Tour", 100.0, 10)
	availabilityID := createTestAvailability(t, tourID, 5)

	alice := createTestUser(t, "Alice", "alice@test.com")
	bob := createTestUser(t, "Bob", "bob@test.com")
	carol := createTestUser(t, "Carol", "carol@test.com")

	// 三筆 pending 預訂，都不扣名額
	bookingA, err := bookingService.Create(ctx, model.CreateBookingRequest{
		UserID: alice, TourID: tourID, AvailabilityID: availabilityID, TravelersCount: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 200.0, bookingA.TotalPrice)

	bookingB, err := bookingService.Create(ctx, model.CreateBookingRequest{
		UserID: bob, TourID: tourID, AvailabilityID: availabilityID, TravelersCount: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 300.0, bookingB.TotalPrice)

	bookingC, err := bookingService.Create(ctx, model.CreateBookingRequest{
		UserID: carol, TourID: tourID, AvailabilityID: availabilityID, TravelersCount: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, getAvailableSlots(t, availabilityID), "pending bookings must not consume slots")

	// 確認 A：5 -> 3
	_, err = bookingService.Confirm(ctx, bookingA.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, getAvailableSlots(t, availabilityID))

	// 確認 B：3 -> 0
	_, err = bookingService.Confirm(ctx, bookingB.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, getAvailableSlots(t, availabilityID))

	// 確認 C：名額不足，預訂停留在 pending，名額不變
	_, err = bookingService.Confirm(ctx, bookingC.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientSlots)
	assert.Equal(t, 0, getAvailableSlots(t, availabilityID))

	stillPending, err := bookingService.GetByID(ctx, bookingC.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusPending, stillPending.Status)

	// 取消已確認的 A：歸還 2 個名額
	_, err = bookingService.Cancel(ctx, bookingA.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, getAvailableSlots(t, availabilityID))

	// 重複取消：失敗且不會再次歸還名額
	_, err = bookingService.Cancel(ctx, bookingA.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBookingAlreadyCancelled)
	assert.Equal(t, 2, getAvailableSlots(t, availabilityID))

	// 名額釋出後 C 終於確認成功
	_, err = bookingService.Confirm(ctx, bookingC.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, getAvailableSlots(t, availabilityID))
}
