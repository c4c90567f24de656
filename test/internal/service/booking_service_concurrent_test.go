package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"go-tour-booking/internal/cache"
	"go-tour-booking/internal/repository"
	"go-tour-booking/internal/service"
	apperrors "go-tour-booking/pkg/app_errors"
	cacheMocks "go-tour-booking/test/internal/mocks/caches"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newRealBookingService 用真實 repository 組裝預訂服務。
// 快取一律回報 miss，讓容量查詢與扣減都走資料庫，測的是條件式 UPDATE 的正確性。
func newRealBookingService(t *testing.T) (service.BookingService, repository.AvailabilityRepository) {
	t.Helper()

	slotCache := cacheMocks.NewAvailabilitySlotCacheMock()
	slotCache.On("Get", mock.Anything, mock.Anything).Return(cache.CachedAvailability{}, cache.ErrCacheMiss)
	slotCache.On("Invalidate", mock.Anything, mock.Anything).Return(nil)

	availabilityRepo := repository.NewAvailabilityRepository(getTestDB())
	bookingRepo := repository.NewBookingRepository(getTestDB())
	tourRepo := repository.NewTourRepository(getTestDB())
	ledger := service.NewAvailabilityService(availabilityRepo, slotCache)

	return service.NewBookingService(getTestDB(), bookingRepo, tourRepo, ledger), availabilityRepo
}

// 100 個 pending 預訂同時確認，只有 10 個名額：不可超賣
func TestConcurrentConfirm_NoOverbooking(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	ctx := context.Background()
	bookingService, availabilityRepo := newRealBookingService(t)

	concurrentBookings := 100
	totalSlots := 10

	tourID := createTestTour(t, "Popular Tour", 100.0, 10)
	availabilityID := createTestAvailability(t, tourID, totalSlots)

	bookingIDs := make([]int, concurrentBookings)
	for i := 0; i < concurrentBookings; i++ {
		userID := createTestUser(t, fmt.Sprintf("User%d", i), fmt.Sprintf("user%d@test.com", i))
		bookingIDs[i] = createTestBooking(t, userID, tourID, availabilityID, 1, 100.0, "pending")
	}

	var wg sync.WaitGroup
	successCount := 0
	insufficientCount := 0
	var mu sync.Mutex

	for i := 0; i < concurrentBookings; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()

			_, err := bookingService.Confirm(ctx, bookingIDs[index])

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successCount++
			} else if err == apperrors.ErrInsufficientSlots {
				insufficientCount++
			}
		}(i)
	}

	wg.Wait()

	t.Logf("100 bookings competing for 10 slots - Confirmed: %d, Insufficient: %d", successCount, insufficientCount)

	availability, err := availabilityRepo.FindByID(ctx, availabilityID)
	require.NoError(t, err)
	assert.Equal(t, totalSlots, successCount, "Confirmed bookings should equal total slots")
	assert.Equal(t, 0, availability.AvailableSlots, "Available slots should be 0")
	assert.Equal(t, concurrentBookings-totalSlots, insufficientCount, "90 bookings should fail on capacity")
}

// 確認與取消交錯執行後，名額守恆：total = available + 已確認的人數
func TestConcurrentConfirmAndCancel_SlotsConserved(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	ctx := context.Background()
	bookingService, availabilityRepo := newRealBookingService(t)
	bookingRepo := repository.NewBookingRepository(getTestDB())

	totalSlots := 20
	tourID := createTestTour(t, "Conservation Tour", 100.0, 10)
	availabilityID := createTestAvailability(t, tourID, totalSlots)

	bookingIDs := make([]int, 30)
	for i := 0; i < 30; i++ {
		userID := createTestUser(t, fmt.Sprintf("CUser%d", i), fmt.Sprintf("cuser%d@test.com", i))
		bookingIDs[i] = createTestBooking(t, userID, tourID, availabilityID, 1, 100.0, "pending")
	}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()

			if _, err := bookingService.Confirm(ctx, bookingIDs[index]); err != nil {
				return
			}
			// 一半確認成功的預訂馬上取消
			if index%2 == 0 {
				bookingService.Cancel(ctx, bookingIDs[index])
			}
		}(i)
	}

	wg.Wait()

	availability, err := availabilityRepo.FindByID(ctx, availabilityID)
	require.NoError(t, err)

	confirmedTravelers, err := bookingRepo.SumConfirmedTravelers(ctx, availabilityID)
	require.NoError(t, err)

	assert.Equal(t, totalSlots, availability.AvailableSlots+confirmedTravelers,
		"total = available + confirmed travelers must always hold")
	assert.GreaterOrEqual(t, availability.AvailableSlots, 0)
	assert.LessOrEqual(t, availability.AvailableSlots, totalSlots)
}
