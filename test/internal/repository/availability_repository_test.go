package repository

import (
	"context"
	"testing"
	"time"

	"go-tour-booking/internal/model"
	"go-tour-booking/internal/repository"
	apperrors "go-tour-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityRepository_Create(t *testing.T) {
	cleanup := setupTestWithTruncate(t)
	defer cleanup()

	repo := repository.NewAvailabilityRepository(getTestDB())
	ctx := context.Background()

	tourID := createTestTour(t, "Kyoto Walking Tour", 150.0, 10)

	start := time.Now().AddDate(0, 2, 0).Truncate(24 * time.Hour)
	availability := &model.TourAvailability{
		TourID:         tourID,
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 3),
		TotalSlots:     20,
		AvailableSlots: 20,
	}

	created, err := repo.Create(ctx, availability)

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, tourID, created.TourID)
	assert.Equal(t, 20, created.TotalSlots)
	assert.Equal(t, 20, created.AvailableSlots)
	assert.NotZero(t, created.CreatedAt)
}

func TestAvailabilityRepository_FindByID(t *testing.T) {
	repo := repository.NewAvailabilityRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tourID := createTestTour(t, "Safari Tour", 300.0, 8)
		availabilityID := createTestAvailability(t, tourID, 15)

		found, err := repo.FindByID(ctx, availabilityID)

		require.NoError(t, err)
		assert.Equal(t, availabilityID, found.ID)
		assert.Equal(t, tourID, found.TourID)
		assert.Equal(t, 15, found.AvailableSlots)
	})

	t.Run("NotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		_, err := repo.FindByID(ctx, 99999)

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrAvailabilityNotFound, err)
	})
}

func TestAvailabilityRepository_ListOpenSlots(t *testing.T) {
	repo := repository.NewAvailabilityRepository(getTestDB())
	ctx := context.Background()

	t.Run("ExcludesFullDepartures", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tourID := createTestTour(t, "City Tour", 100.0, 12)
		openID := createTestAvailabilityWithSlots(t, tourID, 20, 5)
		createTestAvailabilityWithSlots(t, tourID, 20, 0) // 售罄不回傳

		slots, err := repo.ListOpenSlots(ctx, tourID, nil, nil)

		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, openID, slots[0].AvailabilityID)
		assert.Equal(t, 5, slots[0].AvailableSlots)
		assert.Equal(t, 12, slots[0].MaxGroupSize)
		assert.True(t, slots[0].CanBook)
	})

	t.Run("DateRangeFilter", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tourID := createTestTour(t, "City Tour", 100.0, 12)
		createTestAvailability(t, tourID, 10) // 一個月後出團

		// 視窗落在出團日之前，不應回傳
		from := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
		to := from.AddDate(0, 0, 7)

		slots, err := repo.ListOpenSlots(ctx, tourID, &from, &to)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("EmptyForUnknownTour", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		slots, err := repo.ListOpenSlots(ctx, 99999, nil, nil)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestAvailabilityRepository_DecrementSlots(t *testing.T) {
	repo := repository.NewAvailabilityRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tourID := createTestTour(t, "Decrement Tour", 100.0, 10)
		availabilityID := createTestAvailability(t, tourID, 20)

		tx, txCleanup := setupTestWithTransaction(t)
		defer txCleanup()

		err := repo.DecrementSlots(ctx, tx, availabilityID, 3)
		require.NoError(t, err)

		availability, err := repo.FindByIDWithLock(ctx, tx, availabilityID)
		require.NoError(t, err)
		assert.Equal(t, 17, availability.AvailableSlots)
	})

	// 名額不足
	t.Run("InsufficientSlots", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tourID := createTestTour(t, "Decrement Tour", 100.0, 10)
		availabilityID := createTestAvailabilityWithSlots(t, tourID, 20, 2)

		tx, txCleanup := setupTestWithTransaction(t)
		defer txCleanup()

		err := repo.DecrementSlots(ctx, tx, availabilityID, 3)

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrInsufficientSlots, err)
	})

	// 名額正好扣到 0
	t.Run("ExactSlots", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tourID := createTestTour(t, "Decrement Tour", 100.0, 10)
		availabilityID := createTestAvailability(t, tourID, 5)

		tx, txCleanup := setupTestWithTransaction(t)
		defer txCleanup()

		err := repo.DecrementSlots(ctx, tx, availabilityID, 5)
		require.NoError(t, err)

		availability, err := repo.FindByIDWithLock(ctx, tx, availabilityID)
		require.NoError(t, err)
		assert.Equal(t, 0, availability.AvailableSlots)
	})

	t.Run("NotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tx, txCleanup := setupTestWithTransaction(t)
		defer txCleanup()

		err := repo.DecrementSlots(ctx, tx, 99999, 1)

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrAvailabilityNotFound, err)
	})
}

func TestAvailabilityRepository_IncrementSlots(t *testing.T) {
	repo := repository.NewAvailabilityRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tourID := createTestTour(t, "Increment Tour", 100.0, 10)
		availabilityID := createTestAvailabilityWithSlots(t, tourID, 20, 15)

		tx, txCleanup := setupTestWithTransaction(t)
		defer txCleanup()

		err := repo.IncrementSlots(ctx, tx, availabilityID, 3)
		require.NoError(t, err)

		availability, err := repo.FindByIDWithLock(ctx, tx, availabilityID)
		require.NoError(t, err)
		assert.Equal(t, 18, availability.AvailableSlots)
	})

	// 剛好回到總名額
	t.Run("ExactToTotalSlots", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tourID := createTestTour(t, "Increment Tour", 100.0, 10)
		availabilityID := createTestAvailabilityWithSlots(t, tourID, 20, 17)

		tx, txCleanup := setupTestWithTransaction(t)
		defer txCleanup()

		err := repo.IncrementSlots(ctx, tx, availabilityID, 3)
		require.NoError(t, err)

		availability, err := repo.FindByIDWithLock(ctx, tx, availabilityID)
		require.NoError(t, err)
		assert.Equal(t, 20, availability.AvailableSlots)
	})

	// 不可超過總名額
	t.Run("CannotExceedTotalSlots", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tourID := createTestTour(t, "Increment Tour", 100.0, 10)
		availabilityID := createTestAvailabilityWithSlots(t, tourID, 20, 18)

		tx, txCleanup := setupTestWithTransaction(t)
		defer txCleanup()

		err := repo.IncrementSlots(ctx, tx, availabilityID, 5)

		require.Error(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tx, txCleanup := setupTestWithTransaction(t)
		defer txCleanup()

		err := repo.IncrementSlots(ctx, tx, 99999, 1)

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrAvailabilityNotFound, err)
	})
}

func TestAvailabilityRepository_Delete(t *testing.T) {
	repo := repository.NewAvailabilityRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		tourID := createTestTour(t, "Delete Tour", 100.0, 10)
		availabilityID := createTestAvailability(t, tourID, 10)

		err := repo.Delete(ctx, availabilityID)
		require.NoError(t, err)

		// 軟刪除後無法查到
		_, err = repo.FindByID(ctx, availabilityID)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrAvailabilityNotFound, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		err := repo.Delete(ctx, 99999)

		require.Error(t, err)
		assert.Equal(t, apperrors.ErrAvailabilityNotFound, err)
	})
}
