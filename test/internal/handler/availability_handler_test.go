package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-tour-booking/internal/handler"
	"go-tour-booking/internal/model"
	apperrors "go-tour-booking/pkg/app_errors"
	serviceMocks "go-tour-booking/test/internal/mocks/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAvailabilityTestRouter(mockService *serviceMocks.AvailabilityServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	availabilityHandler := handler.NewAvailabilityHandler(mockService)
	availabilityHandler.RegisterRoutes(router)

	return router
}

func TestCheckAvailability(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewAvailabilityServiceMock()
		router := setupAvailabilityTestRouter(mockService)

		mockService.On("CheckAvailability", mock.Anything, 1, mock.Anything, mock.Anything).Return([]*model.AvailabilitySlot{
			{AvailabilityID: 7, AvailableSlots: 10},
		}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/tours/1/availability", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Success - DateRange", func(t *testing.T) {
		mockService := serviceMocks.NewAvailabilityServiceMock()
		router := setupAvailabilityTestRouter(mockService)

		mockService.On("CheckAvailability", mock.Anything, 1, mock.Anything, mock.Anything).Return([]*model.AvailabilitySlot{}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/tours/1/availability?from=2026-09-01&to=2026-09-30", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - BadDateFormat", func(t *testing.T) {
		mockService := serviceMocks.NewAvailabilityServiceMock()
		router := setupAvailabilityTestRouter(mockService)

		req := createJSONHTTPRequest("GET", "/api/v1/tours/1/availability?from=09-01-2026", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CheckAvailability")
	})
}

func TestCreateAvailability(t *testing.T) {
	createRequest := handler.CreateAvailabilityRequest{
		TourID:     1,
		StartDate:  "2026-10-01",
		EndDate:    "2026-10-04",
		TotalSlots: 20,
	}

	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewAvailabilityServiceMock()
		router := setupAvailabilityTestRouter(mockService)

		mockService.On("Create", mock.Anything, model.Principal{UserID: 2, Role: model.RoleStaff}, mock.AnythingOfType("*model.TourAvailability")).Return(&model.TourAvailability{
			ID:             7,
			TourID:         1,
			TotalSlots:     20,
			AvailableSlots: 20,
		}, nil).Once()

		req := withPrincipal(createJSONHTTPRequest("POST", "/api/v1/availabilities", createRequest), "2", "staff")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - CustomerForbidden", func(t *testing.T) {
		mockService := serviceMocks.NewAvailabilityServiceMock()
		router := setupAvailabilityTestRouter(mockService)

		mockService.On("Create", mock.Anything, model.Principal{UserID: 3, Role: model.RoleCustomer}, mock.AnythingOfType("*model.TourAvailability")).Return(nil, apperrors.ErrPermissionDenied).Once()

		req := withPrincipal(createJSONHTTPRequest("POST", "/api/v1/availabilities", createRequest), "3", "customer")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Failed - BadStartDate", func(t *testing.T) {
		mockService := serviceMocks.NewAvailabilityServiceMock()
		router := setupAvailabilityTestRouter(mockService)

		badRequest := createRequest
		badRequest.StartDate = "Oct 1 2026"

		req := withPrincipal(createJSONHTTPRequest("POST", "/api/v1/availabilities", badRequest), "2", "staff")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - MissingCredentials", func(t *testing.T) {
		mockService := serviceMocks.NewAvailabilityServiceMock()
		router := setupAvailabilityTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/availabilities", createRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestGetAvailability(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewAvailabilityServiceMock()
		router := setupAvailabilityTestRouter(mockService)

		mockService.On("GetByID", mock.Anything, 7).Return(&model.TourAvailability{ID: 7, AvailableSlots: 10}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/availabilities/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - NotFound", func(t *testing.T) {
		mockService := serviceMocks.NewAvailabilityServiceMock()
		router := setupAvailabilityTestRouter(mockService)

		mockService.On("GetByID", mock.Anything, 99).Return(nil, apperrors.ErrAvailabilityNotFound).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/availabilities/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteAvailability(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewAvailabilityServiceMock()
		router := setupAvailabilityTestRouter(mockService)

		mockService.On("Delete", mock.Anything, model.Principal{UserID: 2, Role: model.RoleStaff}, 7).Return(nil).Once()

		req := withPrincipal(createJSONHTTPRequest("DELETE", "/api/v1/availabilities/7", nil), "2", "staff")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})
}
