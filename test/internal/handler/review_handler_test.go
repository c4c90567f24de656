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

func setupReviewTestRouter(mockService *serviceMocks.ReviewServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	reviewHandler := handler.NewReviewHandler(mockService)
	reviewHandler.RegisterRoutes(router)

	return router
}

func TestCreateReview(t *testing.T) {
	createReviewRequest := model.CreateReviewRequest{
		TourID:  1,
		Rating:  5,
		Comment: "Fantastic trip, the guide was excellent.",
	}

	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewReviewServiceMock()
		router := setupReviewTestRouter(mockService)

		mockService.On("Create", mock.Anything, model.Principal{UserID: 3, Role: model.RoleCustomer}, createReviewRequest).Return(&model.Review{
			ID:     1,
			UserID: 3,
			TourID: 1,
			Rating: 5,
		}, nil).Once()

		req := withPrincipal(createJSONHTTPRequest("POST", "/api/v1/reviews", createReviewRequest), "3", "customer")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - NotEligible", func(t *testing.T) {
		mockService := serviceMocks.NewReviewServiceMock()
		router := setupReviewTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything, createReviewRequest).Return(nil, apperrors.ErrReviewNotAllowed).Once()

		req := withPrincipal(createJSONHTTPRequest("POST", "/api/v1/reviews", createReviewRequest), "3", "customer")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Failed - MissingCredentials", func(t *testing.T) {
		mockService := serviceMocks.NewReviewServiceMock()
		router := setupReviewTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/reviews", createReviewRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - ValidationError", func(t *testing.T) {
		mockService := serviceMocks.NewReviewServiceMock()
		router := setupReviewTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything, createReviewRequest).Return(
			nil, apperrors.NewValidationError("rating", "must be between 1 and 5"),
		).Once()

		req := withPrincipal(createJSONHTTPRequest("POST", "/api/v1/reviews", createReviewRequest), "3", "customer")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListTourReviews(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewReviewServiceMock()
		router := setupReviewTestRouter(mockService)

		mockService.On("ListByTourID", mock.Anything, 1).Return([]*model.Review{
			{ID: 1, TourID: 1, Rating: 5},
			{ID: 2, TourID: 1, Rating: 4},
		}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/tours/1/reviews", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - InvalidID", func(t *testing.T) {
		mockService := serviceMocks.NewReviewServiceMock()
		router := setupReviewTestRouter(mockService)

		req := createJSONHTTPRequest("GET", "/api/v1/tours/abc/reviews", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ListByTourID")
	})
}
