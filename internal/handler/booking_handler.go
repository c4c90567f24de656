package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go-tour-booking/internal/model"
	"go-tour-booking/internal/queue"
	"go-tour-booking/internal/service"
	apperrors "go-tour-booking/pkg/app_errors"
	"go-tour-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service           service.BookingService
	notificationQueue queue.NotificationQueue
}

func NewBookingHandler(service service.BookingService, notificationQueue queue.NotificationQueue) *BookingHandler {
	return &BookingHandler{
		service:           service,
		notificationQueue: notificationQueue,
	}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("bookings", h.GetBookings)
		router.GET("bookings/:id", h.GetBooking)
		router.GET("users/:id/bookings", h.GetUserBookings)
		router.POST("bookings", h.CreateBooking)
		router.PUT("bookings/:id/confirm", h.ConfirmBooking)
		router.PUT("bookings/:id/cancel", h.CancelBooking)
		router.PATCH("bookings/:id/status", h.UpdateBookingStatus)
		router.DELETE("bookings/:id", h.DeleteBooking)
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var bookingReq model.CreateBookingRequest

	if err := BindJson(c, &bookingReq); err != nil {
		return
	}

	created, err := h.service.Create(c, bookingReq)
	if err != nil {
		h.handleBookingError(c, err, "CreateBooking")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}
	booking, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleBookingError(c, err, "GetBooking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) GetBookings(c *gin.Context) {
	bookings, err := h.service.List(c)
	if err != nil {
		h.handleBookingError(c, err, "GetBookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	bookings, err := h.service.ListByUserID(c, userID)
	if err != nil {
		h.handleBookingError(c, err, "GetUserBookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}
	booking, err := h.service.Confirm(c, id)
	if err != nil {
		h.handleBookingError(c, err, "ConfirmBooking")
		return
	}

	h.publishNotification(c, booking, model.NotificationBookingConfirmed)

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}
	booking, err := h.service.Cancel(c, id)
	if err != nil {
		h.handleBookingError(c, err, "CancelBooking")
		return
	}

	h.publishNotification(c, booking, model.NotificationBookingCancelled)

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	var req model.UpdateBookingStatusRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	booking, err := h.service.UpdateStatus(c, id, req.Status)
	if err != nil {
		h.handleBookingError(c, err, "UpdateBookingStatus")
		return
	}

	switch req.Status {
	case model.BookingStatusConfirmed:
		h.publishNotification(c, booking, model.NotificationBookingConfirmed)
	case model.BookingStatusCancelled:
		h.publishNotification(c, booking, model.NotificationBookingCancelled)
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}
	err = h.service.Delete(c, id)
	if err != nil {
		h.handleBookingError(c, err, "DeleteBooking")
		return
	}

	c.Status(http.StatusNoContent)
}

// Helper functions

// publishNotification 狀態轉換成功後發事件給通知服務；發送失敗不影響已提交的預訂
func (h *BookingHandler) publishNotification(c *gin.Context, booking *model.Booking, kind model.NotificationKind) {
	notification := &model.BookingNotification{
		BookingID:      booking.ID,
		UserID:         booking.UserID,
		TourID:         booking.TourID,
		AvailabilityID: booking.AvailabilityID,
		TravelersCount: booking.TravelersCount,
		TotalPrice:     booking.TotalPrice,
		Kind:           kind,
		OccurredAt:     time.Now().UTC(),
	}
	if err := h.notificationQueue.PublishNotification(c, notification); err != nil {
		logger.WithComponent("handler").Warn("failed to publish booking notification",
			zap.Int("booking_id", booking.ID), zap.String("kind", string(kind)), zap.Error(err))
	}
}

func (h *BookingHandler) handleBookingError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInsufficientSlots):
		log.Warn("Insufficient slots")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Insufficient slots",
		})
	case errors.Is(err, apperrors.ErrBookingAlreadyCancelled):
		log.Warn("Booking already cancelled")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking already cancelled",
		})
	case errors.Is(err, apperrors.ErrInvalidStatusTransition):
		log.Warn("Invalid status transition")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Invalid status transition",
		})
	case errors.Is(err, apperrors.ErrValidation):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, apperrors.ErrTourNotFound):
		log.Warn("Tour not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Tour not found",
		})
	case errors.Is(err, apperrors.ErrAvailabilityNotFound):
		log.Warn("Availability not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Availability not found",
		})
	case errors.Is(err, apperrors.ErrBookingNotFound):
		log.Warn("Booking not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
