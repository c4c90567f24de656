package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go-tour-booking/internal/model"
	"go-tour-booking/internal/service"
	apperrors "go-tour-booking/pkg/app_errors"
	"go-tour-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(service service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("payments", h.Create)
		router.POST("payments/result", h.HandleResult)
		router.GET("bookings/:id/payment", h.GetByBookingID)
	}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req service.CreatePaymentRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	payment, err := h.service.Create(c, req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// HandleResult 外部支付服務的結果回報 webhook
func (h *PaymentHandler) HandleResult(c *gin.Context) {
	var req model.PaymentResultRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	payment, err := h.service.HandleResult(c, req)
	if err != nil {
		h.handleError(c, err, "HandleResult")
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) GetByBookingID(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}
	payment, err := h.service.GetByBookingID(c, bookingID)
	if err != nil {
		h.handleError(c, err, "GetByBookingID")
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrPaymentNotFound):
		log.Warn("Payment not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
	case errors.Is(err, apperrors.ErrBookingNotFound):
		log.Warn("Booking not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, apperrors.ErrInsufficientSlots):
		log.Warn("Insufficient slots")
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient slots"})
	case errors.Is(err, apperrors.ErrBookingAlreadyCancelled):
		log.Warn("Booking already cancelled")
		c.JSON(http.StatusConflict, gin.H{"error": "Booking already cancelled"})
	case errors.Is(err, apperrors.ErrInvalidStatusTransition):
		log.Warn("Invalid status transition")
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
	case errors.Is(err, apperrors.ErrValidation):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
