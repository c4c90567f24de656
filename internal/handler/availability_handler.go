package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go-tour-booking/internal/model"
	"go-tour-booking/internal/service"
	apperrors "go-tour-booking/pkg/app_errors"
	"go-tour-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service service.AvailabilityService
}

func NewAvailabilityHandler(service service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

func (h *AvailabilityHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("tours/:id/availability", h.CheckAvailability)
		router.GET("availabilities/:id", h.GetByID)
		router.POST("availabilities", h.Create)
		router.DELETE("availabilities/:id", h.Delete)
	}
}

// CreateAvailabilityRequest 建立出團日期請求
type CreateAvailabilityRequest struct {
	TourID     int    `json:"tour_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	TotalSlots int    `json:"total_slots" binding:"required"`
}

func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	tourID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour id"})
		return
	}

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	slots, err := h.service.CheckAvailability(c, tourID, from, to)
	if err != nil {
		h.handleError(c, err, "CheckAvailability")
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (h *AvailabilityHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability id"})
		return
	}
	availability, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, availability)
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	principal, ok := GetPrincipal(c)
	if !ok {
		return
	}

	var req CreateAvailabilityRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date, expected YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date, expected YYYY-MM-DD"})
		return
	}

	availability := &model.TourAvailability{
		TourID:     req.TourID,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalSlots: req.TotalSlots,
	}
	created, err := h.service.Create(c, principal, availability)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	principal, ok := GetPrincipal(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability id"})
		return
	}
	err = h.service.Delete(c, principal, id)
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.Status(http.StatusNoContent)
}

// parseDateQuery 解析可選的 YYYY-MM-DD query 參數
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ", expected YYYY-MM-DD"})
		return nil, false
	}
	return &parsed, true
}

func (h *AvailabilityHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrAvailabilityNotFound):
		log.Warn("Availability not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Availability not found"})
	case errors.Is(err, apperrors.ErrTourNotFound):
		log.Warn("Tour not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		log.Warn("Permission denied")
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
	case errors.Is(err, apperrors.ErrValidation):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
