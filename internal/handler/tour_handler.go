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

type TourHandler struct {
	service service.TourService
}

func NewTourHandler(service service.TourService) *TourHandler {
	return &TourHandler{service: service}
}

func (h *TourHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("tours", h.List)
		router.GET("tours/:id", h.GetByID)
		router.POST("tours", h.Create)
		router.PUT("tours/:id", h.Update)
		router.DELETE("tours/:id", h.Delete)
		router.POST("tours/:id/open", h.OpenForBooking)
	}
}

// CreateTourRequest 建立行程請求
type CreateTourRequest struct {
	Title          string                 `json:"title" binding:"required"`
	Description    *string                `json:"description"`
	PricePerPerson float64                `json:"price_per_person" binding:"required"`
	MaxGroupSize   int                    `json:"max_group_size" binding:"required"`
	DurationDays   int                    `json:"duration_days" binding:"required"`
	Itinerary      []CreateItineraryEntry `json:"itinerary" binding:"required"`
}

type CreateItineraryEntry struct {
	Day      int    `json:"day" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Activity string `json:"activity"`
}

// UpdateTourRequest 更新行程請求
type UpdateTourRequest struct {
	Title          *string           `json:"title"`
	Description    *string           `json:"description"`
	PricePerPerson *float64          `json:"price_per_person"`
	MaxGroupSize   *int              `json:"max_group_size"`
	Status         *model.TourStatus `json:"status"`
}

func (h *TourHandler) List(c *gin.Context) {
	tours, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, tours)
}

func (h *TourHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour id"})
		return
	}
	tour, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (h *TourHandler) Create(c *gin.Context) {
	principal, ok := GetPrincipal(c)
	if !ok {
		return
	}

	var req CreateTourRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	itinerary := make([]model.ItineraryItem, 0, len(req.Itinerary))
	for _, entry := range req.Itinerary {
		itinerary = append(itinerary, model.ItineraryItem{
			Day:      entry.Day,
			Title:    entry.Title,
			Activity: entry.Activity,
		})
	}

	tour := &model.Tour{
		Title:          req.Title,
		Description:    req.Description,
		PricePerPerson: req.PricePerPerson,
		MaxGroupSize:   req.MaxGroupSize,
		DurationDays:   req.DurationDays,
		Itinerary:      itinerary,
	}
	created, err := h.service.Create(c, principal, tour)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TourHandler) Update(c *gin.Context) {
	principal, ok := GetPrincipal(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour id"})
		return
	}

	var req UpdateTourRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Title == nil && req.Description == nil && req.PricePerPerson == nil &&
		req.MaxGroupSize == nil && req.Status == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}

	params := model.UpdateTourParams{
		Title:          req.Title,
		Description:    req.Description,
		PricePerPerson: req.PricePerPerson,
		MaxGroupSize:   req.MaxGroupSize,
		Status:         req.Status,
	}
	updated, err := h.service.Update(c, principal, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *TourHandler) Delete(c *gin.Context) {
	principal, ok := GetPrincipal(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour id"})
		return
	}
	err = h.service.Delete(c, principal, id)
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TourHandler) OpenForBooking(c *gin.Context) {
	principal, ok := GetPrincipal(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour id"})
		return
	}
	err = h.service.OpenForBooking(c, principal, id)
	if err != nil {
		h.handleError(c, err, "OpenForBooking")
		return
	}
	c.Status(http.StatusOK)
}

func (h *TourHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrTourNotFound):
		log.Warn("Tour not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		log.Warn("Permission denied")
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
	case errors.Is(err, apperrors.ErrTourHasConfirmedBookings):
		log.Warn("Tour has confirmed bookings")
		c.JSON(http.StatusConflict, gin.H{"error": "Tour has confirmed bookings"})
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
