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

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(service service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("reviews", h.Create)
		router.GET("tours/:id/reviews", h.ListByTourID)
	}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	principal, ok := GetPrincipal(c)
	if !ok {
		return
	}

	var req model.CreateReviewRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	review, err := h.service.Create(c, principal, req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ListByTourID(c *gin.Context) {
	tourID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tour id"})
		return
	}
	reviews, err := h.service.ListByTourID(c, tourID)
	if err != nil {
		h.handleError(c, err, "ListByTourID")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrTourNotFound):
		log.Warn("Tour not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
	case errors.Is(err, apperrors.ErrReviewNotAllowed):
		log.Warn("Review not allowed")
		c.JSON(http.StatusForbidden, gin.H{"error": "Only travelers with a confirmed booking can review this tour"})
	case errors.Is(err, apperrors.ErrValidation):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
