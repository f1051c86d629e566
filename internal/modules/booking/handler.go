package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"homelet/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.DELETE("/bookings/:id", h.CancelBooking)
	rg.GET("/bookings/my", h.MyBookings)
	rg.GET("/bookings/owner", h.OwnerBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetString("email"), req)
	if err != nil {
		switch err {
		case ErrInvalidRange:
			response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "End date precedes start date")
		case ErrHouseNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "House not found")
		case ErrDateConflict:
			response.Error(c, http.StatusConflict, "DATE_CONFLICT", "House is not available for the selected dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	if err := h.service.CancelBooking(c.Request.Context(), id, c.GetString("email")); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You cannot cancel this booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}

func (h *Handler) MyBookings(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	bookings, total, err := h.service.ListTenantBookings(c.Request.Context(), c.GetString("email"), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    total,
		"page":     q.Page,
	})
}

func (h *Handler) OwnerBookings(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	bookings, total, err := h.service.ListOwnerBookings(c.Request.Context(), c.GetString("email"), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    total,
		"page":     q.Page,
	})
}
