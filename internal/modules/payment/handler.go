package payment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"homelet/internal/domain"
	"homelet/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/method", h.RecordMethod)
	rg.POST("/payments/:bookingID/confirm", h.Confirm)
	rg.GET("/payments/:bookingID", h.GetPayment)
}

func (h *Handler) RecordMethod(c *gin.Context) {
	var req RecordMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.RecordMethod(c.Request.Context(), req.BookingID, c.GetString("email"), domain.PaymentMethod(req.Method))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

func (h *Handler) Confirm(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	p, err := h.service.ConfirmPending(c.Request.Context(), bookingID, c.GetString("email"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

func (h *Handler) GetPayment(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	p, err := h.service.GetByBookingID(c.Request.Context(), bookingID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrBookingNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No pending payment for this booking")
	case ErrAlreadyFinalized:
		response.Error(c, http.StatusConflict, "ALREADY_FINALIZED", "Payment is already finalized")
	case ErrInvalidMethod:
		response.Error(c, http.StatusBadRequest, "INVALID_METHOD", "Unknown payment method")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "This payment belongs to another booking")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Payment operation failed")
	}
}
