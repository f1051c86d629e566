package review

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"homelet/internal/pkg/response"
	"homelet/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/houses/:id/reviews", h.ListReviews)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.CreateReview)
	rg.POST("/reports", h.CreateReport)
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review", errs)
		return
	}

	rev, err := h.service.CreateReview(c.Request.Context(), c.GetString("email"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rev})
}

func (h *Handler) ListReviews(c *gin.Context) {
	houseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid house ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 50 {
		size = 10
	}

	reviews, total, err := h.service.ListReviews(c.Request.Context(), houseID, size, (page-1)*size)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews, "total": total})
}

func (h *Handler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid report", errs)
		return
	}

	rep, err := h.service.CreateReport(c.Request.Context(), c.GetString("email"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"report": rep})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrInvalidRating:
		response.Error(c, http.StatusBadRequest, "INVALID_RATING", "Rating must be between 1 and 5")
	case ErrHouseNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "House not found")
	case ErrInvalidTarget:
		response.Error(c, http.StatusBadRequest, "INVALID_TARGET", "Report needs a house or a user target")
	case ErrTargetNotFound:
		response.Error(c, http.StatusNotFound, "TARGET_NOT_FOUND", "Report target not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Review operation failed")
	}
}
