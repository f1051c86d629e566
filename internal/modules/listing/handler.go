package listing

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/houses", h.Browse)
	rg.GET("/houses/:id", h.GetHouse)
}

func (h *Handler) RegisterOwnerRoutes(rg *gin.RouterGroup) {
	rg.POST("/houses", h.CreateHouse)
	rg.GET("/houses/my", h.MyHouses)
	rg.PUT("/houses/:id", h.UpdateHouse)
	rg.DELETE("/houses/:id", h.DeleteHouse)
}

func (h *Handler) Browse(c *gin.Context) {
	var q BrowseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	houses, total, err := h.service.Browse(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list houses")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"houses": houses,
		"total":  total,
		"page":   q.Page,
	})
}

func (h *Handler) GetHouse(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid house ID")
		return
	}

	house, err := h.service.GetHouse(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "House not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load house")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"house": house})
}

func (h *Handler) CreateHouse(c *gin.Context) {
	var req CreateHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	house, err := h.service.CreateHouse(c.Request.Context(), c.GetString("email"), req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rental window end precedes start")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create house")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"house": house})
}

func (h *Handler) MyHouses(c *gin.Context) {
	houses, err := h.service.MyHouses(c.Request.Context(), c.GetString("email"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list houses")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"houses": houses})
}

func (h *Handler) UpdateHouse(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid house ID")
		return
	}

	var req UpdateHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	house, err := h.service.UpdateHouse(c.Request.Context(), id, c.GetString("email"), req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "House not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this house")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rental window end precedes start")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update house")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"house": house})
}

func (h *Handler) DeleteHouse(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid house ID")
		return
	}

	if err := h.service.DeleteHouse(c.Request.Context(), id, c.GetString("email")); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "House not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this house")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete house")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
