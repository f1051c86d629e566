package favorite

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
	rg.GET("/favorites", h.List)
	rg.POST("/favorites/:houseID", h.Add)
	rg.DELETE("/favorites/:houseID", h.Remove)
}

func (h *Handler) Add(c *gin.Context) {
	houseID, ok := houseIDParam(c)
	if !ok {
		return
	}

	f, err := h.service.Add(c.Request.Context(), c.GetString("email"), houseID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"favorite": f})
}

func (h *Handler) Remove(c *gin.Context) {
	houseID, ok := houseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), c.GetString("email"), houseID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "removed"})
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 50 {
		size = 10
	}

	favorites, total, err := h.service.List(c.Request.Context(), c.GetString("email"), size, (page-1)*size)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"favorites": favorites, "total": total})
}

func houseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("houseID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid house ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrHouseNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "House not found")
	case ErrAlreadySaved:
		response.Error(c, http.StatusConflict, "ALREADY_SAVED", "House is already in favorites")
	case ErrNotSaved:
		response.Error(c, http.StatusNotFound, "NOT_SAVED", "House is not in favorites")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Favorite operation failed")
	}
}
