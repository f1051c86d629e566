package admin

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
	rg.GET("/admin/users", h.ListUsers)
	rg.GET("/admin/users/:email", h.GetUser)
	rg.PUT("/admin/users/:email", h.UpdateUser)
	rg.DELETE("/admin/users/:email", h.DeleteUser)
	rg.DELETE("/admin/users/:email/photo", h.DeleteUserPhoto)
	rg.POST("/admin/users/:email/block", h.BlockUser)
	rg.POST("/admin/users/:email/unblock", h.UnblockUser)

	rg.GET("/admin/houses", h.ListHouses)
	rg.GET("/admin/houses/:id", h.GetHouse)
	rg.PUT("/admin/houses/:id", h.UpdateHouse)
	rg.DELETE("/admin/houses/:id", h.DeleteHouse)
	rg.POST("/admin/houses/:id/restrict", h.RestrictHouse)
	rg.POST("/admin/houses/:id/unrestrict", h.UnrestrictHouse)

	rg.GET("/admin/reports", h.ListReports)
	rg.POST("/admin/reports/:id/resolve", h.ResolveReport)
	rg.POST("/admin/reports/:id/dismiss", h.DismissReport)
}

func (h *Handler) ListUsers(c *gin.Context) {
	limit, offset := pageBounds(c)
	users, total, err := h.service.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users, "total": total})
}

func (h *Handler) GetUser(c *gin.Context) {
	u, err := h.service.GetUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.service.UpdateUser(c.Request.Context(), c.Param("email"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.GetString("email"), c.Param("email")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) DeleteUserPhoto(c *gin.Context) {
	u, err := h.service.DeleteUserPhoto(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) BlockUser(c *gin.Context) {
	if err := h.service.SetUserStatus(c.Request.Context(), c.GetString("email"), c.Param("email"), domain.UserBlocked); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "blocked"})
}

func (h *Handler) UnblockUser(c *gin.Context) {
	if err := h.service.SetUserStatus(c.Request.Context(), c.GetString("email"), c.Param("email"), domain.UserActive); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "active"})
}

func (h *Handler) ListHouses(c *gin.Context) {
	limit, offset := pageBounds(c)
	houses, total, err := h.service.ListHouses(c.Request.Context(), limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"houses": houses, "total": total})
}

func (h *Handler) GetHouse(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	house, err := h.service.GetHouse(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"house": house})
}

func (h *Handler) UpdateHouse(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	house, err := h.service.UpdateHouse(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"house": house})
}

func (h *Handler) DeleteHouse(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteHouse(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) RestrictHouse(c *gin.Context) {
	h.setModeration(c, domain.HouseRestricted)
}

func (h *Handler) UnrestrictHouse(c *gin.Context) {
	h.setModeration(c, domain.HouseValid)
}

func (h *Handler) setModeration(c *gin.Context, status domain.ModerationStatus) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.SetModerationStatus(c.Request.Context(), id, status); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"moderation_status": status})
}

func (h *Handler) ListReports(c *gin.Context) {
	limit, offset := pageBounds(c)
	status := domain.ReportStatus(c.Query("status"))
	reports, total, err := h.service.ListReports(c.Request.Context(), status, limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reports": reports, "total": total})
}

func (h *Handler) ResolveReport(c *gin.Context) {
	h.setReportStatus(c, domain.ReportResolved)
}

func (h *Handler) DismissReport(c *gin.Context) {
	h.setReportStatus(c, domain.ReportDismissed)
}

func (h *Handler) setReportStatus(c *gin.Context, status domain.ReportStatus) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.SetReportStatus(c.Request.Context(), id, status); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": status})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func pageBounds(c *gin.Context) (limit, offset int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	return size, (page - 1) * size
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrUserNotFound, ErrHouseNotFound, ErrReportNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case ErrNoPhotoField:
		response.Error(c, http.StatusUnprocessableEntity, "NO_PHOTO_FIELD", "This role has no photo to delete")
	case ErrSelfTarget:
		response.Error(c, http.StatusConflict, "SELF_TARGET", "Admins cannot moderate their own account")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Admin operation failed")
	}
}
