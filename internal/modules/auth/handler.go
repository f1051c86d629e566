package auth

import (
	"net/http"

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/code/request", h.RequestCode)
	rg.POST("/auth/code/verify", h.VerifyCode)
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/password/reset", h.ResetPassword)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.GetProfile)
	rg.PUT("/profile", h.UpdateProfile)
	rg.PUT("/profile/password", h.UpdatePassword)
}

func (h *Handler) RequestCode(c *gin.Context) {
	var req RequestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.RequestCode(c.Request.Context(), req.Email, domain.CodePurpose(req.Purpose)); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"status": "accepted"})
}

func (h *Handler) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.VerifyCode(c.Request.Context(), req.Email, domain.CodePurpose(req.Purpose), req.Code); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "verified"})
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "password_reset"})
}

func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.service.GetProfile(c.Request.Context(), c.GetString("email"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), c.GetString("email"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdatePassword(c.Request.Context(), c.GetString("email"), req); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "password_updated"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrInvalidCredentials:
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	case ErrEmailAlreadyExists:
		response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "Email is already registered")
	case ErrUserBlocked:
		response.Error(c, http.StatusForbidden, "ACCOUNT_BLOCKED", "Account is blocked")
	case ErrUserNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case ErrInvalidCodeFormat:
		response.Error(c, http.StatusBadRequest, "INVALID_CODE_FORMAT", "Verification code must be six digits")
	case ErrInvalidCode:
		response.Error(c, http.StatusBadRequest, "INVALID_CODE", "Invalid or expired verification code")
	case ErrTooManyAttempts:
		response.Error(c, http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS", "Too many verification attempts")
	case ErrRateLimited:
		response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Verification code requested too recently")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Authentication operation failed")
	}
}
