package auth

import "time"

type RegisterRequest struct {
	Name     string     `json:"name" binding:"required,min=2"`
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required,min=6"`
	Role     string     `json:"role" binding:"required,oneof=tenant owner"`
	Birthday *time.Time `json:"birthday,omitempty"`
	PhotoURL string     `json:"photo_url,omitempty"`
	Code     string     `json:"code" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RequestCodeRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Purpose string `json:"purpose" binding:"required,oneof=register login reset"`
}

type VerifyCodeRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Purpose string `json:"purpose" binding:"required,oneof=register login reset"`
	Code    string `json:"code" binding:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	Name     string     `json:"name,omitempty"`
	Birthday *time.Time `json:"birthday,omitempty"`
	PhotoURL string     `json:"photo_url,omitempty"`
}

type LoginResult struct {
	User  *UserPublic `json:"user"`
	Token string      `json:"token"`
}

type UserPublic struct {
	Email    string     `json:"email"`
	Name     string     `json:"name"`
	Role     string     `json:"role"`
	Birthday *time.Time `json:"birthday,omitempty"`
	PhotoURL string     `json:"photo_url,omitempty"`
}
