package dto

import (
	"time"

	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/domain/auth"
)

// LoginRequest for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	User        UserResponse `json:"user"`
}

// CreateUserRequest for POST /users.
type CreateUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required"`
	Role     string  `json:"role" binding:"required"`
	AgencyID *string `json:"agencyId"`
}

// UserResponse never exposes the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AgencyID  *string   `json:"agencyId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromUser creates UserResponse from auth.User.
func FromUser(u *auth.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
	if u.AgencyID != nil {
		s := u.AgencyID.String()
		resp.AgencyID = &s
	}
	return resp
}

// FromUsers maps a user list.
func FromUsers(users []*auth.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

// MeResponse for GET /auth/me.
type MeResponse struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	AgencyID string `json:"agencyId,omitempty"`
}

// FromUserContext creates MeResponse from the token identity.
func FromUserContext(u *appctx.UserContext) MeResponse {
	return MeResponse{
		UserID:   u.UserID,
		Email:    u.Email,
		Role:     string(u.Role),
		AgencyID: u.AgencyID,
	}
}
