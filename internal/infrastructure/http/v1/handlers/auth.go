package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"sanhaja/internal/core/apperror"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
	"sanhaja/internal/domain/auth"
	"sanhaja/internal/infrastructure/http/v1/dto"
)

// AuthHandler handles authentication and user management endpoints.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		User:        dto.FromUser(result.User),
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	user, err := h.service.Me(ctx, caller)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUser(user))
}

// CreateUser handles POST /users
func (h *AuthHandler) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	u := &auth.User{
		ID:        id.New(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      appctx.Role(req.Role),
		CreatedAt: time.Now().UTC(),
	}
	if req.AgencyID != nil {
		agencyID, err := id.Parse(*req.AgencyID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid agency id").WithDetail("field", "agencyId"))
			return
		}
		u.AgencyID = &agencyID
	}

	if err := h.service.CreateUser(ctx, caller, u, req.Password); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromUser(u))
}

// ListUsers handles GET /users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	users, err := h.service.ListUsers(ctx, caller)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUsers(users))
}
