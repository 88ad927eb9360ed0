package handlers

import (
	"github.com/gin-gonic/gin"

	"sanhaja/internal/domain/agency"
	"sanhaja/internal/infrastructure/http/v1/dto"
)

// AgencyHandler handles agency endpoints.
type AgencyHandler struct {
	*BaseHandler
	service *agency.Service
}

// NewAgencyHandler creates a new agency handler.
func NewAgencyHandler(base *BaseHandler, service *agency.Service) *AgencyHandler {
	return &AgencyHandler{BaseHandler: base, service: service}
}

// Create handles POST /agencies
func (h *AgencyHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.CreateAgencyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	a := agency.New(req.Name, req.City, req.Address, req.Phone)
	if err := h.service.Create(ctx, caller, a); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromAgency(a))
}

// List handles GET /agencies
func (h *AgencyHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	list, err := h.service.List(ctx, caller)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromAgencies(list))
}
