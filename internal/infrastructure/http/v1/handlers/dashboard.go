package handlers

import (
	"github.com/gin-gonic/gin"

	"sanhaja/internal/domain/dashboard"
	"sanhaja/internal/infrastructure/http/v1/dto"
)

// DashboardHandler handles the dashboard stats endpoint.
type DashboardHandler struct {
	*BaseHandler
	service *dashboard.Service
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(base *BaseHandler, service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{BaseHandler: base, service: service}
}

// Stats handles GET /dashboard
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var q dto.ScopeQuery
	if !h.BindQuery(c, &q) {
		return
	}
	f, err := q.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	stats, err := h.service.Stats(ctx, caller, f)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, stats)
}
