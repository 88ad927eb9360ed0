package handlers

import (
	"github.com/gin-gonic/gin"

	"sanhaja/internal/domain/reports"
	"sanhaja/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles the report generation endpoint.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service}
}

// Generate handles GET /reports
func (h *ReportsHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var q dto.ReportQuery
	if !h.BindQuery(c, &q) {
		return
	}
	params, err := q.ToParams()
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.service.Generate(ctx, caller, params)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}
