package handlers

import (
	"github.com/gin-gonic/gin"

	"sanhaja/internal/domain/dailyreport"
	"sanhaja/internal/infrastructure/http/v1/dto"
)

// DailyReportHandler handles the daily report workflow endpoints.
type DailyReportHandler struct {
	*BaseHandler
	service *dailyreport.Service
}

// NewDailyReportHandler creates a new daily report handler.
func NewDailyReportHandler(base *BaseHandler, service *dailyreport.Service) *DailyReportHandler {
	return &DailyReportHandler{BaseHandler: base, service: service}
}

// Submit handles POST /daily-reports
func (h *DailyReportHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.SubmitDailyReportRequest
	if !h.BindJSON(c, &req) {
		return
	}

	reportDate, err := dto.ParseDate("reportDate", req.ReportDate)
	if err != nil {
		h.Error(c, err)
		return
	}
	requestedAgency, ok := h.parseOptionalAgency(c, req.AgencyID)
	if !ok {
		return
	}

	r, err := h.service.Submit(ctx, caller, dailyreport.SubmitInput{
		ReportDate:     reportDate,
		Income:         req.Income,
		Expenses:       req.Expenses,
		CashboxBalance: req.CashboxBalance,
		Notes:          req.Notes,
		AgencyID:       requestedAgency,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromDailyReport(r))
}

// List handles GET /daily-reports
func (h *DailyReportHandler) List(c *gin.Context) {
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

	list, err := h.service.List(ctx, caller, f)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromDailyReports(list))
}

// Get handles GET /daily-reports/:id
func (h *DailyReportHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	reportID, ok := h.parseID(c)
	if !ok {
		return
	}

	r, err := h.service.Get(ctx, caller, reportID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromDailyReport(r))
}

// Approve handles PUT /daily-reports/:id/approve
func (h *DailyReportHandler) Approve(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	reportID, ok := h.parseID(c)
	if !ok {
		return
	}

	r, err := h.service.Approve(ctx, caller, reportID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromDailyReport(r))
}

// Reject handles PUT /daily-reports/:id/reject
func (h *DailyReportHandler) Reject(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	reportID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.RejectDailyReportRequest
	if !h.BindJSON(c, &req) {
		return
	}

	r, err := h.service.Reject(ctx, caller, reportID, req.Reason)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromDailyReport(r))
}
