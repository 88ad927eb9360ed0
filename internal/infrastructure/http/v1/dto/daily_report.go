package dto

import (
	"time"

	"sanhaja/internal/core/types"
	"sanhaja/internal/domain/dailyreport"
)

// SubmitDailyReportRequest for POST /daily-reports.
type SubmitDailyReportRequest struct {
	ReportDate     string      `json:"reportDate" binding:"required"`
	Income         types.Money `json:"income"`
	Expenses       types.Money `json:"expenses"`
	CashboxBalance types.Money `json:"cashboxBalance"`
	Notes          string      `json:"notes"`
	AgencyID       *string     `json:"agencyId"`
}

// RejectDailyReportRequest for PUT /daily-reports/:id/reject.
// The reason is optional; an absent field rejects with an empty reason.
type RejectDailyReportRequest struct {
	Reason string `json:"reason"`
}

// DailyReportResponse contains daily report fields.
type DailyReportResponse struct {
	ID              string      `json:"id"`
	AgencyID        string      `json:"agencyId"`
	ReportDate      string      `json:"reportDate"`
	Income          types.Money `json:"income"`
	Expenses        types.Money `json:"expenses"`
	CashboxBalance  types.Money `json:"cashboxBalance"`
	Notes           string      `json:"notes,omitempty"`
	Status          string      `json:"status"`
	RejectionReason string      `json:"rejectionReason,omitempty"`
	CreatedBy       string      `json:"createdBy"`
	ApprovedBy      *string     `json:"approvedBy,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	ApprovedAt      *time.Time  `json:"approvedAt,omitempty"`
}

// FromDailyReport creates DailyReportResponse from dailyreport.DailyReport.
func FromDailyReport(r *dailyreport.DailyReport) DailyReportResponse {
	resp := DailyReportResponse{
		ID:              r.ID.String(),
		AgencyID:        r.AgencyID.String(),
		ReportDate:      r.ReportDate.Format(DateLayout),
		Income:          r.Income,
		Expenses:        r.Expenses,
		CashboxBalance:  r.CashboxBalance,
		Notes:           r.Notes,
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
		CreatedBy:       r.CreatedBy.String(),
		CreatedAt:       r.CreatedAt,
		ApprovedAt:      r.ApprovedAt,
	}
	if r.ApprovedBy != nil {
		s := r.ApprovedBy.String()
		resp.ApprovedBy = &s
	}
	return resp
}

// FromDailyReports maps a daily report list.
func FromDailyReports(list []*dailyreport.DailyReport) []DailyReportResponse {
	out := make([]DailyReportResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDailyReport(r))
	}
	return out
}
