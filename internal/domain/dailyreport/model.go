// Package dailyreport provides the end-of-day cashbox report and its
// submit/approve/reject workflow.
package dailyreport

import (
	"context"
	"time"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/types"
)

// Status is the review state of a daily report.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// DailyReport is one agency's cashbox report for a calendar date. At most one
// report exists per agency and date.
type DailyReport struct {
	ID              id.ID       `db:"id" json:"id"`
	AgencyID        id.ID       `db:"agency_id" json:"agencyId"`
	ReportDate      time.Time   `db:"report_date" json:"reportDate"`
	Income          types.Money `db:"income" json:"income"`
	Expenses        types.Money `db:"expenses" json:"expenses"`
	CashboxBalance  types.Money `db:"cashbox_balance" json:"cashboxBalance"`
	Notes           string      `db:"notes" json:"notes,omitempty"`
	Status          Status      `db:"status" json:"status"`
	RejectionReason string      `db:"rejection_reason" json:"rejectionReason,omitempty"`
	CreatedBy       id.ID       `db:"created_by" json:"createdBy"`
	ApprovedBy      *id.ID      `db:"approved_by" json:"approvedBy,omitempty"`
	CreatedAt       time.Time   `db:"created_at" json:"createdAt"`
	ApprovedAt      *time.Time  `db:"approved_at" json:"approvedAt,omitempty"`
}

// Validate checks required fields.
func (r *DailyReport) Validate(ctx context.Context) error {
	if id.IsNil(r.AgencyID) {
		return apperror.NewValidation("daily report must belong to an agency").WithDetail("field", "agencyId")
	}
	if r.ReportDate.IsZero() {
		return apperror.NewValidation("report date is required").WithDetail("field", "reportDate")
	}
	if r.Income.IsNegative() {
		return apperror.NewValidation("income cannot be negative").WithDetail("field", "income")
	}
	if r.Expenses.IsNegative() {
		return apperror.NewValidation("expenses cannot be negative").WithDetail("field", "expenses")
	}
	if !r.Status.Valid() {
		return apperror.NewValidation("unknown report status").WithDetail("field", "status").WithDetail("value", string(r.Status))
	}
	return nil
}
