// Package reports builds the cross-agency management reports: sales by day
// or month, invoice aging and the period summary.
package reports

import (
	"time"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/types"
)

// Kind selects the report to generate.
type Kind string

const (
	KindDailySales   Kind = "daily_sales"
	KindMonthlySales Kind = "monthly_sales"
	KindAging        Kind = "aging"
	KindSummary      Kind = "summary"
)

// ParseKind validates a caller-supplied report kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindDailySales, KindMonthlySales, KindAging, KindSummary:
		return k, nil
	}
	return "", apperror.NewUnsupportedReportType(s)
}

// Bucket layouts for period keys.
const (
	bucketDaily   = "2006-01-02"
	bucketMonthly = "2006-01"
)

// Window is an inclusive date range.
type Window struct {
	Start time.Time
	End   time.Time
}

// Period is the echoed report window.
type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// SalesRow is one period bucket of booking sales. Buckets with no bookings
// are omitted, never zero-filled.
type SalesRow struct {
	AgencyID id.ID       `db:"agency_id" json:"-"`
	Period   string      `db:"period" json:"period"`
	Sales    types.Money `db:"sales" json:"sales"`
	Bookings int64       `db:"bookings" json:"bookings"`
}

// SalesTotals accumulates sales rows.
type SalesTotals struct {
	Sales    types.Money `json:"sales"`
	Bookings int64       `json:"bookings"`
}

// Plus returns the element-wise sum.
func (t SalesTotals) Plus(o SalesTotals) SalesTotals {
	return SalesTotals{Sales: t.Sales.Add(o.Sales), Bookings: t.Bookings + o.Bookings}
}

// AgingRow is one pending invoice with its overdue age.
type AgingRow struct {
	AgencyID   id.ID       `db:"agency_id" json:"-"`
	InvoiceID  id.ID       `db:"invoice_id" json:"invoice_id"`
	InvoiceNo  string      `db:"invoice_no" json:"invoice_no"`
	ClientName string      `db:"client_name" json:"client_name"`
	Amount     types.Money `db:"amount" json:"amount"`
	DueDate    time.Time   `db:"due_date" json:"due_date"`
	Days       int         `db:"-" json:"days_overdue"`
}

// AgingTotals accumulates aging rows.
type AgingTotals struct {
	Amount   types.Money `json:"amount"`
	Invoices int64       `json:"invoices"`
}

// Plus returns the element-wise sum.
func (t AgingTotals) Plus(o AgingTotals) AgingTotals {
	return AgingTotals{Amount: t.Amount.Add(o.Amount), Invoices: t.Invoices + o.Invoices}
}

// SummaryRow is the condensed activity of one agency over the window.
type SummaryRow struct {
	AgencyID id.ID       `db:"agency_id" json:"-"`
	Sales    types.Money `db:"sales" json:"sales"`
	Bookings int64       `db:"bookings" json:"bookings"`
	Invoices int64       `db:"invoices" json:"invoices"`
}

// SummaryTotals accumulates summary rows.
type SummaryTotals struct {
	Sales    types.Money `json:"sales"`
	Bookings int64       `json:"bookings"`
	Invoices int64       `json:"invoices"`
}

// Plus returns the element-wise sum.
func (t SummaryTotals) Plus(o SummaryTotals) SummaryTotals {
	return SummaryTotals{
		Sales:    t.Sales.Add(o.Sales),
		Bookings: t.Bookings + o.Bookings,
		Invoices: t.Invoices + o.Invoices,
	}
}

// AgencyGroup is one agency's slice of a grouped report.
type AgencyGroup[R any, T any] struct {
	AgencyID   id.ID  `json:"agency_id"`
	AgencyName string `json:"agency_name"`
	Data       []R    `json:"data"`
	Totals     T      `json:"totals"`
}

// Report is the response shape shared by all kinds. Exactly one of
// (Data, Totals) or (AgenciesData, GrandTotals) is populated.
type Report[R any, T any] struct {
	Title        string              `json:"title"`
	Period       *Period             `json:"period,omitempty"`
	Data         []R                 `json:"data,omitempty"`
	Totals       *T                  `json:"totals,omitempty"`
	AgenciesData []AgencyGroup[R, T] `json:"agencies_data,omitempty"`
	GrandTotals  *T                  `json:"grand_totals,omitempty"`
}
