package dto

import (
	"sanhaja/internal/domain/reports"
)

// ReportQuery carries the GET /reports parameters.
type ReportQuery struct {
	Kind      string `form:"kind"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	ScopeQuery
}

// ToParams validates the query and builds the report request.
func (q ReportQuery) ToParams() (reports.Params, error) {
	var p reports.Params

	kind, err := reports.ParseKind(q.Kind)
	if err != nil {
		return p, err
	}
	p.Kind = kind

	if p.Start, err = ParseDate("start_date", q.StartDate); err != nil {
		return p, err
	}
	if p.End, err = ParseDate("end_date", q.EndDate); err != nil {
		return p, err
	}
	if p.Filter, err = q.ToFilter(); err != nil {
		return p, err
	}
	return p, nil
}
