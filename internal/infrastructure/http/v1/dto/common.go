// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"strings"
	"time"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a required calendar date parameter.
func ParseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperror.NewValidation("invalid date").
			WithDetail("field", field).
			WithDetail("expected", DateLayout)
	}
	return t, nil
}

// ScopeQuery carries the agency scoping parameters shared by reports,
// dashboard and list endpoints.
type ScopeQuery struct {
	Agencies      string `form:"agencies"`
	GroupByAgency *bool  `form:"group_by_agency"`
}

// ToFilter translates the query into a security filter. "all" and the empty
// string mean no restriction.
func (q ScopeQuery) ToFilter() (security.Filter, error) {
	f := security.Filter{GroupByAgency: q.GroupByAgency}

	raw := strings.TrimSpace(q.Agencies)
	if raw == "" || strings.EqualFold(raw, "all") {
		return f, nil
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		agencyID, err := id.Parse(part)
		if err != nil {
			return f, apperror.NewValidation("invalid agency id").WithDetail("value", part)
		}
		f.AgencyIDs = append(f.AgencyIDs, agencyID)
	}
	return f, nil
}

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
