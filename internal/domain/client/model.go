// Package client provides the Client catalog (travellers an agency bills).
package client

import (
	"context"
	"strings"
	"time"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
)

// Client represents a traveller registered with one agency.
type Client struct {
	ID          id.ID     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Phone       string    `db:"phone" json:"phone,omitempty"`
	CinPassport string    `db:"cin_passport" json:"cinPassport,omitempty"`
	AgencyID    id.ID     `db:"agency_id" json:"agencyId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Validate checks required fields.
func (c *Client) Validate(ctx context.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperror.NewValidation("client name is required").WithDetail("field", "name")
	}
	if id.IsNil(c.AgencyID) {
		return apperror.NewValidation("client must belong to an agency").WithDetail("field", "agencyId")
	}
	return nil
}
