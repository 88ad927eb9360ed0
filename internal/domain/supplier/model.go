// Package supplier provides the Supplier catalog (airlines, hotels,
// visa offices an agency books through).
package supplier

import (
	"context"
	"strings"
	"time"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
)

// Supplier represents a service provider contracted by one agency.
type Supplier struct {
	ID        id.ID     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Type      string    `db:"type" json:"type,omitempty"`
	Contact   string    `db:"contact" json:"contact,omitempty"`
	AgencyID  id.ID     `db:"agency_id" json:"agencyId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Validate checks required fields.
func (s *Supplier) Validate(ctx context.Context) error {
	if strings.TrimSpace(s.Name) == "" {
		return apperror.NewValidation("supplier name is required").WithDetail("field", "name")
	}
	if id.IsNil(s.AgencyID) {
		return apperror.NewValidation("supplier must belong to an agency").WithDetail("field", "agencyId")
	}
	return nil
}
