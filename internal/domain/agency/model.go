// Package agency provides the Agency (tenant) catalog.
// An agency is an isolated business unit; every ledger row belongs to
// exactly one of them. Agencies are immutable once created.
package agency

import (
	"strings"
	"time"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
)

// Agency represents a single tenant.
type Agency struct {
	ID        id.ID     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	City      string    `db:"city" json:"city"`
	Address   string    `db:"address" json:"address,omitempty"`
	Phone     string    `db:"phone" json:"phone,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// New creates an Agency with a fresh ID.
func New(name, city, address, phone string) *Agency {
	return &Agency{
		ID:        id.New(),
		Name:      name,
		City:      city,
		Address:   address,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks required fields.
func (a *Agency) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return apperror.NewValidation("agency name is required").WithDetail("field", "name")
	}
	if strings.TrimSpace(a.City) == "" {
		return apperror.NewValidation("agency city is required").WithDetail("field", "city")
	}
	return nil
}
