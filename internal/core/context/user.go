// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// Role is the platform-wide user role.
// Exactly three roles exist; visibility across agencies depends on them.
type Role string

const (
	// RoleSuperAdmin manages agencies and users and sees every agency.
	RoleSuperAdmin Role = "super_admin"

	// RoleGeneralAccountant approves daily reports and sees every agency.
	RoleGeneralAccountant Role = "general_accountant"

	// RoleAgencyStaff enters data and sees only its own agency.
	RoleAgencyStaff Role = "agency_staff"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleGeneralAccountant, RoleAgencyStaff:
		return true
	}
	return false
}

// CrossAgency reports whether the role may read data of every agency.
func (r Role) CrossAgency() bool {
	return r == RoleSuperAdmin || r == RoleGeneralAccountant
}

// UserContext contains authenticated user information.
// It is resolved once at the authentication boundary and passed explicitly;
// nothing downstream ever trusts a client-supplied role or agency.
type UserContext struct {
	UserID   string
	Email    string
	Role     Role
	AgencyID string // required for agency_staff, informational otherwise
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetUserID returns user ID from context or empty string.
func GetUserID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.UserID
	}
	return ""
}

// GetAgencyID returns the caller's agency ID from context or empty string.
func GetAgencyID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.AgencyID
	}
	return ""
}
