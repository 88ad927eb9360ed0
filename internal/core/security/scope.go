package security

import (
	"context"
	"sort"

	"sanhaja/internal/core/apperror"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
)

// TenantScope is the set of agencies a caller may read for one request.
type TenantScope struct {
	// All marks unrestricted cross-agency access. IDs is empty when set.
	All bool

	// IDs is the explicit allowed set, sorted for determinism.
	IDs []id.ID
}

// AllTenants returns the unrestricted scope.
func AllTenants() TenantScope {
	return TenantScope{All: true}
}

// Tenants returns a scope restricted to the given agencies.
func Tenants(ids ...id.ID) TenantScope {
	sorted := make([]id.ID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].String() < sorted[j].String() })
	return TenantScope{IDs: sorted}
}

// Singleton reports whether the scope names exactly one agency.
func (s TenantScope) Singleton() bool {
	return !s.All && len(s.IDs) == 1
}

// Contains reports whether agencyID is inside the scope.
func (s TenantScope) Contains(agencyID id.ID) bool {
	if s.All {
		return true
	}
	for _, v := range s.IDs {
		if v == agencyID {
			return true
		}
	}
	return false
}

// Decision is the output of scope resolution for one request.
type Decision struct {
	Tenants       TenantScope
	GroupByTenant bool
}

// Filter carries the caller-supplied scoping wishes of a request.
// For agency_staff both fields are ignored: staff scope is a hard
// authorization boundary, not a convenience default.
type Filter struct {
	// AgencyIDs is the requested agency set. Empty means "all".
	AgencyIDs []id.ID

	// GroupByAgency is the explicit grouping flag. Nil means role default
	// (true for cross-agency roles).
	GroupByAgency *bool
}

// AgencyDirectory answers existence checks during scope resolution.
type AgencyDirectory interface {
	Exists(ctx context.Context, agencyID id.ID) (bool, error)
}

// Resolver computes the tenant scope for a caller. It is the single
// authorization checkpoint for reads: every aggregation component takes a
// Decision from here and never re-derives tenant scope on its own.
type Resolver struct {
	dir AgencyDirectory
}

// NewResolver creates a Resolver backed by the given agency directory.
func NewResolver(dir AgencyDirectory) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve is a pure function of (role, caller agency, filter) apart from the
// directory existence lookups.
func (r *Resolver) Resolve(ctx context.Context, caller *appctx.UserContext, f Filter) (Decision, error) {
	if caller == nil {
		return Decision{}, apperror.NewUnauthorized("authentication required")
	}

	if caller.Role == appctx.RoleAgencyStaff {
		own, err := id.Parse(caller.AgencyID)
		if err != nil || id.IsNil(own) {
			// Staff accounts are created with an agency; a missing one is a
			// broken account, not a reason to widen scope.
			return Decision{}, apperror.NewForbidden("agency staff account has no agency")
		}
		return Decision{Tenants: Tenants(own), GroupByTenant: false}, nil
	}

	if !caller.Role.CrossAgency() {
		return Decision{}, apperror.NewForbidden("unknown role")
	}

	groupBy := true
	if f.GroupByAgency != nil {
		groupBy = *f.GroupByAgency
	}

	if len(f.AgencyIDs) == 0 {
		return Decision{Tenants: AllTenants(), GroupByTenant: groupBy}, nil
	}

	seen := make(map[id.ID]bool, len(f.AgencyIDs))
	ids := make([]id.ID, 0, len(f.AgencyIDs))
	for _, agencyID := range f.AgencyIDs {
		if seen[agencyID] {
			continue
		}
		seen[agencyID] = true

		ok, err := r.dir.Exists(ctx, agencyID)
		if err != nil {
			return Decision{}, apperror.NewInternal(err)
		}
		if !ok {
			return Decision{}, apperror.NewInvalidTenant()
		}
		ids = append(ids, agencyID)
	}

	return Decision{Tenants: Tenants(ids...), GroupByTenant: groupBy}, nil
}

// OwningAgency decides which agency a new ledger row belongs to.
// Staff always write into their own agency regardless of the request;
// super admins must name an existing agency explicitly.
func (r *Resolver) OwningAgency(ctx context.Context, caller *appctx.UserContext, requested *id.ID) (id.ID, error) {
	if caller == nil {
		return id.Nil(), apperror.NewUnauthorized("authentication required")
	}

	if caller.Role == appctx.RoleAgencyStaff {
		own, err := id.Parse(caller.AgencyID)
		if err != nil || id.IsNil(own) {
			return id.Nil(), apperror.NewForbidden("agency staff account has no agency")
		}
		return own, nil
	}

	if requested == nil || id.IsNil(*requested) {
		return id.Nil(), apperror.NewValidation("agency_id is required").WithDetail("field", "agencyId")
	}
	ok, err := r.dir.Exists(ctx, *requested)
	if err != nil {
		return id.Nil(), apperror.NewInternal(err)
	}
	if !ok {
		return id.Nil(), apperror.NewInvalidTenant()
	}
	return *requested, nil
}
