package agency

import (
	"context"

	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/security"
	"sanhaja/pkg/logger"
)

// Service provides business logic for the Agency catalog.
type Service struct {
	repo     Repository
	resolver *security.Resolver
}

// NewService creates a new Agency service.
func NewService(repo Repository, resolver *security.Resolver) *Service {
	return &Service{repo: repo, resolver: resolver}
}

// Create registers a new agency. Super admin only.
func (s *Service) Create(ctx context.Context, caller *appctx.UserContext, a *Agency) error {
	if err := security.Require(security.OpManageAgencies, caller.Role); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return err
	}
	logger.Info(ctx, "agency created", "id", a.ID, "name", a.Name)
	return nil
}

// List returns every agency the caller may see. Used by clients purely to
// populate filter choices, so any authenticated role may call it; staff
// still only see their own agency.
func (s *Service) List(ctx context.Context, caller *appctx.UserContext) ([]*Agency, error) {
	if err := security.Require(security.OpListAgencies, caller.Role); err != nil {
		return nil, err
	}
	decision, err := s.resolver.Resolve(ctx, caller, security.Filter{})
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, decision.Tenants)
}
