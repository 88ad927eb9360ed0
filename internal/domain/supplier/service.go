package supplier

import (
	"context"
	"time"

	"sanhaja/internal/core/apperror"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
)

// Service provides business logic for the Supplier catalog.
type Service struct {
	repo     Repository
	resolver *security.Resolver
}

// NewService creates a new Supplier service.
func NewService(repo Repository, resolver *security.Resolver) *Service {
	return &Service{repo: repo, resolver: resolver}
}

// Create registers a supplier under the caller's agency (staff) or a named
// agency (super admin).
func (s *Service) Create(ctx context.Context, caller *appctx.UserContext, sup *Supplier, requestedAgency *id.ID) error {
	if err := security.Require(security.OpManageLedger, caller.Role); err != nil {
		return err
	}
	owner, err := s.resolver.OwningAgency(ctx, caller, requestedAgency)
	if err != nil {
		return err
	}
	sup.ID = id.New()
	sup.AgencyID = owner
	sup.CreatedAt = time.Now().UTC()
	if err := sup.Validate(ctx); err != nil {
		return err
	}
	return s.repo.Create(ctx, sup)
}

// List returns suppliers inside the caller's scope.
func (s *Service) List(ctx context.Context, caller *appctx.UserContext, f security.Filter) ([]*Supplier, error) {
	decision, err := s.resolver.Resolve(ctx, caller, f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, decision.Tenants)
}

// Update modifies a supplier the caller may see.
func (s *Service) Update(ctx context.Context, caller *appctx.UserContext, supplierID id.ID, name, supType, contact string) (*Supplier, error) {
	if err := security.Require(security.OpManageLedger, caller.Role); err != nil {
		return nil, err
	}
	existing, err := s.scoped(ctx, caller, supplierID)
	if err != nil {
		return nil, err
	}
	existing.Name = name
	existing.Type = supType
	existing.Contact = contact
	if err := existing.Validate(ctx); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a supplier the caller may see.
func (s *Service) Delete(ctx context.Context, caller *appctx.UserContext, supplierID id.ID) error {
	if err := security.Require(security.OpManageLedger, caller.Role); err != nil {
		return err
	}
	if _, err := s.scoped(ctx, caller, supplierID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, supplierID)
}

func (s *Service) scoped(ctx context.Context, caller *appctx.UserContext, supplierID id.ID) (*Supplier, error) {
	existing, err := s.repo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	decision, err := s.resolver.Resolve(ctx, caller, security.Filter{})
	if err != nil {
		return nil, err
	}
	if !decision.Tenants.Contains(existing.AgencyID) {
		return nil, apperror.NewNotFound("supplier", supplierID)
	}
	return existing, nil
}
