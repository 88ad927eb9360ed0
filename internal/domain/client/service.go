package client

import (
	"context"
	"time"

	"sanhaja/internal/core/apperror"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
)

// Service provides business logic for the Client catalog.
type Service struct {
	repo     Repository
	resolver *security.Resolver
}

// NewService creates a new Client service.
func NewService(repo Repository, resolver *security.Resolver) *Service {
	return &Service{repo: repo, resolver: resolver}
}

// Create registers a client under the caller's agency (staff) or a named
// agency (super admin).
func (s *Service) Create(ctx context.Context, caller *appctx.UserContext, c *Client, requestedAgency *id.ID) error {
	if err := security.Require(security.OpManageLedger, caller.Role); err != nil {
		return err
	}
	owner, err := s.resolver.OwningAgency(ctx, caller, requestedAgency)
	if err != nil {
		return err
	}
	c.ID = id.New()
	c.AgencyID = owner
	c.CreatedAt = time.Now().UTC()
	if err := c.Validate(ctx); err != nil {
		return err
	}
	return s.repo.Create(ctx, c)
}

// List returns clients inside the caller's scope.
func (s *Service) List(ctx context.Context, caller *appctx.UserContext, f security.Filter) ([]*Client, error) {
	decision, err := s.resolver.Resolve(ctx, caller, f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, decision.Tenants)
}

// Update modifies a client the caller may see. The owning agency never
// changes on update.
func (s *Service) Update(ctx context.Context, caller *appctx.UserContext, clientID id.ID, name, phone, cinPassport string) (*Client, error) {
	if err := security.Require(security.OpManageLedger, caller.Role); err != nil {
		return nil, err
	}
	existing, err := s.scoped(ctx, caller, clientID)
	if err != nil {
		return nil, err
	}
	existing.Name = name
	existing.Phone = phone
	existing.CinPassport = cinPassport
	if err := existing.Validate(ctx); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a client the caller may see.
func (s *Service) Delete(ctx context.Context, caller *appctx.UserContext, clientID id.ID) error {
	if err := security.Require(security.OpManageLedger, caller.Role); err != nil {
		return err
	}
	if _, err := s.scoped(ctx, caller, clientID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, clientID)
}

// scoped fetches a client and hides it behind NotFound when outside the
// caller's scope, so denial does not reveal existence.
func (s *Service) scoped(ctx context.Context, caller *appctx.UserContext, clientID id.ID) (*Client, error) {
	existing, err := s.repo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	decision, err := s.resolver.Resolve(ctx, caller, security.Filter{})
	if err != nil {
		return nil, err
	}
	if !decision.Tenants.Contains(existing.AgencyID) {
		return nil, apperror.NewNotFound("client", clientID)
	}
	return existing, nil
}
