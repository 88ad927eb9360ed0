package booking

import (
	"context"
	"time"

	"sanhaja/internal/core/apperror"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/pkg/logger"
)

// Service provides business logic for bookings.
type Service struct {
	repo     Repository
	resolver *security.Resolver
}

// NewService creates a new Booking service.
func NewService(repo Repository, resolver *security.Resolver) *Service {
	return &Service{repo: repo, resolver: resolver}
}

// Create records a new booking under the owning agency.
func (s *Service) Create(ctx context.Context, caller *appctx.UserContext, b *Booking, requestedAgency *id.ID) error {
	if err := security.Require(security.OpManageLedger, caller.Role); err != nil {
		return err
	}
	owner, err := s.resolver.OwningAgency(ctx, caller, requestedAgency)
	if err != nil {
		return err
	}
	b.ID = id.New()
	b.AgencyID = owner
	b.CreatedAt = time.Now().UTC()
	if err := b.Validate(ctx); err != nil {
		return err
	}

	ok, err := s.repo.ReferencesAgency(ctx, b.ClientID, b.SupplierID, owner)
	if err != nil {
		return err
	}
	if !ok {
		// Do not reveal whether the referenced rows exist elsewhere.
		return apperror.NewValidation("client or supplier not found in agency")
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return err
	}
	logger.Info(ctx, "booking created", "id", b.ID, "ref", b.Ref, "agency_id", b.AgencyID)
	return nil
}

// List returns bookings inside the caller's scope.
func (s *Service) List(ctx context.Context, caller *appctx.UserContext, f security.Filter) ([]*Booking, error) {
	decision, err := s.resolver.Resolve(ctx, caller, f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, decision.Tenants)
}
