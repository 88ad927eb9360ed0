package invoice

import (
	"context"
	"time"

	"sanhaja/internal/core/apperror"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/internal/core/sequence"
	"sanhaja/internal/core/types"
	"sanhaja/pkg/logger"
)

// Service provides business logic for invoices.
type Service struct {
	repo     Repository
	resolver *security.Resolver
	numbers  sequence.Generator
}

// NewService creates a new Invoice service.
func NewService(repo Repository, resolver *security.Resolver, numbers sequence.Generator) *Service {
	return &Service{repo: repo, resolver: resolver, numbers: numbers}
}

// CreateInput carries caller-supplied invoice fields.
type CreateInput struct {
	ClientID id.ID
	AmountHT types.Money
	TVARate  *types.Money // nil means DefaultTVARate
	DueDate  time.Time
	AgencyID *id.ID // super admin only; ignored for staff
}

// Create issues a new invoice in pending status with a generated number.
func (s *Service) Create(ctx context.Context, caller *appctx.UserContext, in CreateInput) (*Invoice, error) {
	if err := security.Require(security.OpManageLedger, caller.Role); err != nil {
		return nil, err
	}
	owner, err := s.resolver.OwningAgency(ctx, caller, in.AgencyID)
	if err != nil {
		return nil, err
	}

	rate := DefaultTVARate
	if in.TVARate != nil {
		rate = *in.TVARate
	}

	inv := &Invoice{
		ID:        id.New(),
		ClientID:  in.ClientID,
		AgencyID:  owner,
		AmountHT:  in.AmountHT,
		TVARate:   rate,
		Status:    StatusPending,
		DueDate:   in.DueDate,
		CreatedAt: time.Now().UTC(),
	}
	if err := inv.Validate(ctx); err != nil {
		return nil, err
	}

	ok, err := s.repo.ClientBelongsTo(ctx, inv.ClientID, owner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewValidation("client not found in agency")
	}

	inv.InvoiceNo, err = s.numbers.Next(ctx, owner, sequence.PrefixInvoice)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	logger.Info(ctx, "invoice created",
		"id", inv.ID,
		"invoice_no", inv.InvoiceNo,
		"amount_ttc", inv.AmountTTC(),
	)
	return inv, nil
}

// List returns invoices inside the caller's scope.
func (s *Service) List(ctx context.Context, caller *appctx.UserContext, f security.Filter) ([]*Invoice, error) {
	decision, err := s.resolver.Resolve(ctx, caller, f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, decision.Tenants)
}
