package payment

import (
	"context"
	"time"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/audit"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/internal/core/sequence"
	"sanhaja/internal/core/tx"
	"sanhaja/internal/core/types"
	"sanhaja/internal/domain/invoice"
	"sanhaja/pkg/logger"
)

// Service provides business logic for payments. Recording a payment and
// resettling the invoice happen in one transaction.
type Service struct {
	repo     Repository
	invoices invoice.Repository
	resolver *security.Resolver
	numbers  sequence.Generator
	txm      tx.Manager
	auditor  audit.Recorder
}

// NewService creates a new Payment service.
func NewService(repo Repository, invoices invoice.Repository, resolver *security.Resolver, numbers sequence.Generator, txm tx.Manager, auditor audit.Recorder) *Service {
	return &Service{repo: repo, invoices: invoices, resolver: resolver, numbers: numbers, txm: txm, auditor: auditor}
}

// CreateInput carries caller-supplied payment fields.
type CreateInput struct {
	InvoiceID   id.ID
	Method      Method
	Amount      types.Money
	PaymentDate time.Time
}

// Create records a payment against an invoice inside the caller's scope and
// recomputes the invoice settlement status: paid once the total covers
// amount_ttc, partial for anything above zero.
func (s *Service) Create(ctx context.Context, caller *appctx.UserContext, in CreateInput) (*Payment, error) {
	if err := security.Require(security.OpManageLedger, caller.Role); err != nil {
		return nil, err
	}

	inv, err := s.invoices.GetByID(ctx, in.InvoiceID)
	if err != nil {
		return nil, err
	}

	decision, err := s.resolver.Resolve(ctx, caller, security.Filter{})
	if err != nil {
		return nil, err
	}
	if !decision.Tenants.Contains(inv.AgencyID) {
		// Hide foreign invoices entirely.
		return nil, apperror.NewNotFound("invoice", in.InvoiceID)
	}

	p := &Payment{
		ID:          id.New(),
		InvoiceID:   inv.ID,
		Method:      in.Method,
		Amount:      in.Amount,
		PaymentDate: in.PaymentDate,
		AgencyID:    inv.AgencyID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := p.Validate(ctx); err != nil {
		return nil, err
	}

	p.PaymentNo, err = s.numbers.Next(ctx, inv.AgencyID, sequence.PrefixPayment)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	err = s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, p); err != nil {
			return err
		}

		total, err := s.repo.TotalForInvoice(ctx, inv.ID)
		if err != nil {
			return err
		}

		status := settlementStatus(total, inv.AmountTTC(), inv.Status)
		if status != inv.Status {
			if err := s.invoices.SetStatus(ctx, inv.ID, status); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Best-effort; a failed audit write never fails the payment.
	auditErr := s.auditor.Record(ctx, audit.Entry{
		EntityType: "payment",
		EntityID:   p.ID,
		AgencyID:   p.AgencyID,
		Action:     audit.ActionCreate,
		Changes: map[string]any{
			"payment_no": p.PaymentNo,
			"invoice_id": inv.ID.String(),
			"amount":     p.Amount.String(),
		},
	})
	if auditErr != nil {
		logger.Warn(ctx, "audit write failed", "entity_id", p.ID, "error", auditErr)
	}

	logger.Info(ctx, "payment recorded",
		"id", p.ID,
		"payment_no", p.PaymentNo,
		"invoice_id", inv.ID,
	)
	return p, nil
}

// List returns payments inside the caller's scope.
func (s *Service) List(ctx context.Context, caller *appctx.UserContext, f security.Filter) ([]*Payment, error) {
	decision, err := s.resolver.Resolve(ctx, caller, f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, decision.Tenants)
}

// settlementStatus derives the invoice status from the paid total.
// A paid invoice never reverts.
func settlementStatus(total, amountTTC types.Money, current invoice.Status) invoice.Status {
	switch {
	case current == invoice.StatusPaid:
		return current
	case total.GreaterThanOrEqual(amountTTC):
		return invoice.StatusPaid
	case total.IsPositive():
		return invoice.StatusPartial
	default:
		return current
	}
}
