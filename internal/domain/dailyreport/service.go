package dailyreport

import (
	"context"
	"time"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/audit"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/internal/core/types"
	"sanhaja/pkg/logger"
)

// Service provides the daily report workflow: staff submit, reviewers approve
// or reject exactly once.
type Service struct {
	repo     Repository
	resolver *security.Resolver
	auditor  audit.Recorder
}

// NewService creates a new DailyReport service.
func NewService(repo Repository, resolver *security.Resolver, auditor audit.Recorder) *Service {
	return &Service{repo: repo, resolver: resolver, auditor: auditor}
}

// SubmitInput carries caller-supplied report fields.
type SubmitInput struct {
	ReportDate     time.Time
	Income         types.Money
	Expenses       types.Money
	CashboxBalance types.Money
	Notes          string
	AgencyID       *id.ID // super admin only; ignored for staff
}

// Submit files a new pending report. Each agency may file at most one report
// per calendar date.
func (s *Service) Submit(ctx context.Context, caller *appctx.UserContext, in SubmitInput) (*DailyReport, error) {
	if err := security.Require(security.OpSubmitDailyReport, caller.Role); err != nil {
		return nil, err
	}
	owner, err := s.resolver.OwningAgency(ctx, caller, in.AgencyID)
	if err != nil {
		return nil, err
	}

	date := truncateToDate(in.ReportDate)
	taken, err := s.repo.ExistsForDate(ctx, owner, date)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.NewConflict("daily report already submitted for this date").
			WithDetail("agencyId", owner).
			WithDetail("reportDate", date.Format("2006-01-02"))
	}

	creatorID, err := id.Parse(caller.UserID)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid user identity")
	}

	r := &DailyReport{
		ID:             id.New(),
		AgencyID:       owner,
		ReportDate:     date,
		Income:         in.Income,
		Expenses:       in.Expenses,
		CashboxBalance: in.CashboxBalance,
		Notes:          in.Notes,
		Status:         StatusPending,
		CreatedBy:      creatorID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := r.Validate(ctx); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, r, audit.ActionCreate, map[string]any{
		"report_date": date.Format("2006-01-02"),
	})
	logger.Info(ctx, "daily report submitted",
		"id", r.ID,
		"agency_id", r.AgencyID,
		"report_date", date.Format("2006-01-02"),
	)
	return r, nil
}

// Approve moves a pending report to approved and records the reviewer.
func (s *Service) Approve(ctx context.Context, caller *appctx.UserContext, rid id.ID) (*DailyReport, error) {
	return s.review(ctx, caller, rid, StatusApproved, "")
}

// Reject moves a pending report to rejected. The reason is stored verbatim
// and may be empty.
func (s *Service) Reject(ctx context.Context, caller *appctx.UserContext, rid id.ID, reason string) (*DailyReport, error) {
	return s.review(ctx, caller, rid, StatusRejected, reason)
}

func (s *Service) review(ctx context.Context, caller *appctx.UserContext, rid id.ID, to Status, reason string) (*DailyReport, error) {
	if err := security.Require(security.OpReviewDailyReport, caller.Role); err != nil {
		return nil, err
	}

	reviewerID, err := id.Parse(caller.UserID)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid user identity")
	}
	now := time.Now().UTC()
	ok, err := s.repo.Transition(ctx, rid, to, reviewerID, reason, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Either the report does not exist or it already left pending. The
		// second read tells the two apart.
		r, err := s.repo.GetByID(ctx, rid)
		if err != nil {
			return nil, err
		}
		return nil, apperror.NewInvalidTransition(string(r.Status), string(to))
	}

	r, err := s.repo.GetByID(ctx, rid)
	if err != nil {
		return nil, err
	}
	action := audit.ActionApprove
	changes := map[string]any{"status": string(r.Status)}
	if to == StatusRejected {
		action = audit.ActionReject
		changes["reason"] = reason
	}
	s.recordAudit(ctx, r, action, changes)
	logger.Info(ctx, "daily report reviewed",
		"id", r.ID,
		"status", r.Status,
		"reviewer_id", reviewerID,
	)
	return r, nil
}

// List returns reports inside the caller's scope.
func (s *Service) List(ctx context.Context, caller *appctx.UserContext, f security.Filter) ([]*DailyReport, error) {
	if err := security.Require(security.OpListDailyReports, caller.Role); err != nil {
		return nil, err
	}
	decision, err := s.resolver.Resolve(ctx, caller, f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, decision.Tenants)
}

// Get returns a single report when it lies inside the caller's scope.
func (s *Service) Get(ctx context.Context, caller *appctx.UserContext, rid id.ID) (*DailyReport, error) {
	decision, err := s.resolver.Resolve(ctx, caller, security.Filter{})
	if err != nil {
		return nil, err
	}
	r, err := s.repo.GetByID(ctx, rid)
	if err != nil {
		return nil, err
	}
	if !decision.Tenants.Contains(r.AgencyID) {
		return nil, apperror.NewNotFound("daily report", rid)
	}
	return r, nil
}

// recordAudit is best-effort; a failed audit write never fails the operation.
func (s *Service) recordAudit(ctx context.Context, r *DailyReport, action audit.Action, changes map[string]any) {
	err := s.auditor.Record(ctx, audit.Entry{
		EntityType: "daily_report",
		EntityID:   r.ID,
		AgencyID:   r.AgencyID,
		Action:     action,
		Changes:    changes,
	})
	if err != nil {
		logger.Warn(ctx, "audit write failed", "entity_id", r.ID, "error", err)
	}
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
