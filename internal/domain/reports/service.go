package reports

import (
	"context"
	"sort"
	"time"

	"sanhaja/internal/core/apperror"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/internal/domain/agency"
	"sanhaja/pkg/logger"
)

// Service generates reports for a caller. Scope resolution happens exactly
// once per request; everything downstream trusts the decision.
type Service struct {
	repo     Repository
	agencies agency.Repository
	resolver *security.Resolver
}

// NewService creates a new reports service.
func NewService(repo Repository, agencies agency.Repository, resolver *security.Resolver) *Service {
	return &Service{repo: repo, agencies: agencies, resolver: resolver}
}

// Params carries one report request.
type Params struct {
	Kind   Kind
	Start  time.Time // zero when absent
	End    time.Time // zero when absent
	Filter security.Filter
}

// Generate dispatches to the requested report kind.
func (s *Service) Generate(ctx context.Context, caller *appctx.UserContext, p Params) (any, error) {
	if err := security.Require(security.OpViewReports, caller.Role); err != nil {
		return nil, err
	}

	switch p.Kind {
	case KindDailySales:
		return s.sales(ctx, caller, p, bucketDaily, "Daily Sales Report")
	case KindMonthlySales:
		return s.sales(ctx, caller, p, bucketMonthly, "Monthly Sales Report")
	case KindAging:
		return s.aging(ctx, caller, p)
	case KindSummary:
		return s.summary(ctx, caller, p)
	default:
		return nil, apperror.NewUnsupportedReportType(string(p.Kind))
	}
}

func (s *Service) sales(ctx context.Context, caller *appctx.UserContext, p Params, layout, title string) (*Report[SalesRow, SalesTotals], error) {
	w, err := requireWindow(p)
	if err != nil {
		return nil, err
	}
	decision, err := s.resolver.Resolve(ctx, caller, p.Filter)
	if err != nil {
		return nil, err
	}
	grouped := isGrouped(decision)

	rows, err := s.repo.SalesBuckets(ctx, decision.Tenants, layout, w, grouped)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Period < rows[j].Period })

	refs, err := s.scopedRefs(ctx, decision, grouped)
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "sales report generated", "layout", layout, "rows", len(rows), "grouped", grouped)
	return assemble(title, windowPeriod(w), grouped, refs, rows,
		func(r SalesRow) id.ID { return r.AgencyID },
		func(t SalesTotals, r SalesRow) SalesTotals {
			return t.Plus(SalesTotals{Sales: r.Sales, Bookings: r.Bookings})
		},
	), nil
}

// aging lists pending invoices ordered most overdue first. The date window
// is ignored for this kind.
func (s *Service) aging(ctx context.Context, caller *appctx.UserContext, p Params) (*Report[AgingRow, AgingTotals], error) {
	decision, err := s.resolver.Resolve(ctx, caller, p.Filter)
	if err != nil {
		return nil, err
	}
	grouped := isGrouped(decision)

	rows, err := s.repo.AgingInvoices(ctx, decision.Tenants)
	if err != nil {
		return nil, err
	}

	asOf := localMidnight(time.Now())
	for i := range rows {
		rows[i].Days = daysOverdue(rows[i].DueDate, asOf)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Days != rows[j].Days {
			return rows[i].Days > rows[j].Days
		}
		if rows[i].InvoiceNo != rows[j].InvoiceNo {
			return rows[i].InvoiceNo < rows[j].InvoiceNo
		}
		return rows[i].InvoiceID.String() < rows[j].InvoiceID.String()
	})

	refs, err := s.scopedRefs(ctx, decision, grouped)
	if err != nil {
		return nil, err
	}

	return assemble("Invoice Aging Report", nil, grouped, refs, rows,
		func(r AgingRow) id.ID { return r.AgencyID },
		func(t AgingTotals, r AgingRow) AgingTotals {
			return t.Plus(AgingTotals{Amount: r.Amount, Invoices: 1})
		},
	), nil
}

func (s *Service) summary(ctx context.Context, caller *appctx.UserContext, p Params) (*Report[SummaryRow, SummaryTotals], error) {
	w, err := requireWindow(p)
	if err != nil {
		return nil, err
	}
	decision, err := s.resolver.Resolve(ctx, caller, p.Filter)
	if err != nil {
		return nil, err
	}
	grouped := isGrouped(decision)

	rows, err := s.repo.Summary(ctx, decision.Tenants, w, grouped)
	if err != nil {
		return nil, err
	}

	refs, err := s.scopedRefs(ctx, decision, grouped)
	if err != nil {
		return nil, err
	}

	return assemble("Summary Report", windowPeriod(w), grouped, refs, rows,
		func(r SummaryRow) id.ID { return r.AgencyID },
		func(t SummaryTotals, r SummaryRow) SummaryTotals {
			return t.Plus(SummaryTotals{Sales: r.Sales, Bookings: r.Bookings, Invoices: r.Invoices})
		},
	), nil
}

// scopedRefs resolves the agencies that must appear as groups. Flat reports
// never need the list.
func (s *Service) scopedRefs(ctx context.Context, d security.Decision, grouped bool) ([]AgencyRef, error) {
	if !grouped {
		return nil, nil
	}
	list, err := s.agencies.List(ctx, d.Tenants)
	if err != nil {
		return nil, err
	}
	refs := make([]AgencyRef, 0, len(list))
	for _, a := range list {
		refs = append(refs, AgencyRef{ID: a.ID, Name: a.Name})
	}
	return refs, nil
}

// isGrouped reports whether the response uses the grouped shape. A scope of
// one agency always renders flat.
func isGrouped(d security.Decision) bool {
	return d.GroupByTenant && !d.Tenants.Singleton()
}

// requireWindow validates the inclusive date range of windowed kinds.
func requireWindow(p Params) (Window, error) {
	if p.Start.IsZero() || p.End.IsZero() {
		return Window{}, apperror.NewInvalidRange("start_date and end_date are required")
	}
	if p.End.Before(p.Start) {
		return Window{}, apperror.NewInvalidRange("end_date precedes start_date")
	}
	return Window{Start: p.Start, End: p.End}, nil
}

func windowPeriod(w Window) *Period {
	return &Period{
		StartDate: w.Start.Format("2006-01-02"),
		EndDate:   w.End.Format("2006-01-02"),
	}
}

func localMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
