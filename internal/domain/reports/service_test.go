package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanhaja/internal/core/apperror"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/internal/core/types"
	"sanhaja/internal/domain/agency"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type repoStub struct {
	salesRows   []SalesRow
	agingRows   []AgingRow
	summaryRows []SummaryRow

	lastScope     security.TenantScope
	lastLayout    string
	lastPerAgency bool
}

func (r *repoStub) SalesBuckets(_ context.Context, scope security.TenantScope, layout string, _ Window, perAgency bool) ([]SalesRow, error) {
	r.lastScope = scope
	r.lastLayout = layout
	r.lastPerAgency = perAgency
	return r.salesRows, nil
}

func (r *repoStub) AgingInvoices(_ context.Context, scope security.TenantScope) ([]AgingRow, error) {
	r.lastScope = scope
	return r.agingRows, nil
}

func (r *repoStub) Summary(_ context.Context, scope security.TenantScope, _ Window, perAgency bool) ([]SummaryRow, error) {
	r.lastScope = scope
	r.lastPerAgency = perAgency
	return r.summaryRows, nil
}

type agenciesStub struct {
	list []*agency.Agency
}

func (a *agenciesStub) Create(context.Context, *agency.Agency) error { return nil }

func (a *agenciesStub) GetByID(_ context.Context, agencyID id.ID) (*agency.Agency, error) {
	for _, ag := range a.list {
		if ag.ID == agencyID {
			return ag, nil
		}
	}
	return nil, apperror.NewNotFound("agency", agencyID)
}

func (a *agenciesStub) Exists(_ context.Context, agencyID id.ID) (bool, error) {
	for _, ag := range a.list {
		if ag.ID == agencyID {
			return true, nil
		}
	}
	return false, nil
}

func (a *agenciesStub) List(_ context.Context, scope security.TenantScope) ([]*agency.Agency, error) {
	var out []*agency.Agency
	for _, ag := range a.list {
		if scope.Contains(ag.ID) {
			out = append(out, ag)
		}
	}
	return out, nil
}

type fixture struct {
	svc      *Service
	repo     *repoStub
	casaID   id.ID
	rabatID  id.ID
	casaUser *appctx.UserContext
	admin    *appctx.UserContext
}

func newFixture() *fixture {
	casa := &agency.Agency{ID: id.New(), Name: "Casablanca"}
	rabat := &agency.Agency{ID: id.New(), Name: "Rabat"}
	agencies := &agenciesStub{list: []*agency.Agency{casa, rabat}}
	repo := &repoStub{}
	return &fixture{
		svc:     NewService(repo, agencies, security.NewResolver(agencies)),
		repo:    repo,
		casaID:  casa.ID,
		rabatID: rabat.ID,
		casaUser: &appctx.UserContext{
			UserID:   id.New().String(),
			Role:     appctx.RoleAgencyStaff,
			AgencyID: casa.ID.String(),
		},
		admin: &appctx.UserContext{UserID: id.New().String(), Role: appctx.RoleSuperAdmin},
	}
}

func windowParams(kind Kind) Params {
	return Params{Kind: kind, Start: mustDate("2026-01-01"), End: mustDate("2026-01-31")}
}

func TestGenerate_AdminDefaultIsGrouped(t *testing.T) {
	f := newFixture()
	f.repo.salesRows = []SalesRow{
		{AgencyID: f.casaID, Period: "2026-01-05", Sales: types.MustMoney("100"), Bookings: 1},
	}

	out, err := f.svc.Generate(context.Background(), f.admin, windowParams(KindDailySales))
	require.NoError(t, err)

	rep, ok := out.(*Report[SalesRow, SalesTotals])
	require.True(t, ok)

	assert.True(t, f.repo.lastPerAgency)
	assert.True(t, f.repo.lastScope.All)
	assert.Equal(t, "Daily Sales Report", rep.Title)
	require.Len(t, rep.AgenciesData, 2, "every agency in scope appears")
	require.NotNil(t, rep.GrandTotals)
	assert.True(t, rep.GrandTotals.Sales.Equal(types.MustMoney("100")))
	assert.Nil(t, rep.Totals)
}

func TestGenerate_AdminMergedWhenGroupingOff(t *testing.T) {
	f := newFixture()
	off := false
	p := windowParams(KindMonthlySales)
	p.Filter = security.Filter{GroupByAgency: &off}
	f.repo.salesRows = []SalesRow{{Period: "2026-01", Sales: types.MustMoney("40"), Bookings: 2}}

	out, err := f.svc.Generate(context.Background(), f.admin, p)
	require.NoError(t, err)

	rep := out.(*Report[SalesRow, SalesTotals])
	assert.False(t, f.repo.lastPerAgency)
	assert.Equal(t, "Monthly Sales Report", rep.Title)
	assert.Nil(t, rep.AgenciesData)
	require.NotNil(t, rep.Totals)
	assert.True(t, rep.Totals.Sales.Equal(types.MustMoney("40")))
}

func TestGenerate_StaffAlwaysFlatAndOwnScope(t *testing.T) {
	f := newFixture()
	f.repo.salesRows = []SalesRow{
		{AgencyID: f.casaID, Period: "2026-01-10", Sales: types.MustMoney("9"), Bookings: 1},
	}

	// Staff asking for the other agency and grouped output gets neither.
	p := windowParams(KindDailySales)
	on := true
	p.Filter = security.Filter{AgencyIDs: []id.ID{f.rabatID}, GroupByAgency: &on}

	out, err := f.svc.Generate(context.Background(), f.casaUser, p)
	require.NoError(t, err)

	rep := out.(*Report[SalesRow, SalesTotals])
	assert.False(t, f.repo.lastPerAgency)
	assert.Equal(t, []id.ID{f.casaID}, f.repo.lastScope.IDs)
	assert.Nil(t, rep.AgenciesData)
	require.NotNil(t, rep.Totals)
}

func TestGenerate_SingleAgencyFilterRendersFlat(t *testing.T) {
	f := newFixture()
	p := windowParams(KindSummary)
	p.Filter = security.Filter{AgencyIDs: []id.ID{f.rabatID}}

	out, err := f.svc.Generate(context.Background(), f.admin, p)
	require.NoError(t, err)

	rep := out.(*Report[SummaryRow, SummaryTotals])
	assert.False(t, f.repo.lastPerAgency, "a singleton scope never groups")
	assert.Nil(t, rep.AgenciesData)
}

func TestGenerate_WindowValidation(t *testing.T) {
	f := newFixture()

	t.Run("missing dates", func(t *testing.T) {
		_, err := f.svc.Generate(context.Background(), f.admin, Params{Kind: KindDailySales})
		assert.True(t, apperror.IsCode(err, apperror.CodeInvalidRange))
	})

	t.Run("inverted range", func(t *testing.T) {
		p := Params{Kind: KindSummary, Start: mustDate("2026-02-01"), End: mustDate("2026-01-01")}
		_, err := f.svc.Generate(context.Background(), f.admin, p)
		assert.True(t, apperror.IsCode(err, apperror.CodeInvalidRange))
	})

	t.Run("same-day range is valid", func(t *testing.T) {
		d := mustDate("2026-01-15")
		_, err := f.svc.Generate(context.Background(), f.admin, Params{Kind: KindDailySales, Start: d, End: d})
		assert.NoError(t, err)
	})
}

func TestGenerate_UnsupportedKind(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Generate(context.Background(), f.admin, Params{Kind: Kind("weekly_sales")})
	assert.True(t, apperror.IsCode(err, apperror.CodeUnsupportedReport))
}

func TestGenerate_UnknownAgencyFilter(t *testing.T) {
	f := newFixture()
	p := windowParams(KindDailySales)
	p.Filter = security.Filter{AgencyIDs: []id.ID{id.New()}}

	_, err := f.svc.Generate(context.Background(), f.admin, p)
	assert.True(t, apperror.IsCode(err, apperror.CodeInvalidTenant))
}

func TestGenerate_AgingIgnoresWindowAndSorts(t *testing.T) {
	f := newFixture()
	now := time.Now()
	f.repo.agingRows = []AgingRow{
		{AgencyID: f.casaID, InvoiceID: id.New(), InvoiceNo: "INV-000002", Amount: types.MustMoney("50"), DueDate: now.AddDate(0, 0, -2)},
		{AgencyID: f.casaID, InvoiceID: id.New(), InvoiceNo: "INV-000001", Amount: types.MustMoney("30"), DueDate: now.AddDate(0, 0, -10)},
		{AgencyID: f.casaID, InvoiceID: id.New(), InvoiceNo: "INV-000003", Amount: types.MustMoney("20"), DueDate: now.AddDate(0, 0, 5)},
	}

	// No window supplied; aging must not require one.
	out, err := f.svc.Generate(context.Background(), f.casaUser, Params{Kind: KindAging})
	require.NoError(t, err)

	rep := out.(*Report[AgingRow, AgingTotals])
	assert.Nil(t, rep.Period)
	require.Len(t, rep.Data, 3)

	assert.Equal(t, "INV-000001", rep.Data[0].InvoiceNo, "most overdue first")
	assert.GreaterOrEqual(t, rep.Data[0].Days, 9)
	assert.Equal(t, 0, rep.Data[2].Days, "future due date clamps to zero")

	require.NotNil(t, rep.Totals)
	assert.True(t, rep.Totals.Amount.Equal(types.MustMoney("100")))
	assert.EqualValues(t, 3, rep.Totals.Invoices)
}

func TestGenerate_SummaryGrouped(t *testing.T) {
	f := newFixture()
	f.repo.summaryRows = []SummaryRow{
		{AgencyID: f.casaID, Sales: types.MustMoney("120"), Bookings: 3, Invoices: 2},
	}

	out, err := f.svc.Generate(context.Background(), f.admin, windowParams(KindSummary))
	require.NoError(t, err)

	rep := out.(*Report[SummaryRow, SummaryTotals])
	require.Len(t, rep.AgenciesData, 2)
	require.NotNil(t, rep.GrandTotals)
	assert.True(t, rep.GrandTotals.Sales.Equal(types.MustMoney("120")))
	assert.EqualValues(t, 2, rep.GrandTotals.Invoices)
	require.NotNil(t, rep.Period)
	assert.Equal(t, "2026-01-01", rep.Period.StartDate)
	assert.Equal(t, "2026-01-31", rep.Period.EndDate)
}

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"daily_sales", "monthly_sales", "aging", "summary"} {
		k, err := ParseKind(valid)
		require.NoError(t, err)
		assert.Equal(t, Kind(valid), k)
	}

	_, err := ParseKind("profit")
	assert.True(t, apperror.IsCode(err, apperror.CodeUnsupportedReport))
}
