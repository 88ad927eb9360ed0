package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/internal/core/types"
)

type statsRepoStub struct {
	income  types.Money
	unpaid  int64
	week    int64
	cashbox types.Money

	gotScope security.TenantScope
	gotFrom  time.Time
	gotTo    time.Time
	gotSince time.Time
}

func (r *statsRepoStub) TodayIncome(_ context.Context, scope security.TenantScope, from, to time.Time) (types.Money, error) {
	r.gotScope = scope
	r.gotFrom = from
	r.gotTo = to
	return r.income, nil
}

func (r *statsRepoStub) UnpaidInvoices(_ context.Context, scope security.TenantScope) (int64, error) {
	return r.unpaid, nil
}

func (r *statsRepoStub) BookingsSince(_ context.Context, _ security.TenantScope, since time.Time) (int64, error) {
	r.gotSince = since
	return r.week, nil
}

func (r *statsRepoStub) CashboxBalance(_ context.Context, _ security.TenantScope) (types.Money, error) {
	return r.cashbox, nil
}

type dirStub struct{}

func (dirStub) Exists(context.Context, id.ID) (bool, error) { return true, nil }

func TestStats(t *testing.T) {
	repo := &statsRepoStub{
		income:  types.MustMoney("1200"),
		unpaid:  4,
		week:    9,
		cashbox: types.MustMoney("3300"),
	}
	svc := NewService(repo, security.NewResolver(dirStub{}))
	// Thursday afternoon.
	svc.now = func() time.Time { return time.Date(2026, 8, 27, 15, 30, 0, 0, time.UTC) }

	admin := &appctx.UserContext{UserID: id.New().String(), Role: appctx.RoleSuperAdmin}
	st, err := svc.Stats(context.Background(), admin, security.Filter{})
	require.NoError(t, err)

	assert.True(t, st.TodayIncome.Equal(types.MustMoney("1200")))
	assert.EqualValues(t, 4, st.UnpaidInvoices)
	assert.EqualValues(t, 9, st.WeekBookings)
	assert.True(t, st.CashboxBalance.Equal(types.MustMoney("3300")))

	assert.True(t, repo.gotScope.All)
	assert.Equal(t, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), repo.gotFrom)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), repo.gotTo)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), repo.gotSince, "week starts Monday")
}

func TestStats_StaffScope(t *testing.T) {
	repo := &statsRepoStub{}
	svc := NewService(repo, security.NewResolver(dirStub{}))

	agencyID := id.New()
	staff := &appctx.UserContext{
		UserID:   id.New().String(),
		Role:     appctx.RoleAgencyStaff,
		AgencyID: agencyID.String(),
	}

	_, err := svc.Stats(context.Background(), staff, security.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []id.ID{agencyID}, repo.gotScope.IDs)
}

func TestDaysSinceMonday(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-08-24", 0}, // Monday
		{"2026-08-27", 3}, // Thursday
		{"2026-08-30", 6}, // Sunday
	}
	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, daysSinceMonday(d), tt.date)
	}
}
