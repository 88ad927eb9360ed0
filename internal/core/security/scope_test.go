package security

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanhaja/internal/core/apperror"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
)

type dirStub struct {
	existing map[id.ID]bool
	err      error
	calls    int
}

func (d *dirStub) Exists(_ context.Context, agencyID id.ID) (bool, error) {
	d.calls++
	if d.err != nil {
		return false, d.err
	}
	return d.existing[agencyID], nil
}

func staffCaller(agencyID id.ID) *appctx.UserContext {
	return &appctx.UserContext{
		UserID:   id.New().String(),
		Role:     appctx.RoleAgencyStaff,
		AgencyID: agencyID.String(),
	}
}

func accountantCaller() *appctx.UserContext {
	return &appctx.UserContext{
		UserID: id.New().String(),
		Role:   appctx.RoleGeneralAccountant,
	}
}

func boolPtr(b bool) *bool { return &b }

func TestResolve_StaffIgnoresFilter(t *testing.T) {
	own := id.New()
	other := id.New()
	dir := &dirStub{existing: map[id.ID]bool{own: true, other: true}}
	r := NewResolver(dir)

	// The filter asks for another agency and grouped output; both are ignored.
	d, err := r.Resolve(context.Background(), staffCaller(own), Filter{
		AgencyIDs:     []id.ID{other},
		GroupByAgency: boolPtr(true),
	})
	require.NoError(t, err)

	assert.False(t, d.Tenants.All)
	assert.Equal(t, []id.ID{own}, d.Tenants.IDs)
	assert.False(t, d.GroupByTenant)
	assert.Zero(t, dir.calls, "staff resolution must not hit the directory")
}

func TestResolve_StaffWithoutAgency(t *testing.T) {
	r := NewResolver(&dirStub{})
	caller := &appctx.UserContext{UserID: id.New().String(), Role: appctx.RoleAgencyStaff}

	_, err := r.Resolve(context.Background(), caller, Filter{})
	assert.True(t, apperror.IsCode(err, apperror.CodeForbidden))
}

func TestResolve_CrossAgencyDefaults(t *testing.T) {
	r := NewResolver(&dirStub{})

	d, err := r.Resolve(context.Background(), accountantCaller(), Filter{})
	require.NoError(t, err)

	assert.True(t, d.Tenants.All)
	assert.True(t, d.GroupByTenant, "grouping defaults to true for cross-agency roles")
}

func TestResolve_GroupByExplicitFalse(t *testing.T) {
	r := NewResolver(&dirStub{})

	d, err := r.Resolve(context.Background(), accountantCaller(), Filter{GroupByAgency: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, d.GroupByTenant)
}

func TestResolve_FilterDedupesAndSorts(t *testing.T) {
	a := id.New()
	b := id.New()
	dir := &dirStub{existing: map[id.ID]bool{a: true, b: true}}
	r := NewResolver(dir)

	d, err := r.Resolve(context.Background(), accountantCaller(), Filter{
		AgencyIDs: []id.ID{b, a, b, a},
	})
	require.NoError(t, err)

	require.Len(t, d.Tenants.IDs, 2)
	assert.True(t, d.Tenants.IDs[0].String() < d.Tenants.IDs[1].String())
	assert.Equal(t, 2, dir.calls, "each unique agency is checked once")
}

func TestResolve_UnknownAgencyInFilter(t *testing.T) {
	known := id.New()
	dir := &dirStub{existing: map[id.ID]bool{known: true}}
	r := NewResolver(dir)

	_, err := r.Resolve(context.Background(), accountantCaller(), Filter{
		AgencyIDs: []id.ID{known, id.New()},
	})

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidTenant, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus)
	// The message must not reveal anything about the agency.
	assert.NotContains(t, appErr.Message, known.String())
}

func TestResolve_DirectoryError(t *testing.T) {
	dir := &dirStub{err: errors.New("connection refused")}
	r := NewResolver(dir)

	_, err := r.Resolve(context.Background(), accountantCaller(), Filter{AgencyIDs: []id.ID{id.New()}})
	assert.True(t, apperror.IsCode(err, apperror.CodeInternal))
}

func TestResolve_NilCaller(t *testing.T) {
	r := NewResolver(&dirStub{})
	_, err := r.Resolve(context.Background(), nil, Filter{})
	assert.True(t, apperror.IsCode(err, apperror.CodeUnauthorized))
}

func TestOwningAgency(t *testing.T) {
	own := id.New()
	known := id.New()
	dir := &dirStub{existing: map[id.ID]bool{known: true}}
	r := NewResolver(dir)
	ctx := context.Background()

	t.Run("staff writes into own agency", func(t *testing.T) {
		foreign := id.New()
		got, err := r.OwningAgency(ctx, staffCaller(own), &foreign)
		require.NoError(t, err)
		assert.Equal(t, own, got)
	})

	t.Run("admin must name an agency", func(t *testing.T) {
		admin := &appctx.UserContext{UserID: id.New().String(), Role: appctx.RoleSuperAdmin}
		_, err := r.OwningAgency(ctx, admin, nil)
		assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
	})

	t.Run("admin with unknown agency", func(t *testing.T) {
		admin := &appctx.UserContext{UserID: id.New().String(), Role: appctx.RoleSuperAdmin}
		unknown := id.New()
		_, err := r.OwningAgency(ctx, admin, &unknown)
		assert.True(t, apperror.IsCode(err, apperror.CodeInvalidTenant))
	})

	t.Run("admin with known agency", func(t *testing.T) {
		admin := &appctx.UserContext{UserID: id.New().String(), Role: appctx.RoleSuperAdmin}
		got, err := r.OwningAgency(ctx, admin, &known)
		require.NoError(t, err)
		assert.Equal(t, known, got)
	})
}

func TestTenantScope(t *testing.T) {
	a := id.New()
	b := id.New()

	all := AllTenants()
	assert.True(t, all.Contains(a))
	assert.False(t, all.Singleton())

	one := Tenants(a)
	assert.True(t, one.Singleton())
	assert.True(t, one.Contains(a))
	assert.False(t, one.Contains(b))

	two := Tenants(b, a)
	assert.False(t, two.Singleton())
	assert.True(t, two.IDs[0].String() < two.IDs[1].String(), "IDs are sorted")
}
