package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanhaja/internal/core/id"
	"sanhaja/internal/core/types"
)

func salesFold(t SalesTotals, r SalesRow) SalesTotals {
	return t.Plus(SalesTotals{Sales: r.Sales, Bookings: r.Bookings})
}

func TestAssemble_Flat(t *testing.T) {
	aid := id.New()
	rows := []SalesRow{
		{AgencyID: aid, Period: "2026-01-01", Sales: types.MustMoney("100.50"), Bookings: 2},
		{AgencyID: aid, Period: "2026-01-02", Sales: types.MustMoney("49.50"), Bookings: 1},
	}

	rep := assemble("Daily Sales Report", nil, false, nil, rows,
		func(r SalesRow) id.ID { return r.AgencyID }, salesFold)

	require.NotNil(t, rep.Totals)
	assert.True(t, rep.Totals.Sales.Equal(types.MustMoney("150")))
	assert.EqualValues(t, 3, rep.Totals.Bookings)
	assert.Len(t, rep.Data, 2)
	assert.Nil(t, rep.AgenciesData)
	assert.Nil(t, rep.GrandTotals)
}

func TestAssemble_FlatEmpty(t *testing.T) {
	rep := assemble("Daily Sales Report", nil, false, nil, nil,
		func(r SalesRow) id.ID { return r.AgencyID }, salesFold)

	require.NotNil(t, rep.Data, "empty data renders as [], not null")
	assert.Empty(t, rep.Data)
	require.NotNil(t, rep.Totals)
	assert.True(t, rep.Totals.Sales.IsZero())
}

func TestAssemble_GroupedGrandTotalsFromGroupTotals(t *testing.T) {
	a := id.New()
	b := id.New()
	refs := []AgencyRef{{ID: a, Name: "Casablanca"}, {ID: b, Name: "Rabat"}}
	rows := []SalesRow{
		{AgencyID: a, Period: "2026-01-01", Sales: types.MustMoney("10"), Bookings: 1},
		{AgencyID: b, Period: "2026-01-01", Sales: types.MustMoney("20"), Bookings: 2},
		{AgencyID: a, Period: "2026-01-02", Sales: types.MustMoney("5"), Bookings: 0},
	}

	rep := assemble("Daily Sales Report", nil, true, refs, rows,
		func(r SalesRow) id.ID { return r.AgencyID }, salesFold)

	assert.Nil(t, rep.Data)
	assert.Nil(t, rep.Totals)
	require.Len(t, rep.AgenciesData, 2)

	casa := rep.AgenciesData[0]
	assert.Equal(t, "Casablanca", casa.AgencyName)
	assert.Len(t, casa.Data, 2)
	assert.True(t, casa.Totals.Sales.Equal(types.MustMoney("15")))

	rabat := rep.AgenciesData[1]
	assert.True(t, rabat.Totals.Sales.Equal(types.MustMoney("20")))

	// Grand totals equal the sum of the group totals exactly.
	want := casa.Totals.Plus(rabat.Totals)
	require.NotNil(t, rep.GrandTotals)
	assert.True(t, rep.GrandTotals.Sales.Equal(want.Sales))
	assert.Equal(t, want.Bookings, rep.GrandTotals.Bookings)
}

func TestAssemble_GroupedZeroFillsIdleAgencies(t *testing.T) {
	busy := id.New()
	idle := id.New()
	refs := []AgencyRef{{ID: idle, Name: "Agadir"}, {ID: busy, Name: "Fes"}}
	rows := []SalesRow{
		{AgencyID: busy, Period: "2026-02-01", Sales: types.MustMoney("7"), Bookings: 1},
	}

	rep := assemble("Daily Sales Report", nil, true, refs, rows,
		func(r SalesRow) id.ID { return r.AgencyID }, salesFold)

	require.Len(t, rep.AgenciesData, 2)
	g := rep.AgenciesData[0]
	assert.Equal(t, idle, g.AgencyID)
	require.NotNil(t, g.Data, "idle agency gets [], not null")
	assert.Empty(t, g.Data)
	assert.True(t, g.Totals.Sales.IsZero())
}

func TestAssemble_GroupOrderByNameThenID(t *testing.T) {
	a := id.New()
	b := id.New()
	lo, hi := a, b
	if hi.String() < lo.String() {
		lo, hi = hi, lo
	}
	refs := []AgencyRef{
		{ID: hi, Name: "Same"},
		{ID: lo, Name: "Same"},
	}

	rep := assemble("Summary Report", nil, true, refs, nil,
		func(r SalesRow) id.ID { return r.AgencyID }, salesFold)

	require.Len(t, rep.AgenciesData, 2)
	assert.Equal(t, lo, rep.AgenciesData[0].AgencyID)
	assert.Equal(t, hi, rep.AgenciesData[1].AgencyID)
}

func TestDaysOverdue(t *testing.T) {
	asOf := mustDate("2026-03-10")

	assert.Equal(t, 0, daysOverdue(mustDate("2026-03-15"), asOf), "not yet due")
	assert.Equal(t, 0, daysOverdue(mustDate("2026-03-10"), asOf), "due today")
	assert.Equal(t, 3, daysOverdue(mustDate("2026-03-07"), asOf))
}
