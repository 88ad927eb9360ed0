package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/domain/reports"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("start_date", "2026-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-15", got.Format(DateLayout))

	got, err = ParseDate("start_date", "")
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "empty value parses to the zero time")

	_, err = ParseDate("start_date", "15/01/2026")
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, "start_date", appErr.Details["field"])
}

func TestScopeQueryToFilter(t *testing.T) {
	a := id.New()
	b := id.New()

	t.Run("empty means unrestricted", func(t *testing.T) {
		f, err := ScopeQuery{}.ToFilter()
		require.NoError(t, err)
		assert.Empty(t, f.AgencyIDs)
		assert.Nil(t, f.GroupByAgency)
	})

	t.Run("all keyword", func(t *testing.T) {
		f, err := ScopeQuery{Agencies: "ALL"}.ToFilter()
		require.NoError(t, err)
		assert.Empty(t, f.AgencyIDs)
	})

	t.Run("comma separated ids", func(t *testing.T) {
		f, err := ScopeQuery{Agencies: a.String() + ", " + b.String()}.ToFilter()
		require.NoError(t, err)
		assert.Equal(t, []id.ID{a, b}, f.AgencyIDs)
	})

	t.Run("grouping flag passes through", func(t *testing.T) {
		off := false
		f, err := ScopeQuery{GroupByAgency: &off}.ToFilter()
		require.NoError(t, err)
		require.NotNil(t, f.GroupByAgency)
		assert.False(t, *f.GroupByAgency)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := ScopeQuery{Agencies: "not-a-uuid"}.ToFilter()
		assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
	})
}

func TestReportQueryToParams(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		q := ReportQuery{Kind: "daily_sales", StartDate: "2026-01-01", EndDate: "2026-01-31"}
		p, err := q.ToParams()
		require.NoError(t, err)
		assert.Equal(t, reports.KindDailySales, p.Kind)
		assert.Equal(t, "2026-01-01", p.Start.Format(DateLayout))
		assert.Equal(t, "2026-01-31", p.End.Format(DateLayout))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := ReportQuery{Kind: "quarterly"}.ToParams()
		assert.True(t, apperror.IsCode(err, apperror.CodeUnsupportedReport))
	})

	t.Run("aging without dates", func(t *testing.T) {
		p, err := ReportQuery{Kind: "aging"}.ToParams()
		require.NoError(t, err)
		assert.True(t, p.Start.IsZero())
		assert.True(t, p.End.IsZero())
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := ReportQuery{Kind: "summary", StartDate: "Jan 1"}.ToParams()
		assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
	})
}
