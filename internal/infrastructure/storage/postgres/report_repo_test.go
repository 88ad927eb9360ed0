package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/internal/domain/reports"
)

func marchWindow(t *testing.T) reports.Window {
	t.Helper()
	start, err := time.Parse("2006-01-02", "2024-03-01")
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02", "2024-03-31")
	require.NoError(t, err)
	return reports.Window{Start: start, End: end}
}

func TestSalesBucketsSQL(t *testing.T) {
	w := marchWindow(t)

	t.Run("aggregates bookings by start_date", func(t *testing.T) {
		query, args := salesBucketsSQL(security.AllTenants(), w, "2006-01-02", false)

		// Sales come from the bookings ledger, keyed by the travel date.
		assert.Contains(t, query, "FROM bookings")
		assert.Contains(t, query, "to_char(start_date, $1)")
		assert.Contains(t, query, "COALESCE(SUM(sell_price), 0) AS sales")
		assert.Contains(t, query, "COUNT(*) AS bookings")
		assert.Contains(t, query, "WHERE start_date >= $2 AND start_date < $3")
		assert.NotContains(t, query, "invoices")
		assert.NotContains(t, query, "created_at")
		assert.NotContains(t, query, "amount_ht")

		require.Len(t, args, 3)
		assert.Equal(t, "YYYY-MM-DD", args[0])
		assert.Equal(t, w.Start, args[1])
		// Inclusive end date becomes an exclusive upper bound one day later.
		assert.Equal(t, w.End.AddDate(0, 0, 1), args[2])
	})

	t.Run("merged rows share the zero agency", func(t *testing.T) {
		query, _ := salesBucketsSQL(security.AllTenants(), w, "2006-01-02", false)
		assert.Contains(t, query, zeroAgency)
		assert.Contains(t, query, "GROUP BY 1\n")
	})

	t.Run("per agency grouping", func(t *testing.T) {
		query, _ := salesBucketsSQL(security.AllTenants(), w, "2006-01-02", true)
		assert.Contains(t, query, "agency_id AS agency_id")
		assert.Contains(t, query, "GROUP BY 1, 2")
	})

	t.Run("monthly layout and scope predicate", func(t *testing.T) {
		a := id.New()
		query, args := salesBucketsSQL(security.Tenants(a), w, "2006-01", true)
		assert.Contains(t, query, " AND agency_id = ANY($4)")
		require.Len(t, args, 4)
		assert.Equal(t, "YYYY-MM", args[0])
		assert.Equal(t, []id.ID{a}, args[3])
	})
}

func TestSummarySQL(t *testing.T) {
	w := marchWindow(t)

	bkQuery, invQuery, args := summarySQL(security.AllTenants(), w, false)

	// Sales and booking counts come from bookings, windowed like the
	// sales buckets; only the invoice count reads the invoices table.
	assert.Contains(t, bkQuery, "FROM bookings")
	assert.Contains(t, bkQuery, "COALESCE(SUM(sell_price), 0) AS sales")
	assert.Contains(t, bkQuery, "WHERE start_date >= $1 AND start_date < $2")
	assert.NotContains(t, bkQuery, "amount_ht")

	assert.Contains(t, invQuery, "FROM invoices")
	assert.Contains(t, invQuery, "COUNT(*) AS invoices")
	assert.Contains(t, invQuery, "WHERE created_at >= $1 AND created_at < $2")
	assert.NotContains(t, invQuery, "sell_price")

	require.Len(t, args, 2)
	assert.Equal(t, w.Start, args[0])
	assert.Equal(t, w.End.AddDate(0, 0, 1), args[1])

	t.Run("per agency grouping", func(t *testing.T) {
		bkQuery, invQuery, _ := summarySQL(security.AllTenants(), w, true)
		assert.Contains(t, bkQuery, " GROUP BY agency_id")
		assert.Contains(t, invQuery, " GROUP BY agency_id")
	})
}
