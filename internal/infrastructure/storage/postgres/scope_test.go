package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
)

func TestWithScope(t *testing.T) {
	a := id.New()
	b := id.New()
	base := builder().Select("id").From("invoices")

	t.Run("unrestricted adds no predicate", func(t *testing.T) {
		sql, args, err := withScope(base, "agency_id", security.AllTenants()).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "SELECT id FROM invoices", sql)
		assert.Empty(t, args)
	})

	t.Run("explicit scope renders IN", func(t *testing.T) {
		sql, args, err := withScope(base, "agency_id", security.Tenants(a, b)).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "SELECT id FROM invoices WHERE agency_id IN ($1,$2)", sql)
		assert.Len(t, args, 2)
	})

	t.Run("empty explicit scope matches nothing", func(t *testing.T) {
		sql, _, err := withScope(base, "agency_id", security.Tenants()).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "(1=0)")
	})
}

func TestScopePredicate(t *testing.T) {
	a := id.New()

	t.Run("unrestricted", func(t *testing.T) {
		sql, args := scopePredicate("", security.AllTenants(), []any{"x"})
		assert.Empty(t, sql)
		assert.Len(t, args, 1)
	})

	t.Run("numbered after existing args", func(t *testing.T) {
		sql, args := scopePredicate("i.", security.Tenants(a), []any{"x", "y"})
		assert.Equal(t, " AND i.agency_id = ANY($3)", sql)
		require.Len(t, args, 3)
		assert.Equal(t, []id.ID{a}, args[2])
	})
}

func TestBucketPattern(t *testing.T) {
	assert.Equal(t, "YYYY-MM", bucketPattern("2006-01"))
	assert.Equal(t, "YYYY-MM-DD", bucketPattern("2006-01-02"))
}
