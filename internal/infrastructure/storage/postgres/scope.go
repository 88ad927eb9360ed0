package postgres

import (
	"github.com/Masterminds/squirrel"

	"sanhaja/internal/core/security"
)

// withScope narrows a select to the agencies of a resolved tenant scope.
// The unrestricted scope adds no predicate. An empty explicit scope renders
// a false predicate, matching nothing.
func withScope(b squirrel.SelectBuilder, column string, scope security.TenantScope) squirrel.SelectBuilder {
	if scope.All {
		return b
	}
	return b.Where(squirrel.Eq{column: scope.IDs})
}

// builder returns a squirrel builder with PostgreSQL placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
