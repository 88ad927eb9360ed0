// Package tx defines the transaction boundary abstraction used by services.
package tx

import "context"

// Manager runs a function inside a database transaction. Nested calls reuse
// the transaction already carried by ctx.
type Manager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
