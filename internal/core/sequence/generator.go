// Package sequence provides gapless per-agency document numbering.
package sequence

import (
	"context"
	"fmt"
	"sync"

	"sanhaja/internal/core/id"
)

// Prefixes used by the ledger documents.
const (
	PrefixInvoice = "INV"
	PrefixPayment = "PAY"
)

// Generator allocates the next document number for an agency, e.g.
// "INV-000042". Implementations must be safe for concurrent use.
type Generator interface {
	Next(ctx context.Context, agencyID id.ID, prefix string) (string, error)
}

// Format renders a document number from prefix and counter value.
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s-%06d", prefix, n)
}

// Mock is an in-memory Generator for tests and seeding.
type Mock struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewMock creates an empty in-memory generator.
func NewMock() *Mock {
	return &Mock{counters: make(map[string]int64)}
}

// Next implements Generator.
func (m *Mock) Next(ctx context.Context, agencyID id.ID, prefix string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := agencyID.String() + "/" + prefix
	m.counters[key]++
	return Format(prefix, m.counters[key]), nil
}
