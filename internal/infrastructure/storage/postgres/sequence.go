package postgres

import (
	"context"
	"fmt"

	"sanhaja/internal/core/id"
	"sanhaja/internal/core/sequence"
)

// Compile-time check.
var _ sequence.Generator = (*SequenceGenerator)(nil)

// SequenceGenerator allocates document numbers from the sequences table.
// The upsert takes a row lock, so concurrent callers for the same agency and
// prefix serialize and never see the same value.
type SequenceGenerator struct {
	txm *TxManager
}

// NewSequenceGenerator creates a sequences-table backed generator.
func NewSequenceGenerator(txm *TxManager) *SequenceGenerator {
	return &SequenceGenerator{txm: txm}
}

// Next implements sequence.Generator.
func (g *SequenceGenerator) Next(ctx context.Context, agencyID id.ID, prefix string) (string, error) {
	const q = `
		INSERT INTO sequences (agency_id, prefix, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (agency_id, prefix)
		DO UPDATE SET value = sequences.value + 1
		RETURNING value`

	var value int64
	querier := g.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, q, agencyID, prefix).Scan(&value); err != nil {
		return "", fmt.Errorf("next sequence %s/%s: %w", agencyID, prefix, err)
	}
	return sequence.Format(prefix, value), nil
}
