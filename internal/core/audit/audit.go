// Package audit defines the audit trail contract for sensitive operations.
package audit

import (
	"context"

	"sanhaja/internal/core/id"
)

// Action is the kind of audited operation.
type Action string

const (
	ActionCreate  Action = "create"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Entry is one audit record. UserID is taken from the request context by the
// recorder when left empty.
type Entry struct {
	EntityType string
	EntityID   id.ID
	AgencyID   id.ID
	Action     Action
	Changes    map[string]any
}

// Recorder persists audit entries. Recording is best-effort in callers;
// a failed write must never roll back the audited operation.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Nop discards every entry. Used in tests.
type Nop struct{}

func (Nop) Record(context.Context, Entry) error { return nil }
