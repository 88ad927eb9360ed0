package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"

	"sanhaja/internal/core/audit"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
)

var _ audit.Recorder = (*AuditLog)(nil)

// compressionAlgo marks how the changes payload is stored.
type compressionAlgo string

const (
	compressionNone compressionAlgo = "none"
	compressionZstd compressionAlgo = "zstd"
)

// auditRow is the stored form of an audit entry.
type auditRow struct {
	ID                id.ID           `db:"id"`
	EntityType        string          `db:"entity_type"`
	EntityID          id.ID           `db:"entity_id"`
	AgencyID          id.ID           `db:"agency_id"`
	Action            string          `db:"action"`
	UserID            string          `db:"user_id"`
	Changes           json.RawMessage `db:"changes"`
	ChangesCompressed []byte          `db:"changes_compressed"`
	CompressionAlgo   compressionAlgo `db:"compression_algo"`
	CreatedAt         time.Time       `db:"created_at"`
}

// AuditLog persists audit entries in the audit_log table. Change payloads
// above the threshold are stored zstd-compressed.
type AuditLog struct {
	txm               *TxManager
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int
}

// NewAuditLog creates a new audit log store.
func NewAuditLog(txm *TxManager) (*AuditLog, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &AuditLog{
		txm:               txm,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024,
	}, nil
}

// Record implements audit.Recorder.
func (a *AuditLog) Record(ctx context.Context, e audit.Entry) error {
	row := auditRow{
		ID:         id.New(),
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		AgencyID:   e.AgencyID,
		Action:     string(e.Action),
		UserID:     appctx.GetUserID(ctx),
		CreatedAt:  time.Now().UTC(),
	}

	if len(e.Changes) > 0 {
		changes, err := json.Marshal(e.Changes)
		if err != nil {
			return fmt.Errorf("marshal changes: %w", err)
		}
		row.Changes = changes
	}

	row.CompressionAlgo = compressionNone
	if len(row.Changes) > a.compressThreshold {
		row.ChangesCompressed = a.encoder.EncodeAll(row.Changes, nil)
		row.Changes = nil
		row.CompressionAlgo = compressionZstd
	}

	q := builder().Insert("audit_log").
		Columns("id", "entity_type", "entity_id", "agency_id", "action",
			"user_id", "changes", "changes_compressed", "compression_algo", "created_at").
		Values(row.ID, row.EntityType, row.EntityID, row.AgencyID, row.Action,
			row.UserID, row.Changes, row.ChangesCompressed, row.CompressionAlgo, row.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build audit insert: %w", err)
	}
	_, err = a.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	return err
}

// History returns the newest audit entries for one entity.
func (a *AuditLog) History(ctx context.Context, entityType string, entityID id.ID, limit int) ([]audit.Entry, error) {
	q := builder().
		Select("id", "entity_type", "entity_id", "agency_id", "action",
			"user_id", "changes", "changes_compressed", "compression_algo", "created_at").
		From("audit_log").
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}

	rows, err := a.txm.GetQuerier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit history: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var r auditRow
		err := rows.Scan(&r.ID, &r.EntityType, &r.EntityID, &r.AgencyID, &r.Action,
			&r.UserID, &r.Changes, &r.ChangesCompressed, &r.CompressionAlgo, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}

		payload := r.Changes
		if r.CompressionAlgo == compressionZstd && len(r.ChangesCompressed) > 0 {
			payload, err = a.decoder.DecodeAll(r.ChangesCompressed, nil)
			if err != nil {
				return nil, fmt.Errorf("decompress changes: %w", err)
			}
		}

		e := audit.Entry{
			EntityType: r.EntityType,
			EntityID:   r.EntityID,
			AgencyID:   r.AgencyID,
			Action:     audit.Action(r.Action),
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &e.Changes); err != nil {
				return nil, fmt.Errorf("unmarshal changes: %w", err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
