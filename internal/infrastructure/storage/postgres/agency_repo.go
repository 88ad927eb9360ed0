package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/internal/domain/agency"
)

var _ agency.Repository = (*AgencyRepo)(nil)

var agencyCols = []string{"id", "name", "city", "address", "phone", "created_at"}

// AgencyRepo implements agency.Repository.
type AgencyRepo struct {
	txm *TxManager
}

// NewAgencyRepo creates a new agency repository.
func NewAgencyRepo(txm *TxManager) *AgencyRepo {
	return &AgencyRepo{txm: txm}
}

func (r *AgencyRepo) Create(ctx context.Context, a *agency.Agency) error {
	q := builder().Insert("agencies").
		Columns(agencyCols...).
		Values(a.ID, a.Name, a.City, a.Address, a.Phone, a.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert agency: %w", err)
	}
	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert agency: %w", err)
	}
	return nil
}

func (r *AgencyRepo) GetByID(ctx context.Context, agencyID id.ID) (*agency.Agency, error) {
	q := builder().Select(agencyCols...).
		From("agencies").
		Where("id = ?", agencyID)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select agency: %w", err)
	}

	var a agency.Agency
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &a, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("agency", agencyID)
		}
		return nil, fmt.Errorf("select agency: %w", err)
	}
	return &a, nil
}

func (r *AgencyRepo) Exists(ctx context.Context, agencyID id.ID) (bool, error) {
	var exists bool
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM agencies WHERE id = $1)", agencyID).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("agency exists: %w", err)
	}
	return exists, nil
}

func (r *AgencyRepo) List(ctx context.Context, scope security.TenantScope) ([]*agency.Agency, error) {
	q := withScope(
		builder().Select(agencyCols...).From("agencies"),
		"id", scope,
	).OrderBy("name", "id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list agencies: %w", err)
	}

	var list []*agency.Agency
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list agencies: %w", err)
	}
	return list, nil
}
