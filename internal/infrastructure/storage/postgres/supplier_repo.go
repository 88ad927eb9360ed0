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
	"sanhaja/internal/domain/supplier"
)

var _ supplier.Repository = (*SupplierRepo)(nil)

var supplierCols = []string{"id", "name", "type", "contact", "agency_id", "created_at"}

// SupplierRepo implements supplier.Repository.
type SupplierRepo struct {
	txm *TxManager
}

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(txm *TxManager) *SupplierRepo {
	return &SupplierRepo{txm: txm}
}

func (r *SupplierRepo) Create(ctx context.Context, s *supplier.Supplier) error {
	q := builder().Insert("suppliers").
		Columns(supplierCols...).
		Values(s.ID, s.Name, s.Type, s.Contact, s.AgencyID, s.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert supplier: %w", err)
	}
	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, supplierID id.ID) (*supplier.Supplier, error) {
	q := builder().Select(supplierCols...).From("suppliers").Where("id = ?", supplierID)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select supplier: %w", err)
	}

	var s supplier.Supplier
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &s, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("supplier", supplierID)
		}
		return nil, fmt.Errorf("select supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *supplier.Supplier) error {
	q := builder().Update("suppliers").
		Set("name", s.Name).
		Set("type", s.Type).
		Set("contact", s.Contact).
		Where("id = ?", s.ID)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update supplier: %w", err)
	}
	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("supplier", s.ID)
	}
	return nil
}

func (r *SupplierRepo) Delete(ctx context.Context, supplierID id.ID) error {
	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, "DELETE FROM suppliers WHERE id = $1", supplierID)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("supplier", supplierID)
	}
	return nil
}

func (r *SupplierRepo) List(ctx context.Context, scope security.TenantScope) ([]*supplier.Supplier, error) {
	q := withScope(
		builder().Select(supplierCols...).From("suppliers"),
		"agency_id", scope,
	).OrderBy("name", "id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list suppliers: %w", err)
	}

	var list []*supplier.Supplier
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return list, nil
}
