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
	"sanhaja/internal/domain/client"
)

var _ client.Repository = (*ClientRepo)(nil)

var clientCols = []string{"id", "name", "phone", "cin_passport", "agency_id", "created_at"}

// ClientRepo implements client.Repository.
type ClientRepo struct {
	txm *TxManager
}

// NewClientRepo creates a new client repository.
func NewClientRepo(txm *TxManager) *ClientRepo {
	return &ClientRepo{txm: txm}
}

func (r *ClientRepo) Create(ctx context.Context, c *client.Client) error {
	q := builder().Insert("clients").
		Columns(clientCols...).
		Values(c.ID, c.Name, c.Phone, c.CinPassport, c.AgencyID, c.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert client: %w", err)
	}
	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepo) GetByID(ctx context.Context, clientID id.ID) (*client.Client, error) {
	q := builder().Select(clientCols...).From("clients").Where("id = ?", clientID)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select client: %w", err)
	}

	var c client.Client
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &c, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("client", clientID)
		}
		return nil, fmt.Errorf("select client: %w", err)
	}
	return &c, nil
}

func (r *ClientRepo) Update(ctx context.Context, c *client.Client) error {
	q := builder().Update("clients").
		Set("name", c.Name).
		Set("phone", c.Phone).
		Set("cin_passport", c.CinPassport).
		Where("id = ?", c.ID)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update client: %w", err)
	}
	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("client", c.ID)
	}
	return nil
}

func (r *ClientRepo) Delete(ctx context.Context, clientID id.ID) error {
	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, "DELETE FROM clients WHERE id = $1", clientID)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("client", clientID)
	}
	return nil
}

func (r *ClientRepo) List(ctx context.Context, scope security.TenantScope) ([]*client.Client, error) {
	q := withScope(
		builder().Select(clientCols...).From("clients"),
		"agency_id", scope,
	).OrderBy("name", "id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list clients: %w", err)
	}

	var list []*client.Client
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return list, nil
}
