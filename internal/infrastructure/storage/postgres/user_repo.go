package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"sanhaja/internal/core/apperror"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
	"sanhaja/internal/domain/auth"
)

var _ auth.UserRepository = (*UserRepo)(nil)

var userCols = []string{"id", "name", "email", "password_hash", "role", "agency_id", "created_at"}

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	txm *TxManager
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txm *TxManager) *UserRepo {
	return &UserRepo{txm: txm}
}

func (r *UserRepo) Create(ctx context.Context, u *auth.User) error {
	q := builder().Insert("users").
		Columns(userCols...).
		Values(u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.AgencyID, u.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert user: %w", err)
	}
	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	return r.getOne(ctx, "id = ?", userID)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.getOne(ctx, "email = ?", email)
}

func (r *UserRepo) getOne(ctx context.Context, pred string, arg any) (*auth.User, error) {
	q := builder().Select(userCols...).From("users").Where(pred, arg)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var u auth.User
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &u, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("user", arg)
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)", email).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("user email exists: %w", err)
	}
	return exists, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*auth.User, error) {
	return r.list(ctx, builder().Select(userCols...).From("users"))
}

func (r *UserRepo) ListByRole(ctx context.Context, role appctx.Role) ([]*auth.User, error) {
	return r.list(ctx, builder().Select(userCols...).From("users").Where("role = ?", role))
}

func (r *UserRepo) list(ctx context.Context, q squirrel.SelectBuilder) ([]*auth.User, error) {
	sql, args, err := q.OrderBy("name", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	var list []*auth.User
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return list, nil
}
