package auth

import (
	"context"

	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
)

// UserRepository defines User persistence.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, userID id.ID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	// List returns all users ordered by name then id.
	List(ctx context.Context) ([]*User, error)

	// ListByRole returns users holding the given role.
	ListByRole(ctx context.Context, role appctx.Role) ([]*User, error)
}
