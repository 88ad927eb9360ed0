package auth

import (
	"context"
	"time"

	"sanhaja/internal/core/apperror"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/pkg/logger"
)

// Service provides authentication and user management operations.
type Service struct {
	users UserRepository
	jwt   *JWTService
}

// NewService creates a new auth service.
func NewService(users UserRepository, jwt *JWTService) *Service {
	return &Service{users: users, jwt: jwt}
}

// LoginResult carries a signed token and the authenticated user.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *User
}

// Login verifies credentials and issues an access token.
// The error is the same for unknown email and wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user.Context())
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	logger.Info(ctx, "user logged in", "user_id", user.ID, "role", user.Role)
	return &LoginResult{AccessToken: token, ExpiresAt: expiresAt, User: user}, nil
}

// Me returns the full user record for the authenticated caller.
func (s *Service) Me(ctx context.Context, caller *appctx.UserContext) (*User, error) {
	userID, err := id.Parse(caller.UserID)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid session")
	}
	return s.users.GetByID(ctx, userID)
}

// CreateUser registers a new account. Super admin only.
func (s *Service) CreateUser(ctx context.Context, caller *appctx.UserContext, u *User, password string) error {
	if err := security.Require(security.OpManageUsers, caller.Role); err != nil {
		return err
	}
	if err := u.Validate(ctx); err != nil {
		return err
	}
	if err := u.SetPassword(password); err != nil {
		return err
	}

	exists, err := s.users.EmailExists(ctx, u.Email)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("user", "email", u.Email)
	}

	if err := s.users.Create(ctx, u); err != nil {
		return err
	}
	logger.Info(ctx, "user created", "id", u.ID, "role", u.Role)
	return nil
}

// ListUsers returns accounts visible to the caller: super admins see all,
// general accountants see agency staff, staff see only themselves.
func (s *Service) ListUsers(ctx context.Context, caller *appctx.UserContext) ([]*User, error) {
	switch caller.Role {
	case appctx.RoleSuperAdmin:
		return s.users.List(ctx)
	case appctx.RoleGeneralAccountant:
		return s.users.ListByRole(ctx, appctx.RoleAgencyStaff)
	default:
		me, err := s.Me(ctx, caller)
		if err != nil {
			return nil, err
		}
		return []*User{me}, nil
	}
}
