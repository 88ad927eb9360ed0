// Package auth provides authentication and user management domain logic.
package auth

import (
	"context"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sanhaja/internal/core/apperror"
	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/id"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// User represents a platform account.
// Role and agency reference are set at creation/edit and never change
// implicitly.
type User struct {
	ID           id.ID       `db:"id" json:"id"`
	Name         string      `db:"name" json:"name"`
	Email        string      `db:"email" json:"email"`
	PasswordHash string      `db:"password_hash" json:"-"`
	Role         appctx.Role `db:"role" json:"role"`
	AgencyID     *id.ID      `db:"agency_id" json:"agencyId,omitempty"`
	CreatedAt    time.Time   `db:"created_at" json:"createdAt"`
}

// Validate implements creation-time checks.
func (u *User) Validate(ctx context.Context) error {
	if strings.TrimSpace(u.Name) == "" {
		return apperror.NewValidation("user name is required").WithDetail("field", "name")
	}
	if !emailRe.MatchString(u.Email) {
		return apperror.NewValidation("invalid email").WithDetail("field", "email")
	}
	if !u.Role.Valid() {
		return apperror.NewValidation("unknown role").WithDetail("field", "role")
	}
	// Agency staff must belong to an agency; the other roles are cross-agency.
	if u.Role == appctx.RoleAgencyStaff && (u.AgencyID == nil || id.IsNil(*u.AgencyID)) {
		return apperror.NewValidation("agency_staff requires an agency").WithDetail("field", "agencyId")
	}
	return nil
}

// SetPassword stores a bcrypt hash of the plain password.
func (u *User) SetPassword(plain string) error {
	if len(plain) < 8 {
		return apperror.NewValidation("password must be at least 8 characters").WithDetail("field", "password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternal(err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plain password against the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// Context converts the user into the request-scoped UserContext.
func (u *User) Context() *appctx.UserContext {
	agencyID := ""
	if u.AgencyID != nil {
		agencyID = u.AgencyID.String()
	}
	return &appctx.UserContext{
		UserID:   u.ID.String(),
		Email:    u.Email,
		Role:     u.Role,
		AgencyID: agencyID,
	}
}
