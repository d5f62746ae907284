package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/pkg/auth"
)

// System defines the user domain operations.
type System interface {
	Handler() *Handler

	// Register creates an account with a hashed password and issues a token.
	Register(ctx context.Context, cred Credentials) (*AuthResponse, error)
	// Login verifies credentials and issues a token.
	Login(ctx context.Context, cred Credentials) (*AuthResponse, error)

	Find(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Profile returns the caller's account, creating it on first sight for
	// principals issued by an external identity provider.
	Profile(ctx context.Context, p auth.Principal) (*User, error)
}
