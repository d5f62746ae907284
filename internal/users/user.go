// Package users implements accounts: registration and login with local
// credentials, and profile lookup for authenticated callers.
package users

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPlan is the plan tier assigned to new accounts.
const DefaultPlan = "free"

// User is an account. PasswordHash is nil for users who authenticate with an
// external identity provider.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"`
	Plan         string    `json:"plan"`
	CreatedAt    time.Time `json:"created_at"`
}

// Credentials is the body of register and login requests.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries an issued bearer token and the identity it binds.
type AuthResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}
