package users_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JaimeStill/jobtracker/internal/dbtest"
	"github.com/JaimeStill/jobtracker/internal/users"
	"github.com/JaimeStill/jobtracker/pkg/auth"
)

func newSystem(t *testing.T) (users.System, *auth.Issuer) {
	t.Helper()

	db := dbtest.Open(t)

	cfg := &auth.Config{SigningSecret: "0123456789abcdef0123456789abcdef"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("auth config: %v", err)
	}
	issuer, err := auth.NewIssuer(cfg)
	if err != nil {
		t.Fatalf("issuer: %v", err)
	}

	return users.New(db, issuer, auth.NewHasher(bcrypt.MinCost), discard()), issuer
}

func uniqueEmail() string {
	return fmt.Sprintf("%s@x.com", uuid.NewString()[:8])
}

func TestRegisterLoginScenario(t *testing.T) {
	sys, issuer := newSystem(t)
	ctx := context.Background()
	email := uniqueEmail()

	registered, err := sys.Register(ctx, users.Credentials{Email: email, Password: "pw1"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if registered.Token == "" {
		t.Fatal("Register() returned no token")
	}

	_, err = sys.Register(ctx, users.Credentials{Email: email, Password: "pw1"})
	if !errors.Is(err, users.ErrDuplicate) {
		t.Errorf("second Register() error = %v, want ErrDuplicate", err)
	}

	_, err = sys.Login(ctx, users.Credentials{Email: email, Password: "wrongpw"})
	if !errors.Is(err, users.ErrInvalidCredentials) {
		t.Errorf("Login(wrong) error = %v, want ErrInvalidCredentials", err)
	}

	loggedIn, err := sys.Login(ctx, users.Credentials{Email: email, Password: "pw1"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	claims, ok := issuer.Validate(loggedIn.Token)
	if !ok {
		t.Fatal("issued token does not validate")
	}
	p, err := auth.PrincipalFromClaims(claims)
	if err != nil {
		t.Fatalf("PrincipalFromClaims() error = %v", err)
	}
	if p.UserID != registered.UserID {
		t.Errorf("subject = %s, want %s", p.UserID, registered.UserID)
	}
}

func TestRegisterEmailCaseInsensitive(t *testing.T) {
	sys, _ := newSystem(t)
	ctx := context.Background()
	email := uniqueEmail()

	if _, err := sys.Register(ctx, users.Credentials{Email: email, Password: "pw"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := sys.Register(ctx, users.Credentials{Email: strings.ToUpper(email), Password: "pw"})
	if !errors.Is(err, users.ErrDuplicate) {
		t.Errorf("Register(upper) error = %v, want ErrDuplicate", err)
	}

	u, err := sys.FindByEmail(ctx, strings.ToUpper(email))
	if err != nil {
		t.Fatalf("FindByEmail(upper) error = %v", err)
	}
	if u.Email != email || u.PasswordHash == nil || u.Plan != users.DefaultPlan {
		t.Errorf("user = %+v", u)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	sys, _ := newSystem(t)

	_, err := sys.Login(context.Background(), users.Credentials{Email: uniqueEmail(), Password: "pw"})
	if !errors.Is(err, users.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestProfileGetOrCreate(t *testing.T) {
	sys, _ := newSystem(t)
	ctx := context.Background()
	p := auth.Principal{UserID: uuid.New(), Email: uniqueEmail()}

	first, err := sys.Profile(ctx, p)
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if first.ID != p.UserID || first.PasswordHash != nil {
		t.Errorf("provisioned user = %+v", first)
	}

	second, err := sys.Profile(ctx, p)
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if second.ID != first.ID || !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("second profile = %+v, want %+v", second, first)
	}

	_, err = sys.Login(ctx, users.Credentials{Email: p.Email, Password: "anything"})
	if !errors.Is(err, users.ErrInvalidCredentials) {
		t.Errorf("Login(external user) error = %v, want ErrInvalidCredentials", err)
	}
}
