package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/pkg/auth"
	"github.com/JaimeStill/jobtracker/pkg/query"
	"github.com/JaimeStill/jobtracker/pkg/repository"
)

type repo struct {
	db     *sql.DB
	issuer *auth.Issuer
	hasher auth.Hasher
	logger *slog.Logger
}

// New creates the user system.
func New(
	db *sql.DB,
	issuer *auth.Issuer,
	hasher auth.Hasher,
	logger *slog.Logger,
) System {
	return &repo{
		db:     db,
		issuer: issuer,
		hasher: hasher,
		logger: logger.With("system", "users"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Register(ctx context.Context, cred Credentials) (*AuthResponse, error) {
	email := strings.TrimSpace(cred.Email)
	if email == "" || cred.Password == "" {
		return nil, ErrMissingFields
	}

	_, err := r.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrDuplicate
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	hash, err := r.hasher.Hash(cred.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := repository.QueryOne(
		ctx, r.db, insertSQL,
		[]any{uuid.New(), email, hash, DefaultPlan, repository.Now()},
		scanUser,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user registered", "id", u.ID)
	return r.respond(&u)
}

func (r *repo) Login(ctx context.Context, cred Credentials) (*AuthResponse, error) {
	if strings.TrimSpace(cred.Email) == "" || cred.Password == "" {
		return nil, ErrMissingFields
	}

	u, err := r.FindByEmail(ctx, strings.TrimSpace(cred.Email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if u.PasswordHash == nil || !r.hasher.Verify(cred.Password, *u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return r.respond(u)
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*User, error) {
	q, args := query.NewBuilder(projection).
		WhereEquals("ID", id).
		BuildSingleOrNull()

	u, err := repository.QueryOne(ctx, r.db, q, args, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &u, nil
}

func (r *repo) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, err := repository.QueryOne(ctx, r.db, findByEmailSQL, []any{email}, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &u, nil
}

func (r *repo) Profile(ctx context.Context, p auth.Principal) (*User, error) {
	u, err := r.Find(ctx, p.UserID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	created, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (User, error) {
		if _, err := tx.ExecContext(ctx, insertIgnoreSQL, p.UserID, p.Email, DefaultPlan, repository.Now()); err != nil {
			return User{}, err
		}
		return repository.QueryOne(ctx, tx, findByEmailSQL, []any{p.Email}, scanUser)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user provisioned", "id", created.ID)
	return &created, nil
}

func (r *repo) respond(u *User) (*AuthResponse, error) {
	token, err := r.issuer.Issue(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResponse{Token: token, UserID: u.ID, Email: u.Email}, nil
}
