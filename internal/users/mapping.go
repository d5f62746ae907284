package users

import (
	"fmt"

	"github.com/JaimeStill/jobtracker/pkg/query"
	"github.com/JaimeStill/jobtracker/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "users", "u").
	Project("id", "ID").
	Project("email", "Email").
	Project("password_hash", "PasswordHash").
	Project("plan", "Plan").
	Project("created_at", "CreatedAt")

// Email uniqueness is case-insensitive, backed by a unique index on lower(email).
var findByEmailSQL = fmt.Sprintf(
	"SELECT %s FROM %s WHERE lower(%s) = lower($1) LIMIT 1",
	projection.Columns(),
	projection.From(),
	projection.Column("Email"),
)

var insertSQL = fmt.Sprintf(
	"INSERT INTO %s (id, email, password_hash, plan, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING %s",
	projection.From(),
	projection.Columns(),
)

var insertIgnoreSQL = fmt.Sprintf(
	"INSERT INTO %s (id, email, password_hash, plan, created_at) VALUES ($1, $2, NULL, $3, $4) ON CONFLICT DO NOTHING",
	projection.Table(),
)

func scanUser(s repository.Scanner) (User, error) {
	var u User
	err := s.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Plan,
		&u.CreatedAt,
	)
	return u, err
}
