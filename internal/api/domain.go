package api

import (
	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/internal/attachments"
	"github.com/JaimeStill/jobtracker/internal/history"
	"github.com/JaimeStill/jobtracker/internal/interviews"
	"github.com/JaimeStill/jobtracker/internal/overview"
	"github.com/JaimeStill/jobtracker/internal/users"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Users        users.System
	Applications applications.System
	History      history.System
	Interviews   interviews.System
	Attachments  attachments.System
	Overview     overview.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	usersSystem := users.New(
		db,
		runtime.Auth.Issuer,
		runtime.Auth.Hasher,
		runtime.Logger,
	)

	historySystem := history.New(db, runtime.Logger, runtime.Pagination)

	appsSystem := applications.New(
		db,
		historySystem,
		runtime.Logger,
		runtime.Pagination,
	)

	interviewsSystem := interviews.New(db, runtime.Logger, runtime.Pagination)

	attachmentsSystem := attachments.New(
		db,
		runtime.Storage,
		runtime.Limits,
		runtime.Logger,
		runtime.Pagination,
	)

	overviewSystem := overview.New(
		appsSystem,
		interviewsSystem,
		attachmentsSystem,
		historySystem,
		runtime.Logger,
	)

	return &Domain{
		Users:        usersSystem,
		Applications: appsSystem,
		History:      historySystem,
		Interviews:   interviewsSystem,
		Attachments:  attachmentsSystem,
		Overview:     overviewSystem,
	}
}
