package applications

import (
	"encoding/json"
	"strings"
)

// Status is the stage an application has reached.
type Status string

// Application statuses.
const (
	StatusApplied      Status = "Applied"
	StatusInterviewing Status = "Interviewing"
	StatusOffer        Status = "Offer"
	StatusRejected     Status = "Rejected"
	StatusGhosted      Status = "Ghosted"
	StatusWithdrawn    Status = "Withdrawn"
)

var statuses = []Status{
	StatusApplied,
	StatusInterviewing,
	StatusOffer,
	StatusRejected,
	StatusGhosted,
	StatusWithdrawn,
}

// Statuses returns the valid statuses.
func Statuses() []Status {
	return statuses
}

// ParseStatus matches s case-insensitively against the valid statuses and
// returns the canonical value.
func ParseStatus(s string) (Status, error) {
	return parseEnum(statuses, s, ErrInvalidStatus)
}

// UnmarshalJSON accepts valid statuses. null and "" leave s unset.
func (s *Status) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, statuses, ErrInvalidStatus)
}

// Source is where the opening was found.
type Source string

// Application sources.
const (
	SourceLinkedIn       Source = "LinkedIn"
	SourceIndeed         Source = "Indeed"
	SourceGlassdoor      Source = "Glassdoor"
	SourceCompanyWebsite Source = "CompanyWebsite"
	SourceReferral       Source = "Referral"
	SourceRecruiter      Source = "Recruiter"
	SourceOther          Source = "Other"
)

var sources = []Source{
	SourceLinkedIn,
	SourceIndeed,
	SourceGlassdoor,
	SourceCompanyWebsite,
	SourceReferral,
	SourceRecruiter,
	SourceOther,
}

// Sources returns the valid sources.
func Sources() []Source {
	return sources
}

// ParseSource matches s case-insensitively against the valid sources.
func ParseSource(s string) (Source, error) {
	return parseEnum(sources, s, ErrInvalidSource)
}

// UnmarshalJSON accepts valid sources. null and "" leave s unset.
func (s *Source) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, sources, ErrInvalidSource)
}

func parseEnum[T ~string](values []T, s string, invalid error) (T, error) {
	s = strings.TrimSpace(s)
	for _, v := range values {
		if strings.EqualFold(string(v), s) {
			return v, nil
		}
	}
	return "", invalid
}

func unmarshalEnum[T ~string](data []byte, dst *T, values []T, invalid error) error {
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return invalid
	}
	if strings.TrimSpace(raw) == "" {
		*dst = ""
		return nil
	}
	v, err := parseEnum(values, raw, invalid)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
