// Package interviews implements the interview events scheduled against an
// application.
package interviews

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Interview is one interview event of an application.
type Interview struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	Date          time.Time `json:"date"`
	Interviewer   *string   `json:"interviewer"`
	Type          Type      `json:"type"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateCommand carries the fields of a new interview. Date and Type are required.
type CreateCommand struct {
	Date        time.Time `json:"date"`
	Interviewer *string   `json:"interviewer"`
	Type        Type      `json:"type"`
	Notes       *string   `json:"notes"`
}

// UpdateCommand is a merge patch. Interviewer applies only when non-empty.
type UpdateCommand struct {
	Date        *time.Time `json:"date"`
	Interviewer *string    `json:"interviewer"`
	Type        *Type      `json:"type"`
	Notes       *string    `json:"notes"`
}

// Apply merges the patch into i.
func (c UpdateCommand) Apply(i *Interview) {
	if c.Date != nil && !c.Date.IsZero() {
		i.Date = *c.Date
	}
	if c.Interviewer != nil && *c.Interviewer != "" {
		i.Interviewer = c.Interviewer
	}
	if c.Type != nil {
		i.Type = *c.Type
	}
	if c.Notes != nil {
		i.Notes = c.Notes
	}
}

// Type is the format of an interview.
type Type string

const (
	TypePhoneScreen         Type = "PhoneScreen"
	TypeTechnicalScreen     Type = "TechnicalScreen"
	TypeOnsite              Type = "Onsite"
	TypeVirtual             Type = "Virtual"
	TypeTakeHomeAssignment  Type = "TakeHomeAssignment"
	TypeBehavioralInterview Type = "BehavioralInterview"
	TypePanelInterview      Type = "PanelInterview"
	TypeFinalRound          Type = "FinalRound"
	TypeOther               Type = "Other"
)

var types = []Type{
	TypePhoneScreen,
	TypeTechnicalScreen,
	TypeOnsite,
	TypeVirtual,
	TypeTakeHomeAssignment,
	TypeBehavioralInterview,
	TypePanelInterview,
	TypeFinalRound,
	TypeOther,
}

// Types returns the valid interview types.
func Types() []Type {
	return types
}

// ParseType matches s case-insensitively against the valid types.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	for _, t := range types {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", ErrInvalidType
}

// UnmarshalJSON accepts only valid types.
func (t *Type) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidType
	}
	v, err := ParseType(raw)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
