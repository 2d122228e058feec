package domain

import (
	"fmt"
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "Laki-laki"
	GenderFemale Gender = "Perempuan"
)

func (g Gender) Validate() error {
	switch g {
	case GenderMale, GenderFemale:
		return nil
	default:
		return fmt.Errorf("unsupported gender %q", string(g))
	}
}

// Visitor is one unauthenticated reader registration.
type Visitor struct {
	ID        string
	Name      string
	Gender    Gender
	VisitedAt time.Time
}

func (v Visitor) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return v.Gender.Validate()
}

type Credential struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// AdminSession is the signed-in admin state. LastActivityAt drives the
// inactivity expiry window.
type AdminSession struct {
	Email          string    `json:"email"`
	LoggedInAt     time.Time `json:"loggedInAt"`
	LastActivityAt time.Time `json:"lastActivityAt"`
}

func (s AdminSession) Expired(now time.Time, timeout time.Duration) bool {
	return now.Sub(s.LastActivityAt) > timeout
}

func (s *AdminSession) Touch(now time.Time) {
	s.LastActivityAt = now
}
