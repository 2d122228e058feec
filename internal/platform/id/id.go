package id

import "github.com/google/uuid"

// Generator creates opaque identifiers for books, visits, and sessions.
type Generator interface {
	New() string
}

type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}
