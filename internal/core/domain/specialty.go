package domain

import (
	"errors"
	"time"
)

var ErrSpecialtyNotFound = errors.New("specialty not found")

// Specialty is the single managed resource: one medical specialty.
type Specialty struct {
	ID          string
	Name        string
	Description *string // nil renders as null on the wire
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
