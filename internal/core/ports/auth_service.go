package ports

import (
	"context"

	"github.com/agenda-universal/especialidades-api/internal/core/domain"
)

type AuthService interface {
	// Login checks the credentials and returns a signed, time-limited token.
	Login(ctx context.Context, username, password string) (string, error)
	// Verify validates signature and expiry. Any structural, signature, or
	// expiry failure surfaces as domain.ErrInvalidToken.
	Verify(token string) (*domain.Principal, error)
	// EnsureUser creates the account if the username does not exist yet.
	// Used for startup seeding.
	EnsureUser(ctx context.Context, username, password string) error
}
