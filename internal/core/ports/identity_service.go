package ports

import (
	"context"

	"github.com/Jordanjay551/BitesNearU/internal/core/domain"
)

// AuthResult is returned on successful registration or sign-in. The token
// is transport-layer convenience for the HTTP adapter; the persisted
// session pointer remains the core's source of truth.
type AuthResult struct {
	Token string
	User  domain.User
}

// IdentityService maps the session pointer to a user record and governs
// who the cart ledger and checkout engine act upon.
type IdentityService interface {
	// Register creates a user with zeroed metrics and the default avatar,
	// then activates the session. Fails with domain.ErrEmailTaken when the
	// email is already registered.
	Register(ctx context.Context, email, password, name string) (*AuthResult, error)
	// SignIn activates the session on an exact email/password match, else
	// fails with domain.ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	// SignOut clears the session pointer. The user record is kept.
	SignOut(ctx context.Context) error
	// Current returns the active user, or domain.ErrNotAuthenticated.
	Current(ctx context.Context) (*domain.User, error)
	// SetAvatar updates the active user's avatar selection.
	SetAvatar(ctx context.Context, avatar string) (*domain.User, error)
}
