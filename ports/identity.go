package ports

import (
	"context"

	"shetkarai/domain/lang"
	"shetkarai/models"
)

// Identity abstracts the backend that owns user accounts and profiles.
// Implementations: the hosted Supabase service and a local Postgres
// store.
type Identity interface {
	// Register creates the account and its profile row. A duplicate
	// email yields an error with code CONFLICT.
	Register(ctx context.Context, email, password, username string, l lang.Language) (*models.Principal, error)

	// Login verifies credentials. Bad credentials yield an error with
	// code UNAUTHORIZED.
	Login(ctx context.Context, email, password string) (*models.Principal, error)

	// Profile fetches the profile row for a user, or nil if absent.
	Profile(ctx context.Context, userID string) (*models.Profile, error)

	// SetLanguage updates the stored language preference.
	SetLanguage(ctx context.Context, userID string, l lang.Language) error
}
