// Package app wires the domain components into request-level services.
package app

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"shetkarai/domain/lang"
	"shetkarai/ports"
)

// LoginResult is what the HTTP layer stores in the session after a
// successful login or registration.
type LoginResult struct {
	UserID   string
	Username string
	// Language is the restored preference, or empty when the profile
	// carries none.
	Language string
}

// AuthService fronts the identity backend for the form handlers.
type AuthService struct {
	identity ports.Identity
	logger   *zap.Logger
}

func NewAuthService(identity ports.Identity, logger *zap.Logger) *AuthService {
	return &AuthService{identity: identity, logger: logger}
}

// Register creates the account and logs the user straight in.
func (s *AuthService) Register(ctx context.Context, email, password, username string, l lang.Language) (*LoginResult, error) {
	principal, err := s.identity.Register(ctx, email, password, username, l)
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: principal.ID, Username: username}, nil
}

// Login verifies credentials and restores the profile data. A missing
// profile falls back to the email local part for the username.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	principal, err := s.identity.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	result := &LoginResult{
		UserID:   principal.ID,
		Username: localPart(email),
	}

	profile, err := s.identity.Profile(ctx, principal.ID)
	if err != nil {
		s.logger.Warn("profile fetch failed after login", zap.String("user_id", principal.ID), zap.Error(err))
		return result, nil
	}
	if profile != nil {
		if profile.Username != "" {
			result.Username = profile.Username
		}
		if lang.IsSupported(profile.LanguagePreference) {
			result.Language = profile.LanguagePreference
		}
	}
	return result, nil
}

// SetLanguage persists a language change for a logged-in user. Backend
// failures are logged, not surfaced: the session keeps the new value
// either way.
func (s *AuthService) SetLanguage(ctx context.Context, userID string, l lang.Language) {
	if err := s.identity.SetLanguage(ctx, userID, l); err != nil {
		s.logger.Warn("language preference update failed", zap.String("user_id", userID), zap.Error(err))
	}
}

func localPart(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return email
}
