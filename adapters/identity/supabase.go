// Package identity implements the account/profile backends: the hosted
// Supabase service and a local Postgres store.
package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"shetkarai/domain/lang"
	"shetkarai/internal/errors"
	"shetkarai/models"
	"shetkarai/ports"
)

const supabaseTimeout = 15 * time.Second

// Supabase delegates auth and profile storage to a hosted Supabase
// project (GoTrue for auth, PostgREST for the profiles table).
type Supabase struct {
	rest   *resty.Client
	url    string
	key    string
	logger *zap.Logger
}

// NewSupabase creates a client for the project at url using its anon
// key.
func NewSupabase(url, key string, logger *zap.Logger) ports.Identity {
	rest := resty.New().
		SetTimeout(supabaseTimeout).
		SetHeader("apikey", key).
		SetHeader("Authorization", "Bearer "+key)
	return &Supabase{
		rest:   rest,
		url:    strings.TrimRight(url, "/"),
		key:    key,
		logger: logger,
	}
}

// authUser is the user object GoTrue returns, either bare or wrapped in
// a session envelope depending on the endpoint.
type authUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type authResponse struct {
	authUser
	User *authUser `json:"user"`
}

func (r *authResponse) principal() *models.Principal {
	u := r.authUser
	if r.User != nil {
		u = *r.User
	}
	if u.ID == "" {
		return nil
	}
	return &models.Principal{ID: u.ID, Email: u.Email}
}

type supabaseError struct {
	Message   string `json:"message"`
	Msg       string `json:"msg"`
	ErrorDesc string `json:"error_description"`
}

func (e *supabaseError) text() string {
	for _, s := range []string{e.Message, e.Msg, e.ErrorDesc} {
		if s != "" {
			return s
		}
	}
	return "unknown error"
}

// Register signs the user up and inserts the profile row.
func (s *Supabase) Register(ctx context.Context, email, password, username string, l lang.Language) (*models.Principal, error) {
	var payload authResponse
	var apiErr supabaseError
	resp, err := s.rest.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&payload).
		SetError(&apiErr).
		Post(s.url + "/auth/v1/signup")
	if err != nil {
		return nil, errors.ExternalServiceError("identity", err)
	}
	if resp.IsError() {
		if strings.Contains(strings.ToLower(apiErr.text()), "already") {
			return nil, errors.Conflict(apiErr.text())
		}
		return nil, errors.ExternalServiceError("identity", fmt.Errorf("signup failed: %s", apiErr.text()))
	}

	principal := payload.principal()
	if principal == nil {
		return nil, errors.ExternalServiceError("identity", fmt.Errorf("signup returned no user"))
	}

	profile := models.Profile{
		ID:                 principal.ID,
		Username:           username,
		LanguagePreference: l.String(),
	}
	resp, err = s.rest.R().
		SetContext(ctx).
		SetBody(profile).
		SetError(&apiErr).
		Post(s.url + "/rest/v1/profiles")
	if err != nil {
		return nil, errors.ExternalServiceError("identity", err)
	}
	if resp.IsError() {
		// The auth account exists at this point; surface the profile
		// failure so the caller can show a generic registration error.
		return nil, errors.ExternalServiceError("identity", fmt.Errorf("profile insert failed: %s", apiErr.text()))
	}

	return principal, nil
}

// Login verifies credentials via the password grant.
func (s *Supabase) Login(ctx context.Context, email, password string) (*models.Principal, error) {
	var payload authResponse
	var apiErr supabaseError
	resp, err := s.rest.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&payload).
		SetError(&apiErr).
		Post(s.url + "/auth/v1/token")
	if err != nil {
		return nil, errors.ExternalServiceError("identity", err)
	}
	if resp.IsError() {
		if resp.StatusCode() == 400 || resp.StatusCode() == 401 {
			return nil, errors.Unauthorized(apiErr.text())
		}
		return nil, errors.ExternalServiceError("identity", fmt.Errorf("login failed: %s", apiErr.text()))
	}

	principal := payload.principal()
	if principal == nil {
		return nil, errors.Unauthorized("login returned no user")
	}
	return principal, nil
}

// Profile fetches the profile row for a user, or nil when absent.
func (s *Supabase) Profile(ctx context.Context, userID string) (*models.Profile, error) {
	var rows []models.Profile
	resp, err := s.rest.R().
		SetContext(ctx).
		SetQueryParam("id", "eq."+userID).
		SetQueryParam("select", "*").
		SetResult(&rows).
		Get(s.url + "/rest/v1/profiles")
	if err != nil {
		return nil, errors.ExternalServiceError("identity", err)
	}
	if resp.IsError() {
		return nil, errors.ExternalServiceError("identity", fmt.Errorf("profile fetch returned %d", resp.StatusCode()))
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// SetLanguage updates the stored language preference.
func (s *Supabase) SetLanguage(ctx context.Context, userID string, l lang.Language) error {
	resp, err := s.rest.R().
		SetContext(ctx).
		SetQueryParam("id", "eq."+userID).
		SetBody(map[string]string{"language_preference": l.String()}).
		Patch(s.url + "/rest/v1/profiles")
	if err != nil {
		return errors.ExternalServiceError("identity", err)
	}
	if resp.IsError() {
		return errors.ExternalServiceError("identity", fmt.Errorf("language update returned %d", resp.StatusCode()))
	}
	return nil
}
