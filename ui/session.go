package ui

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shetkarai/domain/lang"
)

const sessionContextKey = "shetkarai.session"

// Cookie session field names.
const (
	fieldUserID        = "user_id"
	fieldUsername      = "username"
	fieldLanguage      = "language"
	fieldError         = "error"
	fieldRegisterError = "register_error"
)

// Session is the per-request view of the signed cookie session: an
// immutable snapshot loaded up front plus mutations that are applied
// and saved once, at response time, by the session middleware.
type Session struct {
	UserID        string
	Username      string
	Language      string
	Error         string
	RegisterError string

	mutated bool
	store   sessions.Session
	logger  *zap.Logger
}

// LoggedIn reports whether the session carries an authenticated user.
func (s *Session) LoggedIn() bool {
	return s.UserID != ""
}

// Lang returns the normalized session language, or def when none is
// set.
func (s *Session) Lang(def lang.Language) lang.Language {
	if s.Language == "" {
		return def
	}
	return lang.Normalize(s.Language)
}

// SetPrincipal records a successful login.
func (s *Session) SetPrincipal(userID, username string) {
	s.UserID = userID
	s.Username = username
	s.mutated = true
}

// SetLanguage records a language choice.
func (s *Session) SetLanguage(code string) {
	s.Language = lang.Normalize(code).String()
	s.mutated = true
}

// SetError stores a one-shot login error message.
func (s *Session) SetError(msg string) {
	s.Error = msg
	s.mutated = true
}

// SetRegisterError stores a one-shot registration error message.
func (s *Session) SetRegisterError(msg string) {
	s.RegisterError = msg
	s.mutated = true
}

// PopError returns and clears the pending login error.
func (s *Session) PopError() string {
	msg := s.Error
	if msg != "" {
		s.Error = ""
		s.mutated = true
	}
	return msg
}

// PopRegisterError returns and clears the pending registration error.
func (s *Session) PopRegisterError() string {
	msg := s.RegisterError
	if msg != "" {
		s.RegisterError = ""
		s.mutated = true
	}
	return msg
}

// Logout clears the authenticated user and transient errors. The
// language preference survives.
func (s *Session) Logout() {
	s.UserID = ""
	s.Username = ""
	s.Error = ""
	s.RegisterError = ""
	s.mutated = true
}

// Save applies pending mutations to the cookie store and writes the
// cookie. Handlers that render a body must call it before the first
// write: the response headers flush with the body, and a Set-Cookie
// issued after that is lost. Redirecting handlers can rely on the
// middleware calling Save at response time. No-op when nothing changed.
func (s *Session) Save() {
	if !s.mutated {
		return
	}
	setOrDelete(s.store, fieldUserID, s.UserID)
	setOrDelete(s.store, fieldUsername, s.Username)
	setOrDelete(s.store, fieldLanguage, s.Language)
	setOrDelete(s.store, fieldError, s.Error)
	setOrDelete(s.store, fieldRegisterError, s.RegisterError)
	if err := s.store.Save(); err != nil {
		s.logger.Error("failed to save session", zap.Error(err))
	}
	s.mutated = false
}

// CurrentSession returns the request's session state. The session
// middleware must have run.
func CurrentSession(c *gin.Context) *Session {
	return c.MustGet(sessionContextKey).(*Session)
}

// SessionMiddleware loads the cookie session into a Session snapshot
// before the handler runs and saves any mutations the handler did not
// already flush itself.
func SessionMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := &Session{
			store:  sessions.Default(c),
			logger: logger,
		}
		state.UserID = getString(state.store, fieldUserID)
		state.Username = getString(state.store, fieldUsername)
		state.Language = getString(state.store, fieldLanguage)
		state.Error = getString(state.store, fieldError)
		state.RegisterError = getString(state.store, fieldRegisterError)
		c.Set(sessionContextKey, state)

		c.Next()

		state.Save()
	}
}

func getString(store sessions.Session, key string) string {
	if v, ok := store.Get(key).(string); ok {
		return v
	}
	return ""
}

func setOrDelete(store sessions.Session, key, value string) {
	if value == "" {
		store.Delete(key)
		return
	}
	store.Set(key, value)
}
