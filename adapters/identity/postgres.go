package identity

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/crypto/argon2"

	"shetkarai/domain/lang"
	"shetkarai/internal/errors"
	"shetkarai/models"
	"shetkarai/ports"
)

// Argon2id parameters for server-side password hashing.
const (
	argonTime    uint32 = 3
	argonMemory  uint32 = 64 * 1024 // 64 MB
	argonThreads uint8  = 1
	argonKeyLen  uint32 = 32
	saltLen             = 16
)

// PostgresStore is the self-hosted identity backend: accounts and
// profiles live in a local users table instead of a Supabase project.
type PostgresStore struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewPostgresStore creates the store on an open connection.
func NewPostgresStore(db *sqlx.DB, logger *zap.Logger) ports.Identity {
	return &PostgresStore{db: db, logger: logger}
}

type userRow struct {
	ID                 uuid.UUID `db:"id"`
	Email              string    `db:"email"`
	Username           string    `db:"username"`
	PasswordHash       []byte    `db:"password_hash"`
	PasswordSalt       []byte    `db:"password_salt"`
	LanguagePreference string    `db:"language_preference"`
}

// Register creates the account row with an argon2id password hash.
func (s *PostgresStore) Register(ctx context.Context, email, password, username string, l lang.Language) (*models.Principal, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	row := userRow{
		ID:                 uuid.New(),
		Email:              strings.ToLower(strings.TrimSpace(email)),
		Username:           username,
		PasswordHash:       hashPassword([]byte(password), salt),
		PasswordSalt:       salt,
		LanguagePreference: l.String(),
	}

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO users (id, email, username, password_hash, password_salt, language_preference, created_at, updated_at)
		VALUES (:id, :email, :username, :password_hash, :password_salt, :language_preference, NOW(), NOW())
	`, row)
	if err != nil {
		var pqErr *pq.Error
		if stderrors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return nil, errors.Conflict("email already registered")
		}
		return nil, errors.Wrap(err, "failed to create user")
	}

	return &models.Principal{ID: row.ID.String(), Email: row.Email}, nil
}

// Login verifies credentials against the stored hash.
func (s *PostgresStore) Login(ctx context.Context, email, password string) (*models.Principal, error) {
	var row userRow
	err := s.db.GetContext(ctx, &row, `
		SELECT id, email, username, password_hash, password_salt, language_preference
		FROM users
		WHERE email = $1
	`, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.Unauthorized("invalid email or password")
		}
		return nil, errors.Wrap(err, "failed to look up user")
	}

	got := hashPassword([]byte(password), row.PasswordSalt)
	if subtle.ConstantTimeCompare(got, row.PasswordHash) != 1 {
		return nil, errors.Unauthorized("invalid email or password")
	}

	return &models.Principal{ID: row.ID.String(), Email: row.Email}, nil
}

// Profile fetches the profile fields for a user, or nil when absent.
func (s *PostgresStore) Profile(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.GetContext(ctx, &profile, `
		SELECT id, username, language_preference
		FROM users
		WHERE id = $1
	`, userID)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to fetch profile")
	}
	return &profile, nil
}

// SetLanguage updates the stored language preference.
func (s *PostgresStore) SetLanguage(ctx context.Context, userID string, l lang.Language) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE users SET language_preference = $1, updated_at = NOW() WHERE id = $2
	`, l.String(), userID)
	if err != nil {
		return errors.Wrap(err, "failed to update language preference")
	}
	return nil
}

func hashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}
