package identity

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"shetkarai/adapters/identity/migrations"
)

// Migrate applies pending schema migrations for the local identity
// store from the embedded filesystem.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
