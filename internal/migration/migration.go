package migration

import (
	"context"

	"github.com/jmoiron/sqlx"

	"skillboard/internal/errors"
)

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{version: "1.0.0"}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createTemplatesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create skill_templates table")
	}
	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}
	return nil
}

func (r *MigrationRunner) createTemplatesTable(ctx context.Context, db *sqlx.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS skill_templates (
		id UUID PRIMARY KEY,
		owner_id UUID,
		name TEXT NOT NULL,
		original_filename TEXT NOT NULL DEFAULT '',
		sheet_name TEXT NOT NULL DEFAULT '',
		matrix JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	queries := []string{
		`CREATE INDEX IF NOT EXISTS idx_skill_templates_owner ON skill_templates(owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_skill_templates_created ON skill_templates(created_at DESC)`,
	}
	for _, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
