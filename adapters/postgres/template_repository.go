package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"skillboard/domain/core"
	"skillboard/domain/template"
	"skillboard/ports"
)

// templateRepository implements the TemplateRepository interface
type templateRepository struct {
	db *sqlx.DB
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *sqlx.DB) ports.TemplateRepository {
	return &templateRepository{db: db}
}

// Create inserts a new skill template with its matrix stored as JSON
func (r *templateRepository) Create(ctx context.Context, t *template.SkillTemplate) error {
	matrixJSON, err := json.Marshal(t.Matrix)
	if err != nil {
		return fmt.Errorf("failed to marshal matrix: %w", err)
	}

	query := `INSERT INTO skill_templates (
		id, owner_id, name, original_filename, sheet_name, matrix, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.db.ExecContext(ctx, query,
		t.ID, nullableID(t.OwnerID), t.Name, t.OriginalFilename, t.SheetName,
		matrixJSON, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

// GetByID retrieves a template by its ID
func (r *templateRepository) GetByID(ctx context.Context, id core.ID) (*template.SkillTemplate, error) {
	query := `SELECT
		id, COALESCE(owner_id::text, '') as owner_id, name, original_filename,
		sheet_name, matrix, created_at, updated_at
	FROM skill_templates WHERE id = $1`

	var t template.SkillTemplate
	var matrixJSON []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.OwnerID, &t.Name, &t.OriginalFilename,
		&t.SheetName, &matrixJSON, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.NewNotFoundError("template", id.String())
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	if err := json.Unmarshal(matrixJSON, &t.Matrix); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matrix: %w", err)
	}
	return &t, nil
}

// List retrieves templates newest-first
func (r *templateRepository) List(ctx context.Context, limit, offset int) ([]*template.SkillTemplate, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT
		id, COALESCE(owner_id::text, '') as owner_id, name, original_filename,
		sheet_name, matrix, created_at, updated_at
	FROM skill_templates ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []*template.SkillTemplate
	for rows.Next() {
		var t template.SkillTemplate
		var matrixJSON []byte
		if err := rows.Scan(
			&t.ID, &t.OwnerID, &t.Name, &t.OriginalFilename,
			&t.SheetName, &matrixJSON, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		if err := json.Unmarshal(matrixJSON, &t.Matrix); err != nil {
			return nil, fmt.Errorf("failed to unmarshal matrix: %w", err)
		}
		templates = append(templates, &t)
	}
	return templates, rows.Err()
}

// UpdateMatrix replaces the stored matrix verbatim
func (r *templateRepository) UpdateMatrix(ctx context.Context, id core.ID, matrix [][]string) error {
	matrixJSON, err := json.Marshal(matrix)
	if err != nil {
		return fmt.Errorf("failed to marshal matrix: %w", err)
	}

	query := `UPDATE skill_templates SET matrix = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, matrixJSON, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update template matrix: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return core.NewNotFoundError("template", id.String())
	}
	return nil
}

// Delete removes a template
func (r *templateRepository) Delete(ctx context.Context, id core.ID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM skill_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return core.NewNotFoundError("template", id.String())
	}
	return nil
}

// nullableID maps an empty domain ID to SQL NULL
func nullableID(id core.ID) interface{} {
	if id.IsEmpty() {
		return nil
	}
	return id
}
