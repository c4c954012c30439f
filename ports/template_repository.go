package ports

import (
	"context"

	"skillboard/domain/core"
	"skillboard/domain/template"
)

// TemplateRepository provides persistence for skill templates. The stored
// unit is the flat cell matrix; derived groupings are never persisted.
type TemplateRepository interface {
	Create(ctx context.Context, t *template.SkillTemplate) error
	GetByID(ctx context.Context, id core.ID) (*template.SkillTemplate, error)
	List(ctx context.Context, limit, offset int) ([]*template.SkillTemplate, error)

	// UpdateMatrix replaces the stored matrix verbatim with the caller's
	// mutated copy ("save template").
	UpdateMatrix(ctx context.Context, id core.ID, matrix [][]string) error

	Delete(ctx context.Context, id core.ID) error
}
