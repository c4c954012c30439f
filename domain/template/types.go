package template

import (
	"time"

	"skillboard/domain/core"
)

// SkillTemplate represents a stored skill template: the canonical cell matrix
// of one uploaded spreadsheet tab plus file metadata. Only the matrix is
// persisted; grouped views are derived on demand and discarded.
type SkillTemplate struct {
	ID      core.ID `json:"id"`
	OwnerID core.ID `json:"owner_id,omitempty"`

	// File information
	Name             string `json:"name"`
	OriginalFilename string `json:"original_filename"`
	SheetName        string `json:"sheet_name,omitempty"`

	// Canonical cell matrix, stored verbatim
	Matrix [][]string `json:"matrix"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a template with a fresh ID and timestamps.
func New(name, originalFilename string, matrix [][]string) *SkillTemplate {
	now := time.Now()
	return &SkillTemplate{
		ID:               core.NewID(),
		Name:             name,
		OriginalFilename: originalFilename,
		Matrix:           matrix,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// RowCount returns the number of rows in the stored matrix.
func (t *SkillTemplate) RowCount() int {
	return len(t.Matrix)
}

// DisplayName returns the template name or falls back to the original filename.
func (t *SkillTemplate) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.OriginalFilename
}
