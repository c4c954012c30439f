package app

import (
	"context"
	"sync"
	"testing"

	"skillboard/domain/core"
	"skillboard/domain/sheet"
	"skillboard/domain/template"
	apperrors "skillboard/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryTemplateRepository is an in-memory TemplateRepository for tests.
type memoryTemplateRepository struct {
	mu        sync.Mutex
	templates map[core.ID]*template.SkillTemplate
	updates   int
}

func newMemoryRepository() *memoryTemplateRepository {
	return &memoryTemplateRepository{templates: make(map[core.ID]*template.SkillTemplate)}
}

func (m *memoryTemplateRepository) Create(ctx context.Context, t *template.SkillTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates[t.ID] = t
	return nil
}

func (m *memoryTemplateRepository) GetByID(ctx context.Context, id core.ID) (*template.SkillTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.templates[id]
	if !ok {
		return nil, core.NewNotFoundError("template", id.String())
	}
	return t, nil
}

func (m *memoryTemplateRepository) List(ctx context.Context, limit, offset int) ([]*template.SkillTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*template.SkillTemplate
	for _, t := range m.templates {
		out = append(out, t)
	}
	return out, nil
}

func (m *memoryTemplateRepository) UpdateMatrix(ctx context.Context, id core.ID, matrix [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.templates[id]
	if !ok {
		return core.NewNotFoundError("template", id.String())
	}
	t.Matrix = matrix
	m.updates++
	return nil
}

func (m *memoryTemplateRepository) Delete(ctx context.Context, id core.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.templates[id]; !ok {
		return core.NewNotFoundError("template", id.String())
	}
	delete(m.templates, id)
	return nil
}

func testMatrix() [][]string {
	return [][]string{
		{"Skill", "Category", "Mandatory"},
		{"Budget Planning", "Finance", "Yes"},
		{"Vendor Negotiation", "Procurement", "No"},
	}
}

func newTestService() (*TemplateService, *memoryTemplateRepository) {
	repo := newMemoryRepository()
	return NewTemplateService(repo, nil, nil), repo
}

func TestTemplateService_IngestDerivesStructure(t *testing.T) {
	svc, _ := newTestService()

	view, err := svc.Ingest(context.Background(), "Finance Skills", "skills.xlsx", "Sheet1", testMatrix())
	require.NoError(t, err)

	assert.Equal(t, 0, view.Structure.HeaderRow)
	assert.Equal(t, 1, view.Structure.Roles.Column(sheet.RoleCategory))
	assert.Len(t, view.Structure.Categories, 2)
	assert.Len(t, view.Profile, 3)
}

func TestTemplateService_IngestRejectsEmptyMatrix(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Ingest(context.Background(), "empty", "empty.csv", "", nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.GetCode(err))
}

func TestTemplateService_MutationsComposeSequentially(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	view, err := svc.Ingest(ctx, "Finance Skills", "skills.xlsx", "Sheet1", testMatrix())
	require.NoError(t, err)
	id := view.Template.ID

	// Edit applies to the live sheet.
	view, err = svc.EditCell(ctx, id, 2, 0, "Supplier Negotiation")
	require.NoError(t, err)

	// Add a row into Finance, then delete the original Finance row; the
	// grouping must be re-derived from the mutated sheet each time.
	idx, view, err := svc.AddRow(ctx, id, "Finance")
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	view, err = svc.DeleteRow(ctx, id, 1)
	require.NoError(t, err)

	for _, cat := range view.Structure.Categories {
		for _, rec := range cat.Skills {
			assert.Less(t, rec.OriginalRow, 3)
		}
		if cat.Name == "Procurement" {
			require.Len(t, cat.Skills, 1)
			assert.Equal(t, "Supplier Negotiation", cat.Skills[0].Value(view.Structure.Roles, sheet.RoleSkill))
			assert.Equal(t, 1, cat.Skills[0].OriginalRow)
		}
	}

	// Save writes the mutated matrix verbatim.
	require.NoError(t, svc.Save(ctx, id))
	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, stored.Matrix, 3)
	assert.Equal(t, "Supplier Negotiation", stored.Matrix[1][0])
	assert.Equal(t, "Finance", stored.Matrix[2][1])
}

func TestTemplateService_InvalidIndexIsRejected(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	view, err := svc.Ingest(ctx, "Finance Skills", "skills.xlsx", "Sheet1", testMatrix())
	require.NoError(t, err)
	id := view.Template.ID

	_, err = svc.EditCell(ctx, id, 99, 0, "x")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidIndex, apperrors.GetCode(err))

	_, err = svc.DeleteRow(ctx, id, -1)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidIndex, apperrors.GetCode(err))

	// Sheet untouched by the rejected mutations.
	after, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, after.Template.RowCount())
}

func TestTemplateService_UnknownTemplate(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Get(context.Background(), core.NewID())
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))
}

func TestTemplateService_HeaderEditReresolvesRoles(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	view, err := svc.Ingest(ctx, "Plain", "plain.csv", "", [][]string{
		{"Skill", "Notes"},
		{"Budget Planning", "annual cycle"},
	})
	require.NoError(t, err)
	id := view.Template.ID
	require.False(t, view.Structure.Roles.Resolved(sheet.RoleCategory))

	// Renaming a header cell to "Category" turns on Tier-1 grouping.
	view, err = svc.EditCell(ctx, id, 0, 1, "Category")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Structure.Roles.Column(sheet.RoleCategory))
}

func TestTemplateService_SaveSkipsUnchangedMatrix(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	view, err := svc.Ingest(ctx, "Finance Skills", "skills.xlsx", "Sheet1", testMatrix())
	require.NoError(t, err)
	id := view.Template.ID

	require.NoError(t, svc.Save(ctx, id))
	assert.Equal(t, 0, repo.updates)

	_, err = svc.EditCell(ctx, id, 1, 0, "Cash Flow Forecasting")
	require.NoError(t, err)
	require.NoError(t, svc.Save(ctx, id))
	assert.Equal(t, 1, repo.updates)

	// Saving again with nothing new is a no-op.
	require.NoError(t, svc.Save(ctx, id))
	assert.Equal(t, 1, repo.updates)
}
