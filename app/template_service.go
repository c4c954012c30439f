package app

import (
	"context"
	"sync"

	"skillboard/domain/core"
	"skillboard/domain/sheet"
	"skillboard/domain/template"
	"skillboard/internal"
	apperrors "skillboard/internal/errors"
	"skillboard/internal/profile"
	"skillboard/internal/structure"
	"skillboard/ports"
)

// TemplateView bundles a template with its derived structure. The structure
// and profile are recomputed on every call that touches the matrix; only the
// matrix itself is ever persisted.
type TemplateView struct {
	Template  *template.SkillTemplate `json:"template"`
	Structure sheet.StructureView     `json:"structure"`
	Profile   []profile.ColumnProfile `json:"profile"`
}

// editSession holds one template's live sheet for the duration of an edit
// session. The per-session mutex serializes mutations: each one applies to
// the result of the previous one, never to a stale snapshot.
type editSession struct {
	mu    sync.Mutex
	tpl   *template.SkillTemplate
	sheet *sheet.Sheet
	view  sheet.StructureView
}

// TemplateService orchestrates template ingestion, structure derivation,
// mutations, and persistence.
type TemplateService struct {
	repo   ports.TemplateRepository
	table  structure.KeywordTable
	logger *internal.Logger

	mu       sync.Mutex
	sessions map[core.ID]*editSession
}

// NewTemplateService creates the service. A nil keyword table falls back to
// the built-in classification table.
func NewTemplateService(repo ports.TemplateRepository, table structure.KeywordTable, logger *internal.Logger) *TemplateService {
	if table == nil {
		table = structure.DefaultKeywordTable()
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &TemplateService{
		repo:     repo,
		table:    table,
		logger:   logger,
		sessions: make(map[core.ID]*editSession),
	}
}

// Ingest stores a freshly uploaded matrix as a new template and returns its
// first derived view.
func (s *TemplateService) Ingest(ctx context.Context, name, filename, sheetName string, matrix [][]string) (*TemplateView, error) {
	if len(matrix) == 0 {
		return nil, apperrors.InvalidInput("uploaded sheet has no rows")
	}

	tpl := template.New(name, filename, matrix)
	tpl.SheetName = sheetName
	if err := s.repo.Create(ctx, tpl); err != nil {
		return nil, apperrors.Wrap(err, "failed to store template")
	}

	sess := &editSession{
		tpl:   tpl,
		sheet: sheet.NewSheet(matrix),
	}
	sess.view = structure.Derive(sess.sheet, s.table)

	s.mu.Lock()
	s.sessions[tpl.ID] = sess
	s.mu.Unlock()

	s.logger.Info("ingested template %s (%d rows, header at %d, %d categories)",
		tpl.ID, len(matrix), sess.view.HeaderRow, len(sess.view.Categories))
	return s.snapshot(sess), nil
}

// Get returns the current derived view of a template, loading it from
// storage when no edit session is open.
func (s *TemplateService) Get(ctx context.Context, id core.ID) (*TemplateView, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.snapshot(sess), nil
}

// List returns stored templates without deriving their structure.
func (s *TemplateService) List(ctx context.Context, limit, offset int) ([]*template.SkillTemplate, error) {
	templates, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list templates")
	}
	return templates, nil
}

// EditCell replaces one cell and re-derives the grouped view. Header and
// roles are re-resolved only when the edited row is the header row itself.
func (s *TemplateService) EditCell(ctx context.Context, id core.ID, row, col int, value string) (*TemplateView, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := structure.EditCell(sess.sheet, row, col, value); err != nil {
		return nil, apperrors.InvalidIndex(err)
	}
	if row == sess.sheet.HeaderRow {
		sess.view = structure.Derive(sess.sheet, s.table)
	} else {
		sess.view = structure.Regroup(sess.sheet, sess.view.Roles, s.table)
	}
	return s.snapshot(sess), nil
}

// AddRow appends an empty skill row, pre-filled into the target category
// when an explicit category column is active, and returns the new row index
// alongside the re-derived view.
func (s *TemplateService) AddRow(ctx context.Context, id core.ID, category string) (int, *TemplateView, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return 0, nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	idx := structure.AddRow(sess.sheet, sess.view.Roles, category)
	sess.view = structure.Regroup(sess.sheet, sess.view.Roles, s.table)
	return idx, s.snapshot(sess), nil
}

// DeleteRow removes a row and re-derives. All previously observed record
// indices are invalid afterwards; callers must use the fresh view.
func (s *TemplateService) DeleteRow(ctx context.Context, id core.ID, row int) (*TemplateView, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	headerDeleted := row == sess.sheet.HeaderRow
	if err := structure.DeleteRow(sess.sheet, row); err != nil {
		return nil, apperrors.InvalidIndex(err)
	}
	if headerDeleted {
		sess.view = structure.Derive(sess.sheet, s.table)
	} else {
		sess.view = structure.Regroup(sess.sheet, sess.view.Roles, s.table)
	}
	return s.snapshot(sess), nil
}

// Save persists the session's mutated matrix verbatim. Unchanged matrices
// are detected by content hash and skipped.
func (s *TemplateService) Save(ctx context.Context, id core.ID) error {
	sess, err := s.session(ctx, id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	matrix := sess.sheet.Matrix()
	if core.HashMatrix(matrix) == core.HashMatrix(sess.tpl.Matrix) {
		s.logger.Debug("template %s unchanged, skipping save", id)
		return nil
	}
	if err := s.repo.UpdateMatrix(ctx, id, matrix); err != nil {
		return apperrors.Wrap(err, "failed to save template")
	}
	sess.tpl.Matrix = matrix
	s.logger.Info("saved template %s (%d rows)", id, len(matrix))
	return nil
}

// Delete removes a template and closes its edit session.
func (s *TemplateService) Delete(ctx context.Context, id core.ID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if core.IsNotFoundError(err) {
			return apperrors.WithCode(apperrors.CodeNotFound, err)
		}
		return apperrors.Wrap(err, "failed to delete template")
	}
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// session returns the open edit session for a template, opening one from
// storage when needed.
func (s *TemplateService) session(ctx context.Context, id core.ID) (*editSession, error) {
	s.mu.Lock()
	if sess, ok := s.sessions[id]; ok {
		s.mu.Unlock()
		return sess, nil
	}
	s.mu.Unlock()

	tpl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if core.IsNotFoundError(err) {
			return nil, apperrors.WithCode(apperrors.CodeNotFound, err)
		}
		return nil, apperrors.Wrap(err, "failed to load template")
	}

	sess := &editSession{
		tpl:   tpl,
		sheet: sheet.NewSheet(tpl.Matrix),
	}
	sess.view = structure.Derive(sess.sheet, s.table)

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another caller may have opened the session in the meantime.
	if existing, ok := s.sessions[id]; ok {
		return existing, nil
	}
	s.sessions[id] = sess
	return sess, nil
}

// snapshot builds the response view; caller holds the session lock.
func (s *TemplateService) snapshot(sess *editSession) *TemplateView {
	return &TemplateView{
		Template:  sess.tpl,
		Structure: sess.view,
		Profile:   profile.Columns(sess.sheet),
	}
}
