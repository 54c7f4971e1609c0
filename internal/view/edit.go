package view

import (
	"errors"
	"strings"
)

var (
	// ErrEditInProgress blocks any action on other items while a draft is
	// open. The guard is global: one edit at a time, everywhere.
	ErrEditInProgress = errors.New("finish the current edit first: save or cancel")

	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrTodoNotFound = errors.New("todo not found in the loaded list")
	ErrNotEditing   = errors.New("no edit in progress")
)

// Draft is the unsaved edit of a todo's title/due/priority.
type Draft struct {
	Title    string
	DueAt    string // YYYY-MM-DD, empty clears the due date
	Priority string
}

// Edit is the editing state: which todo, and the in-memory draft.
type Edit struct {
	ID    int64
	Draft Draft
}

// StartEdit moves viewing → editing(id), seeding the draft from the row's
// current values. Starting an edit on another item while one is open is
// rejected; re-selecting the item already being edited is a no-op.
func (s *State) StartEdit(id int64) error {
	if s.Edit != nil {
		if s.Edit.ID == id {
			return nil
		}
		return ErrEditInProgress
	}

	for _, t := range s.Todos {
		if t.ID != id {
			continue
		}
		draft := Draft{
			Title:    t.Title,
			Priority: t.Priority,
		}
		if t.DueAt != nil {
			draft.DueAt = *t.DueAt
		}
		s.Edit = &Edit{ID: id, Draft: draft}
		return nil
	}
	return ErrTodoNotFound
}

// UpdateDraft replaces the in-memory draft. No network call happens here.
func (s *State) UpdateDraft(draft Draft) error {
	if s.Edit == nil {
		return ErrNotEditing
	}
	s.Edit.Draft = draft
	return nil
}

// CancelEdit discards the draft and returns to viewing.
func (s *State) CancelEdit() {
	s.Edit = nil
}

// SaveDraft validates the draft and returns the PATCH payload for it. On
// success the caller persists the fields, reloads the list and calls
// FinishEdit; on validation failure the state stays in editing.
func (s *State) SaveDraft() (int64, map[string]interface{}, error) {
	if s.Edit == nil {
		return 0, nil, ErrNotEditing
	}

	title := strings.TrimSpace(s.Edit.Draft.Title)
	if title == "" {
		return 0, nil, ErrEmptyTitle
	}

	fields := map[string]interface{}{
		"title":    title,
		"priority": s.Edit.Draft.Priority,
	}
	if due := strings.TrimSpace(s.Edit.Draft.DueAt); due != "" {
		fields["due_at"] = due
	} else {
		fields["due_at"] = nil
	}

	return s.Edit.ID, fields, nil
}

// FinishEdit returns to viewing after a successful save.
func (s *State) FinishEdit() {
	s.Edit = nil
}

// Guard rejects list-mutating actions while an edit is open. It runs before
// any state changes, so nothing needs to be reverted afterwards.
func (s *State) Guard() error {
	if s.Edit != nil {
		return ErrEditInProgress
	}
	return nil
}

// Editing reports whether id is the todo currently being edited.
func (s *State) Editing(id int64) bool {
	return s.Edit != nil && s.Edit.ID == id
}
