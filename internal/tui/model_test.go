package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/choimj77/team-todo-api/internal/client"
	"github.com/choimj77/team-todo-api/internal/models"
	"github.com/choimj77/team-todo-api/internal/view"
)

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func strPtr(s string) *string { return &s }

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := New(client.New("http://localhost:3000"), "")

	next, _ := m.Update(teamMsg(models.Team{ID: 1, Name: "Design", JoinCode: "AB12CD34"}))
	m = next.(Model)

	next, _ = m.Update(todosMsg([]models.Todo{
		{ID: 1, TeamID: 1, Title: "write launch email", Priority: "high", DueAt: strPtr("2026-02-01"), CreatedAt: time.Now()},
		{ID: 2, TeamID: 1, Title: "fix signup bug", Priority: "mid", Done: true, CreatedAt: time.Now()},
	}))
	return next.(Model)
}

func TestStartsInJoinMode(t *testing.T) {
	m := New(client.New("http://localhost:3000"), "")
	assert.Equal(t, modeJoin, m.mode)
	assert.Empty(t, m.joinInput.Value())

	withCode := New(client.New("http://localhost:3000"), "ab12cd34")
	assert.Equal(t, "ab12cd34", withCode.joinInput.Value())
	assert.NotNil(t, withCode.Init())
}

func TestTeamLoadEntersListMode(t *testing.T) {
	m := loadedModel(t)
	assert.Equal(t, modeList, m.mode)
	require.NotNil(t, m.state.Team)
	assert.Equal(t, "Design", m.state.Team.Name)
	assert.Len(t, m.state.Todos, 2)
}

func TestFilterAndSortCycling(t *testing.T) {
	m := loadedModel(t)

	next, _ := m.Update(key('f'))
	m = next.(Model)
	assert.Equal(t, view.FilterActive, m.state.Filter)

	next, _ = m.Update(key('f'))
	m = next.(Model)
	assert.Equal(t, view.FilterDone, m.state.Filter)

	next, _ = m.Update(key('s'))
	m = next.(Model)
	assert.Equal(t, view.SortCreatedAsc, m.state.Sort)
}

func TestFilterClampsCursor(t *testing.T) {
	m := loadedModel(t)
	m.cursor = 1

	// only one done todo, cursor must follow the shrunk list
	next, _ := m.Update(key('f')) // active
	m = next.(Model)
	next, _ = m.Update(key('f')) // done
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestEditSeedsFormFromSelectedTodo(t *testing.T) {
	m := loadedModel(t)

	next, _ := m.Update(key('e'))
	m = next.(Model)

	assert.Equal(t, modeEdit, m.mode)
	require.NotNil(t, m.state.Edit)
	// created-desc default puts todo 2 first
	assert.Equal(t, int64(2), m.state.Edit.ID)
	assert.Equal(t, "fix signup bug", m.titleInput.Value())
}

func TestEscCancelsEdit(t *testing.T) {
	m := loadedModel(t)

	next, _ := m.Update(key('e'))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)

	assert.Equal(t, modeList, m.mode)
	assert.Nil(t, m.state.Edit)
}

func TestSaveWithEmptyDraftTitleStaysEditing(t *testing.T) {
	m := loadedModel(t)

	next, _ := m.Update(key('e'))
	m = next.(Model)
	m.titleInput.SetValue("   ")
	m.syncDraft()
	m.focus = fieldPriority

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	assert.Equal(t, modeEdit, m.mode)
	require.NotNil(t, m.state.Edit)
	assert.Equal(t, view.ErrEmptyTitle.Error(), m.status)
}

func TestErrorKeepsViewState(t *testing.T) {
	m := loadedModel(t)
	before := len(m.state.Todos)

	next, _ := m.Update(errMsg{errors.New("server error")})
	m = next.(Model)

	assert.Equal(t, "server error", m.status)
	assert.Len(t, m.state.Todos, before)
	assert.Equal(t, modeList, m.mode)
}

func TestSearchTypingRederivesWithoutNetwork(t *testing.T) {
	m := loadedModel(t)

	next, _ := m.Update(key('/'))
	m = next.(Model)
	assert.Equal(t, modeSearch, m.mode)

	next, cmd := m.Update(key('s'))
	m = next.(Model)
	assert.Equal(t, "s", m.state.Search)
	// textinput may emit cursor commands, but nothing hits the API here
	_ = cmd

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "s", m.state.Search)
}
