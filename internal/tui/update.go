package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/choimj77/team-todo-api/internal/models"
	"github.com/choimj77/team-todo-api/internal/view"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case teamMsg:
		m.state.SetTeam(models.Team(msg))
		m.mode = modeList
		m.cursor = 0
		m.status = ""
		m.resetForm()
		return m, m.loadTodos()

	case todosMsg:
		m.state.SetTodos([]models.Todo(msg))
		m.clampCursor()
		return m, nil

	case mutatedMsg:
		if m.mode == modeEdit {
			m.state.FinishEdit()
			m.mode = modeList
			m.resetForm()
		}
		return m, m.loadTodos()

	case errMsg:
		// Failed calls leave prior view-state intact; only the status line
		// changes.
		m.status = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeJoin:
			return m.updateJoin(msg)
		case modeList:
			return m.updateList(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeAdd, modeEdit:
			return m.updateForm(msg)
		}
	}

	return m, nil
}

func (m Model) updateJoin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		code := strings.TrimSpace(m.joinInput.Value())
		if code == "" {
			m.status = "enter a join code"
			return m, nil
		}
		m.status = "loading team..."
		return m, m.loadTeam(code)
	}

	var cmd tea.Cmd
	m.joinInput, cmd = m.joinInput.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.cursor++
		m.clampCursor()

	case "f":
		m.state.Filter = nextFilter(m.state.Filter)
		m.clampCursor()
	case "s":
		m.state.Sort = nextSort(m.state.Sort)
	case "/":
		m.mode = modeSearch
		m.searchInput.Focus()
	case "r":
		m.status = ""
		return m, m.loadTodos()
	case "c":
		m.mode = modeJoin
		m.joinInput.SetValue("")
		m.joinInput.Focus()

	case "a":
		if err := m.state.Guard(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.resetForm()
		m.mode = modeAdd
		m.focus = fieldTitle
		m.titleInput.Focus()
		m.status = ""

	case "enter", "e":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.state.StartEdit(t.ID); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.seedFormFromDraft()
		m.mode = modeEdit
		m.focus = fieldTitle
		m.titleInput.Focus()
		m.status = ""

	case " ", "x":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		// Guard runs before anything changes, so a blocked toggle needs no
		// visual revert.
		if err := m.state.Guard(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, m.patchTodo(t.ID, map[string]interface{}{"done": !t.Done})

	case "d":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.state.Guard(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, m.deleteTodo(t.ID)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.mode = modeList
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Every keystroke re-derives from the already loaded list; no network.
	m.state.Search = m.searchInput.Value()
	m.clampCursor()
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.mode == modeEdit {
			m.state.CancelEdit()
		}
		m.mode = modeList
		m.resetForm()
		m.status = ""
		return m, nil

	case "tab", "shift+tab":
		if msg.String() == "tab" {
			m.focus = (m.focus + 1) % fieldCount
		} else {
			m.focus = (m.focus + fieldCount - 1) % fieldCount
		}
		m.syncFocus()
		return m, nil

	case "left", "right":
		if m.focus == fieldPriority {
			if msg.String() == "right" {
				m.priority = (m.priority + 1) % len(priorities)
			} else {
				m.priority = (m.priority + len(priorities) - 1) % len(priorities)
			}
			m.syncDraft()
			return m, nil
		}

	case "enter":
		if m.focus < fieldPriority {
			m.focus++
			m.syncFocus()
			return m, nil
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case fieldDue:
		m.dueInput, cmd = m.dueInput.Update(msg)
	}
	m.syncDraft()
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if m.mode == modeEdit {
		id, fields, err := m.state.SaveDraft()
		if err != nil {
			// Stay in the edit; the draft is still on screen.
			m.status = err.Error()
			return m, nil
		}
		m.status = "saving..."
		return m, m.patchTodo(id, fields)
	}

	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		m.status = view.ErrEmptyTitle.Error()
		return m, nil
	}

	req := models.CreateTodoRequest{
		TeamID: m.state.Team.ID,
		Title:  title,
	}
	p := priorities[m.priority]
	req.Priority = &p
	if due := strings.TrimSpace(m.dueInput.Value()); due != "" {
		req.DueAt = &due
	}

	m.mode = modeList
	m.resetForm()
	m.status = "adding..."
	return m, m.createTodo(req)
}

// syncDraft mirrors the form inputs into the in-memory draft while editing.
func (m *Model) syncDraft() {
	if m.mode != modeEdit {
		return
	}
	m.state.UpdateDraft(view.Draft{
		Title:    m.titleInput.Value(),
		DueAt:    strings.TrimSpace(m.dueInput.Value()),
		Priority: priorities[m.priority],
	})
}

func (m *Model) seedFormFromDraft() {
	draft := m.state.Edit.Draft
	m.titleInput.SetValue(draft.Title)
	m.dueInput.SetValue(draft.DueAt)
	m.priority = 1
	for i, p := range priorities {
		if p == draft.Priority {
			m.priority = i
		}
	}
}

func (m *Model) resetForm() {
	m.titleInput.SetValue("")
	m.dueInput.SetValue("")
	m.titleInput.Blur()
	m.dueInput.Blur()
	m.priority = 1
	m.focus = fieldTitle
}

func (m *Model) syncFocus() {
	m.titleInput.Blur()
	m.dueInput.Blur()
	switch m.focus {
	case fieldTitle:
		m.titleInput.Focus()
	case fieldDue:
		m.dueInput.Focus()
	}
}

func (m *Model) selected() (models.Todo, bool) {
	visible := m.state.Visible()
	if len(visible) == 0 || m.cursor < 0 || m.cursor >= len(visible) {
		return models.Todo{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := len(m.state.Visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func nextFilter(f view.Filter) view.Filter {
	switch f {
	case view.FilterAll:
		return view.FilterActive
	case view.FilterActive:
		return view.FilterDone
	default:
		return view.FilterAll
	}
}

func nextSort(s view.Sort) view.Sort {
	switch s {
	case view.SortCreatedDesc:
		return view.SortCreatedAsc
	case view.SortCreatedAsc:
		return view.SortDueAsc
	case view.SortDueAsc:
		return view.SortDueDesc
	default:
		return view.SortCreatedDesc
	}
}
