package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/choimj77/team-todo-api/internal/models"
	"github.com/choimj77/team-todo-api/internal/view"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Strikethrough(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	editingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	priorityHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	priorityMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	priorityLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)
)

func (m Model) View() string {
	if m.mode == modeJoin {
		return m.viewJoin()
	}
	return m.viewList()
}

func (m Model) viewJoin() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("TEAM TODO"))
	b.WriteString("\n\n")
	b.WriteString("Enter your team's join code:\n\n")
	b.WriteString(m.joinInput.View())
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("enter: load team • esc: quit"))
	return b.String()
}

func (m Model) viewList() string {
	var b strings.Builder

	team := "(no team)"
	if m.state.Team != nil {
		team = fmt.Sprintf("%s (%s)", m.state.Team.Name, m.state.Team.JoinCode)
	}
	b.WriteString(headerStyle.Render("TEAM TODO — " + team))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("filter: %s  sort: %s  search: %s\n\n",
		footerKeyStyle.Render(string(m.state.Filter)),
		footerKeyStyle.Render(string(m.state.Sort)),
		m.searchInput.View()))

	visible := m.state.Visible()
	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("nothing to show"))
		b.WriteString("\n")
	}

	today := time.Now()
	for i, t := range visible {
		prefix := "  "
		if i == m.cursor && m.mode == modeList {
			prefix = cursorStyle.Render("> ")
		}

		if m.state.Editing(t.ID) && m.mode == modeEdit {
			b.WriteString(prefix)
			b.WriteString(editingStyle.Render("editing: "))
			b.WriteString(m.formView())
			b.WriteString("\n")
			continue
		}

		b.WriteString(prefix)
		b.WriteString(renderTodo(t, today))
		b.WriteString("\n")
	}

	if m.mode == modeAdd {
		b.WriteString("\n")
		b.WriteString(editingStyle.Render("new todo: "))
		b.WriteString(m.formView())
		b.WriteString("\n")
	}

	stats := m.state.Stats()
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("total: %d  active: %d  done: %d",
		stats.Total, stats.Active, stats.Done)))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.helpView())
	return b.String()
}

func renderTodo(t models.Todo, today time.Time) string {
	check := "[ ]"
	if t.Done {
		check = "[x]"
	}

	title := t.Title
	if t.Done {
		title = doneStyle.Render(title)
	}

	parts := []string{check, title, priorityBadge(t.Priority)}
	if t.DueAt != nil {
		parts = append(parts, dimStyle.Render("due "+*t.DueAt))
		if view.IsOverdue(t, today) {
			parts = append(parts, overdueStyle.Render("overdue"))
		}
	}
	return strings.Join(parts, " ")
}

func priorityBadge(p string) string {
	switch p {
	case models.PriorityHigh:
		return priorityHighStyle.Render("high")
	case models.PriorityLow:
		return priorityLowStyle.Render("low")
	default:
		return priorityMidStyle.Render("mid")
	}
}

func (m Model) formView() string {
	pri := priorities[m.priority]
	priField := priorityBadge(pri)
	if m.focus == fieldPriority {
		priField = cursorStyle.Render("< ") + priField + cursorStyle.Render(" >")
	}
	return fmt.Sprintf("%s  %s  %s", m.titleInput.View(), m.dueInput.View(), priField)
}

func (m Model) helpView() string {
	switch m.mode {
	case modeSearch:
		return dimStyle.Render("type to search • enter/esc: done")
	case modeAdd:
		return dimStyle.Render("tab: next field • enter: add • esc: discard")
	case modeEdit:
		return dimStyle.Render("tab: next field • enter: save • esc: cancel")
	default:
		return dimStyle.Render("j/k: move • space: toggle • a: add • e: edit • d: delete • f: filter • s: sort • /: search • r: reload • c: change team • q: quit")
	}
}
