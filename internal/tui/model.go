// Package tui is the terminal front end: a bubbletea program that renders
// the view-state and talks to the API through internal/client.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/choimj77/team-todo-api/internal/client"
	"github.com/choimj77/team-todo-api/internal/joincode"
	"github.com/choimj77/team-todo-api/internal/models"
	"github.com/choimj77/team-todo-api/internal/view"
)

type mode int

const (
	modeJoin   mode = iota // entering a join code
	modeList               // browsing the list
	modeSearch             // typing into the search box
	modeAdd                // add form open
	modeEdit               // inline edit open
)

// form field indexes shared by the add and edit forms
const (
	fieldTitle = iota
	fieldDue
	fieldPriority
	fieldCount
)

var priorities = []string{models.PriorityHigh, models.PriorityMid, models.PriorityLow}

type Model struct {
	api   *client.Client
	state *view.State

	mode   mode
	cursor int
	status string

	joinInput   textinput.Model
	searchInput textinput.Model

	titleInput textinput.Model
	dueInput   textinput.Model
	priority   int // index into priorities
	focus      int

	width int
}

// Message types
type teamMsg models.Team
type todosMsg []models.Todo
type mutatedMsg struct{}
type errMsg struct{ err error }

func New(api *client.Client, code string) Model {
	join := textinput.New()
	join.Placeholder = "JOIN CODE"
	join.CharLimit = joincode.DefaultLength
	join.Focus()

	search := textinput.New()
	search.Placeholder = "search title"

	title := textinput.New()
	title.Placeholder = "what needs doing?"
	title.CharLimit = 500

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD (optional)"
	due.CharLimit = 10

	m := Model{
		api:         api,
		state:       view.NewState(),
		mode:        modeJoin,
		joinInput:   join,
		searchInput: search,
		titleInput:  title,
		dueInput:    due,
		priority:    1, // mid
	}
	if code != "" {
		m.joinInput.SetValue(code)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.joinInput.Value() != "" {
		return m.loadTeam(m.joinInput.Value())
	}
	return textinput.Blink
}

// Network commands. Each runs in its own goroutine and reports back as a
// message; the last response to arrive wins, matching the web client.

func (m Model) loadTeam(code string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		team, err := api.TeamByCode(ctx, joincode.Normalize(code))
		if err != nil {
			return errMsg{err}
		}
		return teamMsg(team)
	}
}

func (m Model) loadTodos() tea.Cmd {
	if m.state.Team == nil {
		return nil
	}
	api, teamID := m.api, m.state.Team.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		todos, err := api.Todos(ctx, teamID)
		if err != nil {
			return errMsg{err}
		}
		return todosMsg(todos)
	}
}

func (m Model) createTodo(req models.CreateTodoRequest) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if _, err := api.CreateTodo(ctx, req); err != nil {
			return errMsg{err}
		}
		return mutatedMsg{}
	}
}

func (m Model) patchTodo(id int64, fields map[string]interface{}) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if _, err := api.UpdateTodo(ctx, id, fields); err != nil {
			return errMsg{err}
		}
		return mutatedMsg{}
	}
}

func (m Model) deleteTodo(id int64) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := api.DeleteTodo(ctx, id); err != nil {
			return errMsg{err}
		}
		return mutatedMsg{}
	}
}
