// Package view holds the client-side view-state and the pure logic deriving
// the visible todo list from it. Nothing here touches the network; the TUI
// owns all I/O.
package view

import (
	"time"

	"github.com/choimj77/team-todo-api/internal/models"
)

type Filter string

const (
	FilterAll    Filter = "all"
	FilterActive Filter = "active"
	FilterDone   Filter = "done"
)

type Sort string

const (
	SortCreatedAsc  Sort = "created-asc"
	SortCreatedDesc Sort = "created-desc"
	SortDueAsc      Sort = "due-asc"
	SortDueDesc     Sort = "due-desc"
)

// State is the whole client view-state: the selected team, the raw list as
// fetched, the view knobs, and at most one in-progress edit.
type State struct {
	Team   *models.Team
	Todos  []models.Todo
	Filter Filter
	Search string
	Sort   Sort
	Edit   *Edit // nil while viewing
}

func NewState() *State {
	return &State{
		Filter: FilterAll,
		Sort:   SortCreatedDesc,
	}
}

// SetTeam selects a team and drops state tied to the previous one.
func (s *State) SetTeam(team models.Team) {
	s.Team = &team
	s.Todos = nil
	s.Edit = nil
}

// SetTodos replaces the loaded list wholesale after a successful fetch.
func (s *State) SetTodos(todos []models.Todo) {
	s.Todos = todos
}

// Visible applies the derive pipeline to the current state.
func (s *State) Visible() []models.Todo {
	return Derive(s.Todos, s.Filter, s.Search, s.Sort)
}

type Stats struct {
	Total  int
	Active int
	Done   int
}

func (s *State) Stats() Stats {
	stats := Stats{Total: len(s.Todos)}
	for _, t := range s.Todos {
		if t.Done {
			stats.Done++
		} else {
			stats.Active++
		}
	}
	return stats
}

// IsOverdue reports whether the todo's due date is strictly before today.
// Completed todos are never flagged.
func IsOverdue(t models.Todo, today time.Time) bool {
	if t.Done || t.DueAt == nil {
		return false
	}
	return *t.DueAt < today.Format("2006-01-02")
}
