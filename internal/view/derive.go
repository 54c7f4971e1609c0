package view

import (
	"sort"
	"strings"

	"github.com/choimj77/team-todo-api/internal/models"
)

// Derive is the filter → search → sort pipeline producing the visible list.
// The input slice is never mutated, and ties keep their original order.
func Derive(todos []models.Todo, filter Filter, search string, sortKey Sort) []models.Todo {
	out := make([]models.Todo, 0, len(todos))

	for _, t := range todos {
		switch filter {
		case FilterActive:
			if t.Done {
				continue
			}
		case FilterDone:
			if !t.Done {
				continue
			}
		}
		out = append(out, t)
	}

	q := strings.ToLower(strings.TrimSpace(search))
	if q != "" {
		matched := out[:0]
		for _, t := range out {
			if strings.Contains(strings.ToLower(t.Title), q) {
				matched = append(matched, t)
			}
		}
		out = matched
	}

	switch sortKey {
	case SortCreatedAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortCreatedDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].CreatedAt.Before(out[i].CreatedAt)
		})
	case SortDueAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return dueLess(out[i], out[j], false)
		})
	case SortDueDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return dueLess(out[i], out[j], true)
		})
	}

	return out
}

// dueLess orders by due date with missing dates always last, in either
// direction. YYYY-MM-DD strings compare correctly as text.
func dueLess(a, b models.Todo, desc bool) bool {
	if a.DueAt == nil {
		return false
	}
	if b.DueAt == nil {
		return true
	}
	if desc {
		return *a.DueAt > *b.DueAt
	}
	return *a.DueAt < *b.DueAt
}
