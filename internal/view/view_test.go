package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/choimj77/team-todo-api/internal/models"
)

func TestStats(t *testing.T) {
	s := NewState()
	s.SetTodos([]models.Todo{
		{ID: 1, Done: false},
		{ID: 2, Done: true},
		{ID: 3, Done: false},
	})

	stats := s.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.Done)
}

func TestStatsEmpty(t *testing.T) {
	stats := NewState().Stats()
	assert.Equal(t, Stats{}, stats)
}

func TestIsOverdue(t *testing.T) {
	today := time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsOverdue(models.Todo{DueAt: strPtr("2026-02-09")}, today))
	assert.False(t, IsOverdue(models.Todo{DueAt: strPtr("2026-02-10")}, today), "due today is not overdue")
	assert.False(t, IsOverdue(models.Todo{DueAt: strPtr("2026-02-11")}, today))
	assert.False(t, IsOverdue(models.Todo{DueAt: nil}, today))
	assert.False(t, IsOverdue(models.Todo{DueAt: strPtr("2026-01-01"), Done: true}, today), "done todos are never overdue")
}
