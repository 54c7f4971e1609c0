package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/choimj77/team-todo-api/internal/models"
)

func strPtr(s string) *string { return &s }

func makeList() []models.Todo {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return []models.Todo{
		{ID: 1, Title: "write launch email", Done: false, DueAt: strPtr("2026-02-01"), CreatedAt: base},
		{ID: 2, Title: "Fix signup bug", Done: true, DueAt: nil, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Title: "review PRICING page", Done: false, DueAt: strPtr("2026-01-15"), CreatedAt: base.Add(2 * time.Hour)},
	}
}

func ids(todos []models.Todo) []int64 {
	out := make([]int64, len(todos))
	for i, t := range todos {
		out[i] = t.ID
	}
	return out
}

func TestDeriveFilter(t *testing.T) {
	list := makeList()

	assert.Equal(t, []int64{3, 2, 1}, ids(Derive(list, FilterAll, "", SortCreatedDesc)))
	assert.Equal(t, []int64{3, 1}, ids(Derive(list, FilterActive, "", SortCreatedDesc)))
	assert.Equal(t, []int64{2}, ids(Derive(list, FilterDone, "", SortCreatedDesc)))
}

func TestDeriveFilterActiveKeepsOnlyUnfinished(t *testing.T) {
	list := []models.Todo{
		{ID: 1, Title: "a", Done: false},
		{ID: 2, Title: "b", Done: true},
	}
	visible := Derive(list, FilterActive, "", SortCreatedAsc)
	require.Len(t, visible, 1)
	assert.Equal(t, "a", visible[0].Title)
}

func TestDeriveSearchCaseInsensitive(t *testing.T) {
	list := makeList()

	assert.Equal(t, []int64{3}, ids(Derive(list, FilterAll, "pricing", SortCreatedAsc)))
	assert.Equal(t, []int64{3}, ids(Derive(list, FilterAll, "PRICING", SortCreatedAsc)))
	assert.Equal(t, []int64{2}, ids(Derive(list, FilterAll, "signup", SortCreatedAsc)))
	assert.Empty(t, Derive(list, FilterAll, "nothing here", SortCreatedAsc))

	// empty search passes everything
	assert.Len(t, Derive(list, FilterAll, "", SortCreatedAsc), 3)
	assert.Len(t, Derive(list, FilterAll, "   ", SortCreatedAsc), 3)
}

func TestDeriveSortCreated(t *testing.T) {
	list := makeList()

	assert.Equal(t, []int64{1, 2, 3}, ids(Derive(list, FilterAll, "", SortCreatedAsc)))
	assert.Equal(t, []int64{3, 2, 1}, ids(Derive(list, FilterAll, "", SortCreatedDesc)))
}

func TestDeriveSortDueNilAlwaysLast(t *testing.T) {
	// Due dates [2026-02-01, nil, 2026-01-15] in creation order.
	list := makeList()

	// due-asc: 2026-01-15, 2026-02-01, nil
	assert.Equal(t, []int64{3, 1, 2}, ids(Derive(list, FilterAll, "", SortDueAsc)))
	// due-desc: 2026-02-01, 2026-01-15, nil
	assert.Equal(t, []int64{1, 3, 2}, ids(Derive(list, FilterAll, "", SortDueDesc)))
}

func TestDeriveStableOnTies(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	list := []models.Todo{
		{ID: 10, Title: "first", DueAt: strPtr("2026-03-05"), CreatedAt: created},
		{ID: 11, Title: "second", DueAt: strPtr("2026-03-05"), CreatedAt: created},
		{ID: 12, Title: "third", DueAt: strPtr("2026-03-05"), CreatedAt: created},
	}

	for _, s := range []Sort{SortCreatedAsc, SortCreatedDesc, SortDueAsc, SortDueDesc} {
		assert.Equal(t, []int64{10, 11, 12}, ids(Derive(list, FilterAll, "", s)),
			"sort %s should keep original order on ties", s)
	}
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	list := makeList()
	before := ids(list)

	Derive(list, FilterActive, "launch", SortDueDesc)

	assert.Equal(t, before, ids(list))
}

func TestDeriveDeterministic(t *testing.T) {
	list := makeList()

	first := ids(Derive(list, FilterAll, "e", SortDueAsc))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ids(Derive(list, FilterAll, "e", SortDueAsc)))
	}
}
