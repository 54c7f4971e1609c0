package models

import "time"

// Priority values accepted for a todo. The todos table mirrors these as an
// ENUM column.
const (
    PriorityLow  = "low"
    PriorityMid  = "mid"
    PriorityHigh = "high"
)

type Todo struct {
    ID        int64     `json:"id"`
    TeamID    int64     `json:"team_id"`
    Title     string    `json:"title"`
    Done      bool      `json:"done"`
    Priority  string    `json:"priority"`
    DueAt     *string   `json:"due_at"` // YYYY-MM-DD, nil when no due date
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}

type CreateTodoRequest struct {
    TeamID   int64   `json:"team_id"`
    Title    string  `json:"title"`
    Priority *string `json:"priority"`
    DueAt    *string `json:"due_at"`
}
