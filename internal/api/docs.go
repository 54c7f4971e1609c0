// internal/api/docs.go
package api

import "time"

// These types are for Swagger documentation
type TeamResponse struct {
    ID        int64     `json:"id" example:"1"`
    Name      string    `json:"name" example:"Design Team"`
    JoinCode  string    `json:"join_code" example:"AB12CD34"`
    CreatedAt time.Time `json:"created_at"`
}

type CreateTeamRequest struct {
    Name string `json:"name" example:"Design Team"`
}

type CreateTodoRequest struct {
    TeamID   int64  `json:"team_id" example:"1"`
    Title    string `json:"title" example:"Ship the launch page"`
    Priority string `json:"priority" example:"high"`
    DueAt    string `json:"due_at" example:"2026-03-01"`
}

type UpdateTodoRequest struct {
    Title    string `json:"title" example:"Ship the launch page"`
    Done     bool   `json:"done" example:"true"`
    Priority string `json:"priority" example:"mid"`
    DueAt    string `json:"due_at" example:"2026-03-01"`
}

type ErrorResponse struct {
    Error string `json:"error" example:"Error message"`
}
