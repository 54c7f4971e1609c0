package models

import "time"

type Team struct {
    ID        int64     `json:"id"`
    Name      string    `json:"name"`
    JoinCode  string    `json:"join_code"`
    CreatedAt time.Time `json:"created_at"`
}

type CreateTeamRequest struct {
    Name string `json:"name"`
}
