package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/choimj77/team-todo-api/internal/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const dueDateLayout = "2006-01-02"

// ListTodos godoc
// @Summary List todos for a team
// @Description Ordered by due date presence, then due date ascending, then newest first
// @Tags todos
// @Produce json
// @Param teamId query int true "Team ID"
// @Success 200 {array} models.Todo
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/todos [get]
func (h *Handler) ListTodos(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Query("teamId"), 10, 64)
	if err != nil || teamID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "teamId is required (number)"})
		return
	}

	rows, err := h.db.Query(`
        SELECT id, team_id, title, done, priority, due_at, created_at, updated_at
        FROM todos
        WHERE team_id = ?
        ORDER BY
          (due_at IS NULL) ASC,
          due_at ASC,
          created_at DESC`, teamID)
	if err != nil {
		log.WithError(err).Error("Failed to query todos")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	defer rows.Close()

	// Empty team yields [], not null
	todos := []models.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
			return
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// CreateTodo godoc
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param request body models.CreateTodoRequest true "Todo fields"
// @Success 201 {object} models.Todo
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/todos [post]
func (h *Handler) CreateTodo(c *gin.Context) {
	var request models.CreateTodoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if request.TeamID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team_id is required (number)"})
		return
	}

	title := strings.TrimSpace(request.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	priority := models.PriorityMid
	if request.Priority != nil && strings.TrimSpace(*request.Priority) != "" {
		p, ok := normalizePriority(*request.Priority)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "priority must be one of: low, mid, high"})
			return
		}
		priority = p
	}

	var dueAt sql.NullString
	if request.DueAt != nil && strings.TrimSpace(*request.DueAt) != "" {
		d := strings.TrimSpace(*request.DueAt)
		if _, err := time.Parse(dueDateLayout, d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "due_at must be YYYY-MM-DD"})
			return
		}
		dueAt = sql.NullString{String: d, Valid: true}
	}

	// Team existence check keeps the 404 meaningful even without a strict
	// foreign key.
	var teamID int64
	err := h.db.QueryRow("SELECT id FROM teams WHERE id = ?", request.TeamID).Scan(&teamID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	result, err := h.db.Exec(
		"INSERT INTO todos (team_id, title, done, priority, due_at) VALUES (?, ?, 0, ?, ?)",
		teamID, title, priority, dueAt)
	if err != nil {
		log.WithError(err).Error("Failed to insert todo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	todo, err := h.fetchTodo(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// UpdateTodo godoc
// @Summary Partially update a todo
// @Description Only fields present in the body are modified
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param request body object{title=string,done=boolean,priority=string,due_at=string} false "Fields to update"
// @Success 200 {object} models.Todo
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/todos/{id} [patch]
func (h *Handler) UpdateTodo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	// Raw messages keep absent and null fields distinguishable, which the
	// PATCH contract depends on.
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var updates []string
	var values []interface{}

	if raw, ok := body["title"]; ok {
		var title string
		if err := json.Unmarshal(raw, &title); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title cannot be empty"})
			return
		}
		title = strings.TrimSpace(title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title cannot be empty"})
			return
		}
		updates = append(updates, "title = ?")
		values = append(values, title)
	}

	if raw, ok := body["done"]; ok {
		done, ok := normalizeDone(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "done must be boolean or 0/1"})
			return
		}
		updates = append(updates, "done = ?")
		values = append(values, done)
	}

	if raw, ok := body["priority"]; ok {
		var priority string
		if err := json.Unmarshal(raw, &priority); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "priority must be one of: low, mid, high"})
			return
		}
		p, ok := normalizePriority(priority)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "priority must be one of: low, mid, high"})
			return
		}
		updates = append(updates, "priority = ?")
		values = append(values, p)
	}

	if raw, ok := body["due_at"]; ok {
		var dueAt sql.NullString
		if string(raw) != "null" {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "due_at must be YYYY-MM-DD"})
				return
			}
			s = strings.TrimSpace(s)
			if s != "" {
				if _, err := time.Parse(dueDateLayout, s); err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "due_at must be YYYY-MM-DD"})
					return
				}
				dueAt = sql.NullString{String: s, Valid: true}
			}
		}
		// null or "" clears the due date
		updates = append(updates, "due_at = ?")
		values = append(values, dueAt)
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	var exists int64
	err = h.db.QueryRow("SELECT id FROM todos WHERE id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	values = append(values, id)
	query := "UPDATE todos SET " + strings.Join(updates, ", ") + " WHERE id = ?"
	if _, err := h.db.Exec(query, values...); err != nil {
		log.WithError(err).Error("Failed to update todo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	todo, err := h.fetchTodo(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// DeleteTodo godoc
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} object{ok=boolean}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/todos/{id} [delete]
func (h *Handler) DeleteTodo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	result, err := h.db.Exec("DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) fetchTodo(id int64) (models.Todo, error) {
	row := h.db.QueryRow(`
        SELECT id, team_id, title, done, priority, due_at, created_at, updated_at
        FROM todos WHERE id = ?`, id)
	return scanTodo(row)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTodo(row rowScanner) (models.Todo, error) {
	var todo models.Todo
	var dueAt sql.NullTime
	err := row.Scan(
		&todo.ID,
		&todo.TeamID,
		&todo.Title,
		&todo.Done,
		&todo.Priority,
		&dueAt,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		return models.Todo{}, err
	}
	if dueAt.Valid {
		d := dueAt.Time.Format(dueDateLayout)
		todo.DueAt = &d
	}
	return todo, nil
}

func normalizePriority(value string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case models.PriorityLow:
		return models.PriorityLow, true
	case models.PriorityMid:
		return models.PriorityMid, true
	case models.PriorityHigh:
		return models.PriorityHigh, true
	}
	return "", false
}

// normalizeDone accepts the boolean-like encodings clients actually send:
// true/false, 1/0 and their string forms.
func normalizeDone(raw json.RawMessage) (int, bool) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		if b {
			return 1, true
		}
		return 0, true
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n == 1 {
			return 1, true
		}
		if n == 0 {
			return 0, true
		}
		return 0, false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch s {
		case "true", "1":
			return 1, true
		case "false", "0":
			return 0, true
		}
	}

	return 0, false
}
