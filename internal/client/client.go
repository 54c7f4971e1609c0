// Package client is the REST client the terminal UI talks to the API with.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/choimj77/team-todo-api/internal/models"
)

// APIError carries the server's {error} body alongside the HTTP status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) TeamByCode(ctx context.Context, code string) (models.Team, error) {
	var team models.Team
	err := c.do(ctx, http.MethodGet, "/api/teams/by-code/"+url.PathEscape(code), nil, &team)
	return team, err
}

func (c *Client) Todos(ctx context.Context, teamID int64) ([]models.Todo, error) {
	var todos []models.Todo
	path := "/api/todos?teamId=" + strconv.FormatInt(teamID, 10)
	err := c.do(ctx, http.MethodGet, path, nil, &todos)
	return todos, err
}

func (c *Client) CreateTodo(ctx context.Context, req models.CreateTodoRequest) (models.Todo, error) {
	var todo models.Todo
	err := c.do(ctx, http.MethodPost, "/api/todos", req, &todo)
	return todo, err
}

// UpdateTodo sends a partial update; only keys present in fields are touched
// server-side, so callers build the map from what actually changed.
func (c *Client) UpdateTodo(ctx context.Context, id int64, fields map[string]interface{}) (models.Todo, error) {
	var todo models.Todo
	path := "/api/todos/" + strconv.FormatInt(id, 10)
	err := c.do(ctx, http.MethodPatch, path, fields, &todo)
	return todo, err
}

func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	path := "/api/todos/" + strconv.FormatInt(id, 10)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
