package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := NewHandler(db)
	router := gin.New()
	router.GET("/health", h.Health)
	router.POST("/api/teams", h.CreateTeam)
	router.GET("/api/teams/by-code/:code", h.GetTeamByCode)
	router.GET("/api/todos", h.ListTodos)
	router.POST("/api/todos", h.CreateTodo)
	router.PATCH("/api/todos/:id", h.UpdateTodo)
	router.DELETE("/api/todos/:id", h.DeleteTodo)
	return router, mock
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["ok"])
}

func TestCreateTeam(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO teams (name, join_code) VALUES (?, ?)")).
		WillReturnResult(sqlmock.NewResult(7, 1))

	w := doJSON(router, http.MethodPost, "/api/teams", gin.H{"name": "  Design Team  "})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, "Design Team", body["name"])

	code, ok := body["join_code"].(string)
	require.True(t, ok)
	assert.Len(t, code, 8)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTeamEmptyName(t *testing.T) {
	router, mock := newTestRouter(t)

	for _, body := range []gin.H{{"name": ""}, {"name": "   "}, {}} {
		w := doJSON(router, http.MethodPost, "/api/teams", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "name is required", decodeBody(t, w)["error"])
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTeamRetriesOnDuplicateCode(t *testing.T) {
	router, mock := newTestRouter(t)

	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	mock.ExpectExec("INSERT INTO teams").WillReturnError(dup)
	mock.ExpectExec("INSERT INTO teams").WillReturnResult(sqlmock.NewResult(3, 1))

	w := doJSON(router, http.MethodPost, "/api/teams", gin.H{"name": "Marketing"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(3), decodeBody(t, w)["id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTeamAllocationExhausted(t *testing.T) {
	router, mock := newTestRouter(t)

	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	for i := 0; i < maxJoinCodeAttempts; i++ {
		mock.ExpectExec("INSERT INTO teams").WillReturnError(dup)
	}

	w := doJSON(router, http.MethodPost, "/api/teams", gin.H{"name": "Unlucky"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "failed to generate join code", decodeBody(t, w)["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTeamStorageError(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectExec("INSERT INTO teams").WillReturnError(sql.ErrConnDone)

	w := doJSON(router, http.MethodPost, "/api/teams", gin.H{"name": "Broken"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "server error", decodeBody(t, w)["error"])
}

func TestGetTeamByCodeNormalizesInput(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	// All three spellings resolve to the same stored code.
	for _, raw := range []string{"ab12cd34", "%20AB12CD34%20", "Ab12Cd34"} {
		router, mock := newTestRouter(t)
		mock.ExpectQuery("SELECT id, name, join_code, created_at").
			WithArgs("AB12CD34").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "join_code", "created_at"}).
				AddRow(1, "Design", "AB12CD34", created))

		w := doJSON(router, http.MethodGet, "/api/teams/by-code/"+raw, nil)
		require.Equal(t, http.StatusOK, w.Code, "code %q", raw)

		body := decodeBody(t, w)
		assert.Equal(t, "AB12CD34", body["join_code"])
		assert.Equal(t, "Design", body["name"])
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestGetTeamByCodeNotFound(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT id, name, join_code, created_at").
		WithArgs("MISSING2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "join_code", "created_at"}))

	w := doJSON(router, http.MethodGet, "/api/teams/by-code/missing2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "team not found", decodeBody(t, w)["error"])
}

func TestGetTeamByCodeBlank(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/teams/by-code/%20%20", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
