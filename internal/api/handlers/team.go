package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/choimj77/team-todo-api/internal/joincode"
	"github.com/choimj77/team-todo-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	log "github.com/sirupsen/logrus"
)

// maxJoinCodeAttempts bounds join-code allocation. Collisions are close to
// impossible at 8 chars over a 32-char alphabet, so a handful of retries is
// plenty.
const maxJoinCodeAttempts = 5

// CreateTeam godoc
// @Summary Create a team
// @Description Create a team with a freshly allocated join code
// @Tags teams
// @Accept json
// @Produce json
// @Param request body models.CreateTeamRequest true "Team name"
// @Success 201 {object} models.Team
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/teams [post]
func (h *Handler) CreateTeam(c *gin.Context) {
	var request models.CreateTeamRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	for attempt := 0; attempt < maxJoinCodeAttempts; attempt++ {
		code, err := joincode.Generate(joincode.DefaultLength)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
			return
		}

		result, err := h.db.Exec(
			"INSERT INTO teams (name, join_code) VALUES (?, ?)",
			name, code)
		if err != nil {
			if isDuplicateKey(err) {
				continue
			}
			log.WithError(err).Error("Failed to insert team")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
			return
		}

		id, err := result.LastInsertId()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":        id,
			"name":      name,
			"join_code": code,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate join code"})
}

// GetTeamByCode godoc
// @Summary Look up a team by join code
// @Description Join-code lookup is case- and whitespace-insensitive
// @Tags teams
// @Produce json
// @Param code path string true "Join code"
// @Success 200 {object} models.Team
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/teams/by-code/{code} [get]
func (h *Handler) GetTeamByCode(c *gin.Context) {
	code := joincode.Normalize(c.Param("code"))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	var team models.Team
	err := h.db.QueryRow(`
        SELECT id, name, join_code, created_at
        FROM teams
        WHERE join_code = ?`, code).Scan(
		&team.ID,
		&team.Name,
		&team.JoinCode,
		&team.CreatedAt,
	)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, team)
}

// isDuplicateKey reports whether err is a MySQL duplicate-entry error (1062).
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
