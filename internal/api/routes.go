// internal/api/routes.go
package api

import (
	"database/sql"

	"github.com/choimj77/team-todo-api/internal/api/handlers"
	"github.com/choimj77/team-todo-api/internal/api/middleware"
	"github.com/choimj77/team-todo-api/internal/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(db *sql.DB, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	router := gin.Default()
	h := handlers.NewHandler(db)

	// The UI is served from arbitrary origins; the API is join-code scoped,
	// so CORS stays open like the original deployment.
	router.Use(cors.Default())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLogMiddleware())

	//Swagger Route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", h.Home)
	router.GET("/health", h.Health)
	router.GET("/db-test", h.DBTest)

	api := router.Group("/api")
	if rateLimiter != nil {
		api.Use(middleware.APIRateLimit(rateLimiter))
	}
	{
		api.POST("/teams", h.CreateTeam)                 // Create a team with a fresh join code
		api.GET("/teams/by-code/:code", h.GetTeamByCode) // Look up a team for joining
		api.GET("/todos", h.ListTodos)                   // List todos for a team
		api.POST("/todos", h.CreateTodo)                 // Create a todo
		api.PATCH("/todos/:id", h.UpdateTodo)            // Partial update
		api.DELETE("/todos/:id", h.DeleteTodo)           // Delete a todo
	}

	return router
}
