package router

import (
	"net/http"

	"infohub/internal/handlers"
	"infohub/internal/middleware"
	"infohub/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the per-resource handlers the router wires up.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Index    *handlers.IndexHandler
	Note     *handlers.NoteHandler
	File     *handlers.FileHandler
	Bookmark *handlers.BookmarkHandler
	Group    *handlers.GroupHandler
}

// SetupRouter mounts all routes under /api. Public routes resolve the
// viewer from a bearer token when one is present and fall back to
// anonymous; protected routes reject requests without a valid token.
func SetupRouter(router *gin.Engine, users *services.UserService, h Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	api := router.Group("/api")

	public := api.Group("/")
	public.Use(middleware.OptionalAuth(users))

	protected := api.Group("/")
	protected.Use(middleware.RequireAuth(users))

	AuthRoutes(public, h.Auth)
	IndexRoutes(public, h.Index)
	NoteRoutes(public, protected, h.Note)
	FileRoutes(public, protected, h.File)
	BookmarkRoutes(public, protected, h.Bookmark)
	GroupRoutes(public, protected, h.Group)
}
