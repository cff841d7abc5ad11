package router

import (
	"infohub/internal/handlers"

	"github.com/gin-gonic/gin"
)

// AuthRoutes defines registration and session routes.
func AuthRoutes(public *gin.RouterGroup, h *handlers.AuthHandler) {
	public.POST("/register", h.Register)
	public.POST("/login", h.Login)
	public.GET("/logout", h.Logout)
}

// IndexRoutes defines the mixed note/file index listing.
func IndexRoutes(public *gin.RouterGroup, h *handlers.IndexHandler) {
	public.GET("/index", h.Index)
	public.GET("/notes", h.Index)
	public.GET("/files", h.Index)
}

// NoteRoutes defines routes for note management.
func NoteRoutes(public, protected *gin.RouterGroup, h *handlers.NoteHandler) {
	note := public.Group("/note")
	{
		note.POST("/add", h.CreateNote)
		note.POST("/search", h.SearchNotes)
		note.GET("/:noteId", h.GetNote)
	}

	owned := protected.Group("/note")
	{
		owned.PUT("/:noteId/edit", h.EditNote)
		owned.DELETE("/:noteId/delete", h.DeleteNote)
	}

	protected.GET("/user/notes", h.UserNotes)
}

// FileRoutes defines routes for file management.
func FileRoutes(public, protected *gin.RouterGroup, h *handlers.FileHandler) {
	file := public.Group("/file")
	{
		file.POST("/upload", h.UploadFile)
		file.POST("/search", h.SearchFiles)
		file.GET("/:fileId", h.GetFile)
		file.GET("/:fileId/download", h.DownloadFile)
	}

	owned := protected.Group("/file")
	{
		owned.POST("/:fileId/edit", h.EditFile)
		owned.POST("/:fileId/delete", h.DeleteFile)
		owned.DELETE("/:fileId/delete", h.DeleteFile)
	}

	protected.GET("/user/files", h.UserFiles)
}

// BookmarkRoutes defines routes for bookmark management.
func BookmarkRoutes(public, protected *gin.RouterGroup, h *handlers.BookmarkHandler) {
	public.GET("/bookmarks", h.ListBookmarks)
	public.POST("/bookmark/search", h.SearchBookmarks)

	bookmark := protected.Group("/bookmark")
	{
		bookmark.POST("/add", h.CreateBookmark)
		bookmark.PUT("/:bookmarkId/edit", h.EditBookmark)
		bookmark.DELETE("/:bookmarkId/delete", h.DeleteBookmark)
	}
}

// GroupRoutes defines routes for bookmark-group management.
func GroupRoutes(public, protected *gin.RouterGroup, h *handlers.GroupHandler) {
	public.GET("/groups", h.ListGroups)

	group := protected.Group("/group")
	{
		group.POST("/add", h.CreateGroup)
		group.PUT("/:groupId/edit", h.EditGroup)
		group.DELETE("/:groupId/delete", h.DeleteGroup)
	}
}
