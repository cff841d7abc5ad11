package handlers

import (
	"net/http"

	"infohub/internal/dto"
	"infohub/internal/middleware"
	"infohub/internal/services"
	"infohub/pkg/responses"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	service *services.BookmarkService
}

func NewBookmarkHandler(service *services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

func (h *BookmarkHandler) CreateBookmark(c *gin.Context) {
	var req dto.BookmarkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	bookmark, err := h.service.Create(c.Request.Context(), req.Title, req.Href, req.GroupID, req.Private, req.Details, middleware.Viewer(c))
	if err != nil {
		respondError(c, err, "Failed to create bookmark")
		return
	}

	c.JSON(http.StatusCreated, responses.NewSuccessResponse("Bookmark created", bookmark))
}

func (h *BookmarkHandler) EditBookmark(c *gin.Context) {
	id, ok := parseID(c, "bookmarkId")
	if !ok {
		return
	}

	var req dto.EditBookmarkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	bookmark, err := h.service.Update(c.Request.Context(), id, req.Title, req.Href, req.GroupID, req.Private, req.Details, middleware.Viewer(c))
	if err != nil {
		respondError(c, err, "Failed to update bookmark")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Bookmark updated", bookmark))
}

func (h *BookmarkHandler) DeleteBookmark(c *gin.Context) {
	id, ok := parseID(c, "bookmarkId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, middleware.Viewer(c)); err != nil {
		respondError(c, err, "Failed to delete bookmark")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Bookmark deleted", nil))
}

func (h *BookmarkHandler) ListBookmarks(c *gin.Context) {
	limit, offset := pagination(c)
	bookmarks, err := h.service.List(middleware.Viewer(c), limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list bookmarks")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("", bookmarks))
}

func (h *BookmarkHandler) SearchBookmarks(c *gin.Context) {
	var req dto.SearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	bookmarks, err := h.service.Search(req.SearchTerm, middleware.Viewer(c))
	if err != nil {
		respondError(c, err, "Failed to search bookmarks")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("", bookmarks))
}
