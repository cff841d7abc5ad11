package handlers

import (
	"net/http"

	"infohub/internal/dto"
	"infohub/internal/middleware"
	"infohub/internal/services"
	"infohub/pkg/responses"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	service *services.NoteService
}

func NewNoteHandler(service *services.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// CreateNote creates a note. Anonymous authors are allowed; their notes
// are forced public.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.NoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	note, err := h.service.Create(c.Request.Context(), req.Title, req.Content, req.Private, middleware.Viewer(c))
	if err != nil {
		respondError(c, err, "Failed to create note")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Note created", note))
}

func (h *NoteHandler) GetNote(c *gin.Context) {
	id, ok := parseID(c, "noteId")
	if !ok {
		return
	}

	note, err := h.service.Get(c.Request.Context(), id, middleware.Viewer(c))
	if err != nil {
		respondError(c, err, "Failed to fetch note")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("", note))
}

func (h *NoteHandler) EditNote(c *gin.Context) {
	id, ok := parseID(c, "noteId")
	if !ok {
		return
	}

	var req dto.EditNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	note, err := h.service.Update(c.Request.Context(), id, req.Title, req.Content, req.Private, middleware.Viewer(c))
	if err != nil {
		respondError(c, err, "Failed to update note")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Note updated", note))
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, ok := parseID(c, "noteId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, middleware.Viewer(c)); err != nil {
		respondError(c, err, "Failed to delete note")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Note deleted", nil))
}

// SearchNotes returns visible notes matching the search term. An empty
// term matches nothing.
func (h *NoteHandler) SearchNotes(c *gin.Context) {
	var req dto.SearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	notes, err := h.service.Search(req.SearchTerm, middleware.Viewer(c))
	if err != nil {
		respondError(c, err, "Failed to search notes")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("", notes))
}

// UserNotes lists the notes the logged-in user owns.
func (h *NoteHandler) UserNotes(c *gin.Context) {
	limit, offset := pagination(c)
	notes, err := h.service.ListOwn(middleware.Viewer(c), limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list notes")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("", notes))
}
