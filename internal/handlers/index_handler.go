package handlers

import (
	"net/http"

	"infohub/internal/middleware"
	"infohub/internal/services"
	"infohub/pkg/responses"

	"github.com/gin-gonic/gin"
)

type IndexHandler struct {
	service *services.IndexService
}

func NewIndexHandler(service *services.IndexService) *IndexHandler {
	return &IndexHandler{service: service}
}

// Index returns the mixed note/file listing visible to the caller.
func (h *IndexHandler) Index(c *gin.Context) {
	limit, offset := pagination(c)
	listing, err := h.service.Listing(middleware.Viewer(c), limit, offset)
	if err != nil {
		respondError(c, err, "Failed to build index")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("", listing))
}
