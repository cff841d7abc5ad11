package handlers

import (
	"net/http"

	"infohub/internal/dto"
	"infohub/internal/middleware"
	"infohub/internal/services"
	"infohub/pkg/responses"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	service *services.GroupService
}

func NewGroupHandler(service *services.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req dto.GroupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	group, err := h.service.Create(c.Request.Context(), req.Name, req.Private, middleware.Viewer(c))
	if err != nil {
		respondError(c, err, "Failed to create group")
		return
	}

	c.JSON(http.StatusCreated, responses.NewSuccessResponse("Group created", group))
}

func (h *GroupHandler) EditGroup(c *gin.Context) {
	id, ok := parseID(c, "groupId")
	if !ok {
		return
	}

	var req dto.EditGroupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	group, err := h.service.Update(c.Request.Context(), id, req.Name, req.Private, middleware.Viewer(c))
	if err != nil {
		respondError(c, err, "Failed to update group")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Group updated", group))
}

// DeleteGroup removes a group; its bookmarks survive without a group.
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, ok := parseID(c, "groupId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, middleware.Viewer(c)); err != nil {
		respondError(c, err, "Failed to delete group")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Group deleted", nil))
}

// ListGroups returns visible groups with their bookmarks preloaded.
func (h *GroupHandler) ListGroups(c *gin.Context) {
	limit, offset := pagination(c)
	groups, err := h.service.List(middleware.Viewer(c), limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list groups")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("", groups))
}
