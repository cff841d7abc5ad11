package handlers

import (
	"net/http"

	"infohub/internal/dto"
	"infohub/internal/middleware"
	"infohub/internal/services"
	"infohub/pkg/logger"
	"infohub/pkg/responses"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	service *services.FileService
}

func NewFileHandler(service *services.FileService) *FileHandler {
	return &FileHandler{service: service}
}

// UploadFile stores a multipart upload. The metadata row is committed
// before the bytes land on disk; size and type are filled in by the
// reconciler rather than trusted from the client.
func (h *FileHandler) UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("A file is required", err.Error()))
		return
	}

	src, err := header.Open()
	if err != nil {
		logger.Log.Error().Err(err).Str("file_name", header.Filename).Msg("Failed to open multipart upload")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to read upload", ""))
		return
	}
	defer src.Close()

	private := c.PostForm("private") == "true" || c.PostForm("private") == "on"
	details := c.PostForm("details")

	file, err := h.service.Upload(c.Request.Context(), header.Filename, src, private, details, middleware.Viewer(c))
	if err != nil {
		respondError(c, err, "Failed to upload file")
		return
	}

	c.JSON(http.StatusCreated, responses.NewSuccessResponse("File uploaded", file))
}

func (h *FileHandler) GetFile(c *gin.Context) {
	id, ok := parseID(c, "fileId")
	if !ok {
		return
	}

	file, err := h.service.Get(c.Request.Context(), id, middleware.Viewer(c))
	if err != nil {
		respondError(c, err, "Failed to fetch file")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("", file))
}

func (h *FileHandler) EditFile(c *gin.Context) {
	id, ok := parseID(c, "fileId")
	if !ok {
		return
	}

	var req dto.EditFileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	file, err := h.service.Update(c.Request.Context(), id, req.FileName, req.Private, req.Details, middleware.Viewer(c))
	if err != nil {
		respondError(c, err, "Failed to update file")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("File updated", file))
}

// DeleteFile soft-deletes a file. The confirmation flag is mandatory
// for every caller, admins included.
func (h *FileHandler) DeleteFile(c *gin.Context) {
	id, ok := parseID(c, "fileId")
	if !ok {
		return
	}

	var req dto.DeleteFileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, req.Confirmation, req.Reason, middleware.Viewer(c)); err != nil {
		respondError(c, err, "Failed to delete file")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("File deleted", nil))
}

// DownloadFile streams the stored bytes and records the download.
func (h *FileHandler) DownloadFile(c *gin.Context) {
	id, ok := parseID(c, "fileId")
	if !ok {
		return
	}

	file, path, err := h.service.Download(c.Request.Context(), id, middleware.Viewer(c))
	if err != nil {
		respondError(c, err, "Failed to download file")
		return
	}

	c.FileAttachment(path, file.FileName)
}

func (h *FileHandler) SearchFiles(c *gin.Context) {
	var req dto.SearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	files, err := h.service.Search(req.SearchTerm, middleware.Viewer(c))
	if err != nil {
		respondError(c, err, "Failed to search files")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("", files))
}

// UserFiles lists the files the logged-in user owns.
func (h *FileHandler) UserFiles(c *gin.Context) {
	limit, offset := pagination(c)
	files, err := h.service.ListOwn(middleware.Viewer(c), limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list files")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("", files))
}
