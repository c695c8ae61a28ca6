package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogcms/api/internal/service"
)

func (h HandlerSet) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	defer file.Close()

	result, err := h.uploadService.Upload(c.Request.Context(), service.UploadInput{
		File:   file,
		Header: header,
		Folder: c.PostForm("folder"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fileUrl": result.FileURL,
		"key":     result.Key,
	})
}
