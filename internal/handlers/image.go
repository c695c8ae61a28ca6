package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
)

// GetImage streams an object from storage so clients never touch the bucket
// directly. Objects are immutable once uploaded, hence the year-long cache.
func (h HandlerSet) GetImage(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image key provided"})
		return
	}

	ctx := c.Request.Context()
	bucket := h.cfg.Storage.Bucket

	stat, err := h.store.Client().StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		h.respondError(c, err)
		return
	}

	object, err := h.store.Client().GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer object.Close()

	c.Header("Cache-Control", "public, max-age=31536000")
	c.DataFromReader(http.StatusOK, stat.Size, stat.ContentType, object, nil)
}
