package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bangshop/admin/internal/ports"
	"github.com/bangshop/admin/pkg/metrics"
)

// uploadImage — POST /api/upload. Принимает multipart-поле "image" и
// возвращает публичный URL сохранённого файла. Это первый шаг добавления
// товара: без успешной загрузки карточка не создаётся.
func (h *Handler) uploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxUploadBytes)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("image exceeds the upload limit of %d bytes", maxErr.Limit),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		metrics.ImageUploads.WithLabelValues("failed").Inc()
		h.log.Errorf(c.Request.Context(), "open uploaded image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer f.Close()

	url, err := h.images.Save(c.Request.Context(), fileHeader.Header.Get("Content-Type"), f)
	if err != nil {
		if errors.Is(err, ports.ErrUnsupportedImage) {
			metrics.ImageUploads.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
			return
		}
		metrics.ImageUploads.WithLabelValues("failed").Inc()
		h.log.Errorf(c.Request.Context(), "save uploaded image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	metrics.ImageUploads.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
