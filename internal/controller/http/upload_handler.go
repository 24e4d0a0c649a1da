package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"blog-backend/pkg/logger"
	"blog-backend/pkg/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadHandler struct {
	s3Client      *s3.Client
	maxUploadSize int64
	logger        *logger.Logger
}

func NewUploadHandler(s3Client *s3.Client, maxUploadSize int64, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{s3Client: s3Client, maxUploadSize: maxUploadSize, logger: logger}
}

// UploadImage godoc
// @Summary      Upload an image
// @Description  Stores the image in object storage and returns its public URL
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Image file (jpg/jpeg/png/gif/webp, up to 10MB)"
// @Success      201  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /upload/image [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Image file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unsupported image type"})
		return
	}

	if fileHeader.Size > h.maxUploadSize {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("File exceeds %d bytes", h.maxUploadSize)})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	key := fmt.Sprintf("blog/images/%s%s", uuid.New().String(), ext)
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.s3Client.UploadFile(key, file, contentType)
	if err != nil {
		h.logger.Error("Failed to upload image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Image uploaded",
		"filename": filepath.Base(key),
		"url":      url,
	})
}
