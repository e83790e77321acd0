package controllers

import (
	"errors"
	"net/http"

	"trimspire/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UploadImageInput struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
	Name        string `json:"name"`
}

// ImageUploadController stores standalone recipe images for the admin editor.
type ImageUploadController struct {
	uploader utils.ImageUploader
	log      *zap.Logger
}

func NewImageUploadController(uploader utils.ImageUploader, log *zap.Logger) *ImageUploadController {
	return &ImageUploadController{uploader: uploader, log: log}
}

// POST /api/recipes/images
func (ic *ImageUploadController) Upload(c *gin.Context) {
	var input UploadImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	if ic.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image uploads are not configured"})
		return
	}

	name := input.Name
	if name == "" {
		name = "upload"
	}
	url, err := ic.uploader.UploadBase64Image(c.Request.Context(), input.ImageBase64, name)
	if errors.Is(err, utils.ErrInvalidImage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		ic.log.Error("image upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
