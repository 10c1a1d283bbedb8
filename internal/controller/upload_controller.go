package controller

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/GinYoshida/kanji-quize/internal/service"
	"github.com/GinYoshida/kanji-quize/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5 MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadController struct {
	storage *service.StorageService
}

func NewUploadController(s *service.StorageService) *UploadController {
	return &UploadController{storage: s}
}

// UploadImage godoc
// @Summary Upload a quiz image
// @Description Accepts jpeg/png/gif/webp up to 5 MB and returns the imagePath for the question form
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param image formData file true "image file"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/upload [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "No file uploaded")
		return
	}

	if file.Size > maxImageSize {
		util.BadRequest(ctx, "File exceeds the 5MB limit")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		util.BadRequest(ctx, "Only image files are allowed")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := fmt.Sprintf("kanji-%d-%s%s", time.Now().UnixMilli(), uuid.New().String()[:8], ext)

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	imagePath, err := c.storage.Upload(ctx.Request.Context(), filename, src, file.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"imagePath": imagePath})
}
