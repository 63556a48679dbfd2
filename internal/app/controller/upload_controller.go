package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/nafiuibnemazhar/workspot-bd-sub000/internal/errors"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/storage"
)

var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
}

const maxUploadSize = 10 << 20 // 10 MB

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(s3Storage *storage.S3Storage) *UploadController {
	return &UploadController{
		storage: s3Storage,
	}
}

type presignInput struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	FileSize    int64  `json:"file_size" binding:"required"`
	Folder      string `json:"folder"` // avatars, covers, posts
}

// GetPresignedURL issues a presigned PUT URL so the client uploads directly
// to object storage
func (ctrl *UploadController) GetPresignedURL(c *gin.Context) {
	var input presignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid upload request")
		return
	}

	if err := ctrl.storage.ValidateContentType(input.ContentType, allowedImageTypes); err != nil {
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "Only image uploads are allowed")
		return
	}
	if err := ctrl.storage.ValidateFileSize(input.FileSize, maxUploadSize); err != nil {
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "File is too large (max 10MB)")
		return
	}

	folder := input.Folder
	switch folder {
	case "avatars", "covers", "posts":
	default:
		folder = "uploads"
	}

	resp, err := ctrl.storage.GeneratePresignedURL(input.Filename, input.ContentType, folder)
	if err != nil {
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Failed to prepare upload")
		return
	}

	c.JSON(http.StatusOK, resp)
}
