package handlers

import (
	"net/http"

	"serviciohogar/services/storage"
	"serviciohogar/utils"

	"github.com/gin-gonic/gin"
)

const uploadFolder = "serviciohogar/blog"

// StorageHandler accepts image uploads from the admin editor.
type StorageHandler struct {
	Media storage.MediaService
}

func NewStorageHandler(media storage.MediaService) *StorageHandler {
	return &StorageHandler{Media: media}
}

// UploadImage stores a multipart image and returns its public URL.
func (h *StorageHandler) UploadImage(c *gin.Context) {
	if h.Media == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Media uploads are not configured", "Set CLOUDINARY_URL to enable them.")
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing file field", err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unreadable file", err.Error())
		return
	}
	defer file.Close()

	result, err := h.Media.Upload(c.Request.Context(), file, uploadFolder)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
