package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/reservafacil/reserva-api/internal/application/service"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

const uploadFolder = "reservafacil"

type MediaHandler struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewMediaHandler(uploader service.Uploader, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploader: uploader, logger: log}
}

// Upload pushes a multipart image to the media store and returns its URL.
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Error subiendo la imagen", "error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Error subiendo la imagen", "error": err.Error()})
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), file, uploadFolder, uuid.New().String())
	if err != nil {
		h.logger.Error("Failed to upload image", err)
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Error subiendo la imagen", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Imagen subida con éxito", "url": url})
}
