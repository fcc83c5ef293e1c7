package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"
)

// UploadHandler relays multipart document uploads to the blob store.
type UploadHandler struct {
	service services.UploadService
	maxSize int64
}

// NewUploadHandler creates a new UploadHandler. maxSize caps the accepted
// file size in bytes.
func NewUploadHandler(service services.UploadService, maxSize int64) *UploadHandler {
	return &UploadHandler{service: service, maxSize: maxSize}
}

// UploadCV godoc
// @Summary      Upload a CV
// @Description  Accepts a single multipart file under the "file" field and
// @Description  stores its public URL on the logged-in user's record.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Document"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /uploads/upload-cv [post]
func (h *UploadHandler) UploadCV(c *gin.Context) {
	h.upload(c, dto.DocumentCV)
}

// UploadCoverLetter godoc
// @Summary      Upload a cover letter
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Document"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /uploads/upload-cover-letter [post]
func (h *UploadHandler) UploadCoverLetter(c *gin.Context) {
	h.upload(c, dto.DocumentCoverLetter)
}

// UploadProfileImage godoc
// @Summary      Upload a profile image
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Image"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /uploads/upload-profile-image [post]
func (h *UploadHandler) UploadProfileImage(c *gin.Context) {
	h.upload(c, dto.DocumentImage)
}

func (h *UploadHandler) upload(c *gin.Context, field dto.DocumentField) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}
	if fileHeader.Size > h.maxSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("File exceeds the %d byte limit", h.maxSize)})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not read uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadDocument(
		c.Request.Context(),
		actor,
		field,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File uploaded successfully", "url": url})
}
