package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harshitgawli/Turf-Booking/internal/httperr"
	"github.com/harshitgawli/Turf-Booking/internal/httpresp"
	"github.com/harshitgawli/Turf-Booking/internal/media"
	"github.com/harshitgawli/Turf-Booking/internal/models"
)

type MediaHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewMediaHandler(db *gorm.DB, uploader *media.Uploader) *MediaHandler {
	return &MediaHandler{db: db, uploader: uploader}
}

func (h *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo file is required.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not read the upload.")
		return
	}
	defer src.Close()

	key, url, err := h.uploader.UploadImage(c.Request.Context(), src)
	if err != nil {
		if httperr.BusinessCode(err) != "" {
			writeBookingError(c, err)
			return
		}
		httperr.Internal(c, "upload_failed", "Could not store the photo.")
		return
	}

	photo := models.VenuePhoto{Key: key, URL: url}
	if err := h.db.Create(&photo).Error; err != nil {
		httperr.Internal(c, "upload_failed", "Could not save the photo.")
		return
	}

	httpresp.Created(c, photo)
}

func (h *MediaHandler) List(c *gin.Context) {
	var photos []models.VenuePhoto
	if err := h.db.Order("created_at DESC").Find(&photos).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not list photos.")
		return
	}

	httpresp.List(c, photos)
}
