package handlers

import (
	"io"
	"net/http"

	"github.com/eventdesk/server/internal/models"
	"github.com/eventdesk/server/internal/services"
	"github.com/gin-gonic/gin"
)

// uploadMedia is shared by the three upload endpoints; only the kind, the
// path parameter and the success message differ.
func uploadMedia(s *services.MediaService, kind models.MediaKind, paramName, successMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		parentID := trimID(c.Param(paramName))

		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: "file is required"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorDetail{Detail: "failed to read upload"})
			return
		}
		defer src.Close()

		content, err := io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorDetail{Detail: "failed to read upload"})
			return
		}

		contentType := file.Header.Get("Content-Type")

		id, err := s.StoreMedia(c.Request.Context(), kind, parentID, file.Filename, contentType, content)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.MessageResponse{Message: successMsg, ID: id.Hex()})
	}
}

func UploadEventPoster(s *services.MediaService) gin.HandlerFunc {
	return uploadMedia(s, models.EventPoster, "event_id", "Event poster uploaded")
}

func UploadPromoVideo(s *services.MediaService) gin.HandlerFunc {
	return uploadMedia(s, models.PromoVideo, "event_id", "Promotional video uploaded")
}

func UploadVenuePhoto(s *services.MediaService) gin.HandlerFunc {
	return uploadMedia(s, models.VenuePhoto, "venue_id", "Venue photo uploaded")
}
