package handlers

import (
	"net/http"

	"github.com/eventdesk/server/internal/models"
	"github.com/eventdesk/server/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateVenue(s *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var venue models.Venue
		if err := c.ShouldBindJSON(&venue); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: err.Error()})
			return
		}

		id, err := s.CreateVenue(c.Request.Context(), &venue)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.MessageResponse{Message: "Venue created", ID: id.Hex()})
	}
}

func ListVenues(s *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venues, err := s.ListVenues(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, venues)
	}
}

func GetVenue(s *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venue, err := s.GetVenue(c.Request.Context(), trimID(c.Param("id")))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, venue)
	}
}

func UpdateVenue(s *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var venue models.Venue
		if err := c.ShouldBindJSON(&venue); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: err.Error()})
			return
		}

		if err := s.UpdateVenue(c.Request.Context(), trimID(c.Param("id")), &venue); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse{Message: "Venue updated"})
	}
}

func DeleteVenue(s *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteVenue(c.Request.Context(), trimID(c.Param("id"))); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse{Message: "Venue deleted"})
	}
}
