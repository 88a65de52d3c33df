package handlers

import (
	"net/http"

	"github.com/eventdesk/server/internal/models"
	"github.com/eventdesk/server/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateAttendee(s *services.AttendeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var attendee models.Attendee
		if err := c.ShouldBindJSON(&attendee); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: err.Error()})
			return
		}

		id, err := s.CreateAttendee(c.Request.Context(), &attendee)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.MessageResponse{Message: "Attendee created", ID: id.Hex()})
	}
}

func ListAttendees(s *services.AttendeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		attendees, err := s.ListAttendees(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, attendees)
	}
}

func GetAttendee(s *services.AttendeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		attendee, err := s.GetAttendee(c.Request.Context(), trimID(c.Param("id")))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, attendee)
	}
}

func UpdateAttendee(s *services.AttendeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var attendee models.Attendee
		if err := c.ShouldBindJSON(&attendee); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: err.Error()})
			return
		}

		if err := s.UpdateAttendee(c.Request.Context(), trimID(c.Param("id")), &attendee); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse{Message: "Attendee updated"})
	}
}

func DeleteAttendee(s *services.AttendeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteAttendee(c.Request.Context(), trimID(c.Param("id"))); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse{Message: "Attendee deleted"})
	}
}
