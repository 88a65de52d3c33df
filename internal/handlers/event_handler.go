package handlers

import (
	"net/http"

	"github.com/eventdesk/server/internal/models"
	"github.com/eventdesk/server/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateEvent(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: err.Error()})
			return
		}

		id, err := s.CreateEvent(c.Request.Context(), &event)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.MessageResponse{Message: "Event created", ID: id.Hex()})
	}
}

func ListEvents(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := s.ListEvents(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, events)
	}
}

func GetEvent(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := s.GetEvent(c.Request.Context(), trimID(c.Param("id")))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, event)
	}
}

func UpdateEvent(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: err.Error()})
			return
		}

		if err := s.UpdateEvent(c.Request.Context(), trimID(c.Param("id")), &event); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse{Message: "Event updated"})
	}
}

func DeleteEvent(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteEvent(c.Request.Context(), trimID(c.Param("id"))); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse{Message: "Event deleted"})
	}
}
