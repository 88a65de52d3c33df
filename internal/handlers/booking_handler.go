package handlers

import (
	"net/http"

	"github.com/eventdesk/server/internal/models"
	"github.com/eventdesk/server/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateBooking(s *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: err.Error()})
			return
		}

		id, err := s.CreateBooking(c.Request.Context(), &booking)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.MessageResponse{Message: "Booking created", ID: id.Hex()})
	}
}

func ListBookings(s *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := s.ListBookings(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, bookings)
	}
}

func GetBooking(s *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		booking, err := s.GetBooking(c.Request.Context(), trimID(c.Param("id")))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, booking)
	}
}

func UpdateBooking(s *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorDetail{Detail: err.Error()})
			return
		}

		if err := s.UpdateBooking(c.Request.Context(), trimID(c.Param("id")), &booking); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse{Message: "Booking updated"})
	}
}

func DeleteBooking(s *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteBooking(c.Request.Context(), trimID(c.Param("id"))); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse{Message: "Booking deleted"})
	}
}
