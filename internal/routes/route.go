package routes

import (
	"github.com/eventdesk/server/internal/container"
	"github.com/eventdesk/server/internal/handlers"
	"github.com/eventdesk/server/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "eventdesk-api",
			})
		})
	}

	eventRoutes := v1.Group("/events")
	{
		eventRoutes.POST("", handlers.CreateEvent(container.EventService))
		eventRoutes.GET("", handlers.ListEvents(container.EventService))
		eventRoutes.GET("/:id", handlers.GetEvent(container.EventService))
		eventRoutes.PUT("/:id", handlers.UpdateEvent(container.EventService))
		eventRoutes.DELETE("/:id", handlers.DeleteEvent(container.EventService))
	}

	venueRoutes := v1.Group("/venues")
	{
		venueRoutes.POST("", handlers.CreateVenue(container.VenueService))
		venueRoutes.GET("", handlers.ListVenues(container.VenueService))
		venueRoutes.GET("/:id", handlers.GetVenue(container.VenueService))
		venueRoutes.PUT("/:id", handlers.UpdateVenue(container.VenueService))
		venueRoutes.DELETE("/:id", handlers.DeleteVenue(container.VenueService))
	}

	attendeeRoutes := v1.Group("/attendees")
	{
		attendeeRoutes.POST("", handlers.CreateAttendee(container.AttendeeService))
		attendeeRoutes.GET("", handlers.ListAttendees(container.AttendeeService))
		attendeeRoutes.GET("/:id", handlers.GetAttendee(container.AttendeeService))
		attendeeRoutes.PUT("/:id", handlers.UpdateAttendee(container.AttendeeService))
		attendeeRoutes.DELETE("/:id", handlers.DeleteAttendee(container.AttendeeService))
	}

	bookingRoutes := v1.Group("/bookings")
	{
		bookingRoutes.POST("", handlers.CreateBooking(container.BookingService))
		bookingRoutes.GET("", handlers.ListBookings(container.BookingService))
		bookingRoutes.GET("/:id", handlers.GetBooking(container.BookingService))
		bookingRoutes.PUT("/:id", handlers.UpdateBooking(container.BookingService))
		bookingRoutes.DELETE("/:id", handlers.DeleteBooking(container.BookingService))
	}

	// Media uploads keep the original flat paths
	v1.POST("/upload_event_poster/:event_id", handlers.UploadEventPoster(container.MediaService))
	v1.POST("/upload_promo_video/:event_id", handlers.UploadPromoVideo(container.MediaService))
	v1.POST("/upload_venue_photo/:venue_id", handlers.UploadVenuePhoto(container.MediaService))

	return r
}
