package container

import (
	"log/slog"

	"github.com/eventdesk/server/internal/models"
	"github.com/eventdesk/server/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger          *slog.Logger
	MongoDBClient   *mongo.Client
	EventService    *services.EventService
	VenueService    *services.VenueService
	AttendeeService *services.AttendeeService
	BookingService  *services.BookingService
	MediaService    *services.MediaService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)

	return &Container{
		Logger:          logger,
		MongoDBClient:   mongoDBClient,
		EventService:    services.NewEventService(repo),
		VenueService:    services.NewVenueService(repo),
		AttendeeService: services.NewAttendeeService(repo),
		BookingService:  services.NewBookingService(repo),
		MediaService:    services.NewMediaService(repo),
	}
}
