package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const BookingsColName = "bookings"

// Booking references an Event and an Attendee; both identifiers are stored
// as canonical strings and re-validated on every create and update.
type Booking struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventID    string             `bson:"event_id" json:"event_id" validate:"required"`
	AttendeeID string             `bson:"attendee_id" json:"attendee_id" validate:"required"`
	TicketType string             `bson:"ticket_type" json:"ticket_type" validate:"required"`
	Quantity   int                `bson:"quantity" json:"quantity"`
}
