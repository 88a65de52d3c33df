package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EventsColName = "events"

// Event references a Venue through VenueID, stored as the canonical string
// form of the venue's identifier. Date is kept as opaque text, never parsed.
type Event struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Description  string             `bson:"description" json:"description"`
	Date         string             `bson:"date" json:"date" validate:"required"`
	VenueID      string             `bson:"venue_id" json:"venue_id" validate:"required"`
	MaxAttendees int                `bson:"max_attendees" json:"max_attendees"`
}
