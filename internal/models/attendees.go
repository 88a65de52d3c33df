package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AttendeesColName = "attendees"

type Attendee struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name" validate:"required"`
	Email string             `bson:"email" json:"email" validate:"required"`
	Phone string             `bson:"phone,omitempty" json:"phone,omitempty"`
}
