package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const VenuesColName = "venues"

type Venue struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Address  string             `bson:"address" json:"address" validate:"required"`
	Capacity int                `bson:"capacity" json:"capacity"`
}
