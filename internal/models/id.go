package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrMalformedEntityID is returned by ParseEntityID for any string that is
// not a valid 24-character hex ObjectID.
var ErrMalformedEntityID = errors.New("malformed entity ID")

// EntityID is the internal identifier for every stored document. It wraps
// the store's native ObjectID so identifiers can't be mixed up with other
// string fields.
type EntityID primitive.ObjectID

func ParseEntityID(raw string) (EntityID, error) {
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return EntityID{}, ErrMalformedEntityID
	}
	return EntityID(oid), nil
}

// Hex renders the canonical string form used when echoing identifiers to
// callers and when storing reference fields.
func (id EntityID) Hex() string {
	return primitive.ObjectID(id).Hex()
}

func (id EntityID) ObjectID() primitive.ObjectID {
	return primitive.ObjectID(id)
}
