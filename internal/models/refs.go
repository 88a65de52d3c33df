package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ResolveReference checks that raw identifies an existing document in col.
// It is the only cross-collection integrity gate in the system. The store
// itself enforces no foreign-key constraints, and the check is advisory:
// nothing stops the referenced document from being deleted after it passes.
// Exactly one read per call.
func (mdb *MongodbRepo) ResolveReference(ctx context.Context, col *mongo.Collection, raw string, name string) (EntityID, error) {
	id, err := ParseEntityID(raw)
	if err != nil {
		return EntityID{}, MalformedReference(name)
	}

	err = col.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return EntityID{}, ReferenceNotFound(name)
	}
	if err != nil {
		return EntityID{}, fmt.Errorf("failed to check %s reference: %w", name, err)
	}

	return id, nil
}
