package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttendeesRepo interface {
	CreateAttendee(ctx context.Context, attendee *Attendee) (EntityID, error)
	ListAttendees(ctx context.Context) ([]*Attendee, error)
	GetAttendee(ctx context.Context, id string) (*Attendee, error)
	UpdateAttendee(ctx context.Context, id string, attendee *Attendee) error
	DeleteAttendee(ctx context.Context, id string) error
}

func (mdb *MongodbRepo) CreateAttendee(ctx context.Context, attendee *Attendee) (EntityID, error) {
	col, err := mdb.GetCollection(ctx, DbName, AttendeesColName)
	if err != nil {
		return EntityID{}, err
	}

	// Identifiers are system-assigned; a client-supplied id is discarded.
	attendee.ID = primitive.ObjectID{}

	res, err := col.InsertOne(ctx, attendee)
	if err != nil {
		return EntityID{}, fmt.Errorf("failed to insert attendee: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return EntityID{}, PersistenceFailure("Failed to create attendee")
	}
	return EntityID(oid), nil
}

func (mdb *MongodbRepo) ListAttendees(ctx context.Context) ([]*Attendee, error) {
	col, err := mdb.GetCollection(ctx, DbName, AttendeesColName)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetLimit(ListCap))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendees: %w", err)
	}
	defer cursor.Close(ctx)

	var attendees []*Attendee
	if err := cursor.All(ctx, &attendees); err != nil {
		return nil, fmt.Errorf("failed to decode attendees: %w", err)
	}
	if attendees == nil {
		attendees = []*Attendee{}
	}
	return attendees, nil
}

func (mdb *MongodbRepo) GetAttendee(ctx context.Context, id string) (*Attendee, error) {
	col, err := mdb.GetCollection(ctx, DbName, AttendeesColName)
	if err != nil {
		return nil, err
	}

	attendeeID, err := ParseEntityID(id)
	if err != nil {
		return nil, MalformedID("attendee")
	}

	var attendee Attendee
	err = col.FindOne(ctx, bson.M{"_id": attendeeID.ObjectID()}).Decode(&attendee)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, NotFound("Attendee")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find attendee: %w", err)
	}
	return &attendee, nil
}

func (mdb *MongodbRepo) UpdateAttendee(ctx context.Context, id string, attendee *Attendee) error {
	col, err := mdb.GetCollection(ctx, DbName, AttendeesColName)
	if err != nil {
		return err
	}

	attendeeID, err := ParseEntityID(id)
	if err != nil {
		return MalformedID("attendee")
	}

	// _id is immutable; zeroing keeps it out of the $set document.
	attendee.ID = primitive.ObjectID{}

	res, err := col.UpdateOne(ctx, bson.M{"_id": attendeeID.ObjectID()}, bson.M{"$set": attendee})
	if err != nil {
		return fmt.Errorf("failed to update attendee: %w", err)
	}
	if res.MatchedCount == 0 {
		return NotFound("Attendee")
	}
	return nil
}

func (mdb *MongodbRepo) DeleteAttendee(ctx context.Context, id string) error {
	col, err := mdb.GetCollection(ctx, DbName, AttendeesColName)
	if err != nil {
		return err
	}

	attendeeID, err := ParseEntityID(id)
	if err != nil {
		return MalformedID("attendee")
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": attendeeID.ObjectID()})
	if err != nil {
		return fmt.Errorf("failed to delete attendee: %w", err)
	}
	if res.DeletedCount == 0 {
		return NotFound("Attendee")
	}
	return nil
}
