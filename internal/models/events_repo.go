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

type EventsRepo interface {
	CreateEvent(ctx context.Context, event *Event) (EntityID, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	UpdateEvent(ctx context.Context, id string, event *Event) error
	DeleteEvent(ctx context.Context, id string) error
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (EntityID, error) {
	col, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return EntityID{}, err
	}
	venues, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return EntityID{}, err
	}

	venueID, err := mdb.ResolveReference(ctx, venues, event.VenueID, "Venue")
	if err != nil {
		return EntityID{}, err
	}
	event.VenueID = venueID.Hex()

	// Identifiers are system-assigned; a client-supplied id is discarded.
	event.ID = primitive.ObjectID{}

	res, err := col.InsertOne(ctx, event)
	if err != nil {
		return EntityID{}, fmt.Errorf("failed to insert event: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return EntityID{}, PersistenceFailure("Failed to create event")
	}
	return EntityID(oid), nil
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	col, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetLimit(ListCap))
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	if events == nil {
		events = []*Event{}
	}
	return events, nil
}

func (mdb *MongodbRepo) GetEvent(ctx context.Context, id string) (*Event, error) {
	col, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return nil, err
	}

	eventID, err := ParseEntityID(id)
	if err != nil {
		return nil, MalformedID("event")
	}

	var event Event
	err = col.FindOne(ctx, bson.M{"_id": eventID.ObjectID()}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, NotFound("Event")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return &event, nil
}

func (mdb *MongodbRepo) UpdateEvent(ctx context.Context, id string, event *Event) error {
	col, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return err
	}
	venues, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return err
	}

	eventID, err := ParseEntityID(id)
	if err != nil {
		return MalformedID("event")
	}

	// The venue reference is re-validated even when unchanged.
	venueID, err := mdb.ResolveReference(ctx, venues, event.VenueID, "Venue")
	if err != nil {
		return err
	}
	event.VenueID = venueID.Hex()

	// _id is immutable; zeroing keeps it out of the $set document.
	event.ID = primitive.ObjectID{}

	res, err := col.UpdateOne(ctx, bson.M{"_id": eventID.ObjectID()}, bson.M{"$set": event})
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if res.MatchedCount == 0 {
		return NotFound("Event")
	}
	return nil
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id string) error {
	col, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return err
	}

	eventID, err := ParseEntityID(id)
	if err != nil {
		return MalformedID("event")
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": eventID.ObjectID()})
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return NotFound("Event")
	}
	return nil
}
