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

type VenuesRepo interface {
	CreateVenue(ctx context.Context, venue *Venue) (EntityID, error)
	ListVenues(ctx context.Context) ([]*Venue, error)
	GetVenue(ctx context.Context, id string) (*Venue, error)
	UpdateVenue(ctx context.Context, id string, venue *Venue) error
	DeleteVenue(ctx context.Context, id string) error
}

func (mdb *MongodbRepo) CreateVenue(ctx context.Context, venue *Venue) (EntityID, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return EntityID{}, err
	}

	// Identifiers are system-assigned; a client-supplied id is discarded.
	venue.ID = primitive.ObjectID{}

	res, err := col.InsertOne(ctx, venue)
	if err != nil {
		return EntityID{}, fmt.Errorf("failed to insert venue: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return EntityID{}, PersistenceFailure("Failed to create venue")
	}
	return EntityID(oid), nil
}

func (mdb *MongodbRepo) ListVenues(ctx context.Context) ([]*Venue, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetLimit(ListCap))
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	defer cursor.Close(ctx)

	var venues []*Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode venues: %w", err)
	}
	if venues == nil {
		venues = []*Venue{}
	}
	return venues, nil
}

func (mdb *MongodbRepo) GetVenue(ctx context.Context, id string) (*Venue, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return nil, err
	}

	venueID, err := ParseEntityID(id)
	if err != nil {
		return nil, MalformedID("venue")
	}

	var venue Venue
	err = col.FindOne(ctx, bson.M{"_id": venueID.ObjectID()}).Decode(&venue)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, NotFound("Venue")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find venue: %w", err)
	}
	return &venue, nil
}

func (mdb *MongodbRepo) UpdateVenue(ctx context.Context, id string, venue *Venue) error {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return err
	}

	venueID, err := ParseEntityID(id)
	if err != nil {
		return MalformedID("venue")
	}

	// _id is immutable; zeroing keeps it out of the $set document.
	venue.ID = primitive.ObjectID{}

	res, err := col.UpdateOne(ctx, bson.M{"_id": venueID.ObjectID()}, bson.M{"$set": venue})
	if err != nil {
		return fmt.Errorf("failed to update venue: %w", err)
	}
	if res.MatchedCount == 0 {
		return NotFound("Venue")
	}
	return nil
}

// DeleteVenue does not cascade: events keep whatever venue_id they carry,
// dangling or not.
func (mdb *MongodbRepo) DeleteVenue(ctx context.Context, id string) error {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return err
	}

	venueID, err := ParseEntityID(id)
	if err != nil {
		return MalformedID("venue")
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": venueID.ObjectID()})
	if err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}
	if res.DeletedCount == 0 {
		return NotFound("Venue")
	}
	return nil
}
