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

type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (EntityID, error)
	ListBookings(ctx context.Context) ([]*Booking, error)
	GetBooking(ctx context.Context, id string) (*Booking, error)
	UpdateBooking(ctx context.Context, id string, booking *Booking) error
	DeleteBooking(ctx context.Context, id string) error
}

// resolveBookingRefs validates the event reference and then the attendee
// reference, short-circuiting on the first failure so a bad event id never
// triggers the attendee read.
func (mdb *MongodbRepo) resolveBookingRefs(ctx context.Context, booking *Booking) error {
	events, err := mdb.GetCollection(ctx, DbName, EventsColName)
	if err != nil {
		return err
	}
	attendees, err := mdb.GetCollection(ctx, DbName, AttendeesColName)
	if err != nil {
		return err
	}

	eventID, err := mdb.ResolveReference(ctx, events, booking.EventID, "Event")
	if err != nil {
		return err
	}
	attendeeID, err := mdb.ResolveReference(ctx, attendees, booking.AttendeeID, "Attendee")
	if err != nil {
		return err
	}

	booking.EventID = eventID.Hex()
	booking.AttendeeID = attendeeID.Hex()
	return nil
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (EntityID, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return EntityID{}, err
	}

	if err := mdb.resolveBookingRefs(ctx, booking); err != nil {
		return EntityID{}, err
	}

	// Identifiers are system-assigned; a client-supplied id is discarded.
	booking.ID = primitive.ObjectID{}

	res, err := col.InsertOne(ctx, booking)
	if err != nil {
		return EntityID{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return EntityID{}, PersistenceFailure("Failed to create booking")
	}
	return EntityID(oid), nil
}

func (mdb *MongodbRepo) ListBookings(ctx context.Context) ([]*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetLimit(ListCap))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*Booking{}
	}
	return bookings, nil
}

func (mdb *MongodbRepo) GetBooking(ctx context.Context, id string) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, err
	}

	bookingID, err := ParseEntityID(id)
	if err != nil {
		return nil, MalformedID("booking")
	}

	var booking Booking
	err = col.FindOne(ctx, bson.M{"_id": bookingID.ObjectID()}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, NotFound("Booking")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return &booking, nil
}

func (mdb *MongodbRepo) UpdateBooking(ctx context.Context, id string, booking *Booking) error {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return err
	}

	bookingID, err := ParseEntityID(id)
	if err != nil {
		return MalformedID("booking")
	}

	// Both references are re-validated even when unchanged.
	if err := mdb.resolveBookingRefs(ctx, booking); err != nil {
		return err
	}

	// _id is immutable; zeroing keeps it out of the $set document.
	booking.ID = primitive.ObjectID{}

	res, err := col.UpdateOne(ctx, bson.M{"_id": bookingID.ObjectID()}, bson.M{"$set": booking})
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return NotFound("Booking")
	}
	return nil
}

func (mdb *MongodbRepo) DeleteBooking(ctx context.Context, id string) error {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return err
	}

	bookingID, err := ParseEntityID(id)
	if err != nil {
		return MalformedID("booking")
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": bookingID.ObjectID()})
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return NotFound("Booking")
	}
	return nil
}
