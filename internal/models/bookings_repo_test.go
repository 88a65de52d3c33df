package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const attendeesNS = DbName + "." + AttendeesColName

func TestCreateBooking(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("both references resolve", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client)
		eventID := primitive.NewObjectID()
		attendeeID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, eventsNS, mtest.FirstBatch, bson.D{{Key: "_id", Value: eventID}}),
			mtest.CreateCursorResponse(0, attendeesNS, mtest.FirstBatch, bson.D{{Key: "_id", Value: attendeeID}}),
			mtest.CreateSuccessResponse(),
		)

		booking := &Booking{
			EventID:    eventID.Hex(),
			AttendeeID: attendeeID.Hex(),
			TicketType: "GA",
			Quantity:   2,
		}

		id, err := repo.CreateBooking(context.Background(), booking)
		require.NoError(mt, err)
		assert.False(mt, id.ObjectID().IsZero())
		assert.Equal(mt, eventID.Hex(), booking.EventID)
		assert.Equal(mt, attendeeID.Hex(), booking.AttendeeID)
	})

	mt.Run("event missing short-circuits before attendee check", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, eventsNS, mtest.FirstBatch),
		)

		booking := &Booking{
			EventID:    primitive.NewObjectID().Hex(),
			AttendeeID: primitive.NewObjectID().Hex(),
			TicketType: "GA",
			Quantity:   1,
		}

		_, err := repo.CreateBooking(context.Background(), booking)
		require.Error(mt, err)
		assert.EqualError(mt, err, "Event not found")
		kind, _ := KindOf(err)
		assert.Equal(mt, KindReferenceNotFound, kind)
	})

	mt.Run("attendee missing names the failing entity", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client)
		eventID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, eventsNS, mtest.FirstBatch, bson.D{{Key: "_id", Value: eventID}}),
			mtest.CreateCursorResponse(0, attendeesNS, mtest.FirstBatch),
		)

		booking := &Booking{
			EventID:    eventID.Hex(),
			AttendeeID: primitive.NewObjectID().Hex(),
			TicketType: "GA",
			Quantity:   1,
		}

		// No insert mock: the booking must not be persisted.
		_, err := repo.CreateBooking(context.Background(), booking)
		require.Error(mt, err)
		assert.EqualError(mt, err, "Attendee not found")
	})
}

func TestUpdateBookingRevalidatesReferences(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unchanged references are still checked", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client)
		eventID := primitive.NewObjectID()
		attendeeID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, eventsNS, mtest.FirstBatch, bson.D{{Key: "_id", Value: eventID}}),
			mtest.CreateCursorResponse(0, attendeesNS, mtest.FirstBatch, bson.D{{Key: "_id", Value: attendeeID}}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		booking := &Booking{
			EventID:    eventID.Hex(),
			AttendeeID: attendeeID.Hex(),
			TicketType: "VIP",
			Quantity:   4,
		}

		err := repo.UpdateBooking(context.Background(), primitive.NewObjectID().Hex(), booking)
		assert.NoError(mt, err)
	})

	mt.Run("dangling attendee reference fails the update", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client)
		eventID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, eventsNS, mtest.FirstBatch, bson.D{{Key: "_id", Value: eventID}}),
			mtest.CreateCursorResponse(0, attendeesNS, mtest.FirstBatch),
		)

		booking := &Booking{
			EventID:    eventID.Hex(),
			AttendeeID: primitive.NewObjectID().Hex(),
			TicketType: "VIP",
			Quantity:   4,
		}

		err := repo.UpdateBooking(context.Background(), primitive.NewObjectID().Hex(), booking)
		require.Error(mt, err)
		assert.EqualError(mt, err, "Attendee not found")
	})
}
