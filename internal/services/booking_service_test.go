package services

import (
	"context"
	"testing"

	"github.com/eventdesk/server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingsRepo records whether the service delegated to it.
type stubBookingsRepo struct {
	models.BookingsRepo
	createCalled bool
}

func (s *stubBookingsRepo) CreateBooking(ctx context.Context, booking *models.Booking) (models.EntityID, error) {
	s.createCalled = true
	return models.EntityID{}, nil
}

func TestCreateBookingRejectsIncompletePayload(t *testing.T) {
	repo := &stubBookingsRepo{}
	svc := NewBookingService(repo)

	_, err := svc.CreateBooking(context.Background(), &models.Booking{
		AttendeeID: "507f1f77bcf86cd799439011",
		TicketType: "GA",
	})

	require.Error(t, err)
	kind, ok := models.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, models.KindInvalidPayload, kind)
	assert.False(t, repo.createCalled, "repository must not be reached on invalid payload")
}

func TestBookingServiceEmptyIDGuards(t *testing.T) {
	svc := NewBookingService(&stubBookingsRepo{})

	_, err := svc.GetBooking(context.Background(), "   ")
	require.Error(t, err)
	kind, _ := models.KindOf(err)
	assert.Equal(t, models.KindMalformedID, kind)

	err = svc.DeleteBooking(context.Background(), "")
	require.Error(t, err)
	kind, _ = models.KindOf(err)
	assert.Equal(t, models.KindMalformedID, kind)
}
