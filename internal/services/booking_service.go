package services

import (
	"context"
	"strings"

	"github.com/eventdesk/server/internal/models"
)

type BookingService struct {
	bookingsRepo models.BookingsRepo
}

func NewBookingService(bookingsRepo models.BookingsRepo) *BookingService {
	return &BookingService{
		bookingsRepo: bookingsRepo,
	}
}

func (bs *BookingService) CreateBooking(ctx context.Context, booking *models.Booking) (models.EntityID, error) {
	if err := models.Validate.Struct(booking); err != nil {
		return models.EntityID{}, models.InvalidPayload(err.Error())
	}
	return bs.bookingsRepo.CreateBooking(ctx, booking)
}

func (bs *BookingService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return bs.bookingsRepo.ListBookings(ctx)
}

func (bs *BookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.MalformedID("booking")
	}
	return bs.bookingsRepo.GetBooking(ctx, id)
}

func (bs *BookingService) UpdateBooking(ctx context.Context, id string, booking *models.Booking) error {
	if strings.TrimSpace(id) == "" {
		return models.MalformedID("booking")
	}
	if err := models.Validate.Struct(booking); err != nil {
		return models.InvalidPayload(err.Error())
	}
	return bs.bookingsRepo.UpdateBooking(ctx, id, booking)
}

func (bs *BookingService) DeleteBooking(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return models.MalformedID("booking")
	}
	return bs.bookingsRepo.DeleteBooking(ctx, id)
}
