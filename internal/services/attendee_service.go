package services

import (
	"context"
	"strings"

	"github.com/eventdesk/server/internal/models"
)

type AttendeeService struct {
	attendeesRepo models.AttendeesRepo
}

func NewAttendeeService(attendeesRepo models.AttendeesRepo) *AttendeeService {
	return &AttendeeService{
		attendeesRepo: attendeesRepo,
	}
}

func (as *AttendeeService) CreateAttendee(ctx context.Context, attendee *models.Attendee) (models.EntityID, error) {
	if err := models.Validate.Struct(attendee); err != nil {
		return models.EntityID{}, models.InvalidPayload(err.Error())
	}
	return as.attendeesRepo.CreateAttendee(ctx, attendee)
}

func (as *AttendeeService) ListAttendees(ctx context.Context) ([]*models.Attendee, error) {
	return as.attendeesRepo.ListAttendees(ctx)
}

func (as *AttendeeService) GetAttendee(ctx context.Context, id string) (*models.Attendee, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.MalformedID("attendee")
	}
	return as.attendeesRepo.GetAttendee(ctx, id)
}

func (as *AttendeeService) UpdateAttendee(ctx context.Context, id string, attendee *models.Attendee) error {
	if strings.TrimSpace(id) == "" {
		return models.MalformedID("attendee")
	}
	if err := models.Validate.Struct(attendee); err != nil {
		return models.InvalidPayload(err.Error())
	}
	return as.attendeesRepo.UpdateAttendee(ctx, id, attendee)
}

func (as *AttendeeService) DeleteAttendee(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return models.MalformedID("attendee")
	}
	return as.attendeesRepo.DeleteAttendee(ctx, id)
}
