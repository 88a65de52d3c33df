package services

import (
	"context"
	"strings"

	"github.com/eventdesk/server/internal/models"
)

type EventService struct {
	eventsRepo models.EventsRepo
}

func NewEventService(eventsRepo models.EventsRepo) *EventService {
	return &EventService{
		eventsRepo: eventsRepo,
	}
}

func (es *EventService) CreateEvent(ctx context.Context, event *models.Event) (models.EntityID, error) {
	if err := models.Validate.Struct(event); err != nil {
		return models.EntityID{}, models.InvalidPayload(err.Error())
	}
	return es.eventsRepo.CreateEvent(ctx, event)
}

func (es *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return es.eventsRepo.ListEvents(ctx)
}

func (es *EventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.MalformedID("event")
	}
	return es.eventsRepo.GetEvent(ctx, id)
}

func (es *EventService) UpdateEvent(ctx context.Context, id string, event *models.Event) error {
	if strings.TrimSpace(id) == "" {
		return models.MalformedID("event")
	}
	if err := models.Validate.Struct(event); err != nil {
		return models.InvalidPayload(err.Error())
	}
	return es.eventsRepo.UpdateEvent(ctx, id, event)
}

func (es *EventService) DeleteEvent(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return models.MalformedID("event")
	}
	return es.eventsRepo.DeleteEvent(ctx, id)
}
