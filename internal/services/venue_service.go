package services

import (
	"context"
	"strings"

	"github.com/eventdesk/server/internal/models"
)

type VenueService struct {
	venuesRepo models.VenuesRepo
}

func NewVenueService(venuesRepo models.VenuesRepo) *VenueService {
	return &VenueService{
		venuesRepo: venuesRepo,
	}
}

func (vs *VenueService) CreateVenue(ctx context.Context, venue *models.Venue) (models.EntityID, error) {
	if err := models.Validate.Struct(venue); err != nil {
		return models.EntityID{}, models.InvalidPayload(err.Error())
	}
	return vs.venuesRepo.CreateVenue(ctx, venue)
}

func (vs *VenueService) ListVenues(ctx context.Context) ([]*models.Venue, error) {
	return vs.venuesRepo.ListVenues(ctx)
}

func (vs *VenueService) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.MalformedID("venue")
	}
	return vs.venuesRepo.GetVenue(ctx, id)
}

func (vs *VenueService) UpdateVenue(ctx context.Context, id string, venue *models.Venue) error {
	if strings.TrimSpace(id) == "" {
		return models.MalformedID("venue")
	}
	if err := models.Validate.Struct(venue); err != nil {
		return models.InvalidPayload(err.Error())
	}
	return vs.venuesRepo.UpdateVenue(ctx, id, venue)
}

func (vs *VenueService) DeleteVenue(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return models.MalformedID("venue")
	}
	return vs.venuesRepo.DeleteVenue(ctx, id)
}
