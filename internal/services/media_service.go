package services

import (
	"context"
	"strings"

	"github.com/eventdesk/server/internal/models"
)

type MediaService struct {
	mediaRepo models.MediaRepo
}

func NewMediaService(mediaRepo models.MediaRepo) *MediaService {
	return &MediaService{
		mediaRepo: mediaRepo,
	}
}

// StoreMedia accepts the upload bytes opaquely; there is no content
// validation and no size handling beyond what the boundary layer enforces.
func (ms *MediaService) StoreMedia(ctx context.Context, kind models.MediaKind, parentID, filename, contentType string, content []byte) (models.EntityID, error) {
	if strings.TrimSpace(parentID) == "" {
		return models.EntityID{}, models.MalformedReference(kind.ParentName)
	}
	if strings.TrimSpace(filename) == "" {
		return models.EntityID{}, models.InvalidPayload("filename is required")
	}
	return ms.mediaRepo.StoreMedia(ctx, kind, parentID, filename, contentType, content)
}
