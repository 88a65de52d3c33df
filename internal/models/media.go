package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EventPostersColName = "event_posters"
	PromoVideosColName  = "promo_videos"
	VenuePhotosColName  = "venue_photos"
)

// MediaKind describes one of the three upload targets: which collection the
// asset lands in, which collection its parent must exist in, the name of the
// parent reference field on the stored document, and the display name used
// in error details.
type MediaKind struct {
	ColName       string
	ParentColName string
	ParentField   string
	ParentName    string
	Label         string
}

var (
	EventPoster = MediaKind{
		ColName:       EventPostersColName,
		ParentColName: EventsColName,
		ParentField:   "event_id",
		ParentName:    "Event",
		Label:         "event poster",
	}
	PromoVideo = MediaKind{
		ColName:       PromoVideosColName,
		ParentColName: EventsColName,
		ParentField:   "event_id",
		ParentName:    "Event",
		Label:         "promotional video",
	}
	VenuePhoto = MediaKind{
		ColName:       VenuePhotosColName,
		ParentColName: VenuesColName,
		ParentField:   "venue_id",
		ParentName:    "Venue",
		Label:         "venue photo",
	}
)

// MediaAsset is the decoded shape of a stored upload. The parent reference
// field name varies per kind (event_id or venue_id), so inserts are built
// from the kind descriptor rather than this struct; it exists for decoding
// in tests and any future retrieval surface.
type MediaAsset struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Filename    string             `bson:"filename" json:"filename"`
	ContentType string             `bson:"content_type" json:"content_type"`
	Content     []byte             `bson:"content" json:"-"`
	UploadedAt  time.Time          `bson:"uploaded_at" json:"uploaded_at"`
}
