package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MediaRepo interface {
	StoreMedia(ctx context.Context, kind MediaKind, parentID, filename, contentType string, content []byte) (EntityID, error)
}

// StoreMedia validates the parent reference and appends one media document.
// Media assets are create-only: there is no retrieval, update or delete.
func (mdb *MongodbRepo) StoreMedia(ctx context.Context, kind MediaKind, parentID, filename, contentType string, content []byte) (EntityID, error) {
	col, err := mdb.GetCollection(ctx, DbName, kind.ColName)
	if err != nil {
		return EntityID{}, err
	}
	parents, err := mdb.GetCollection(ctx, DbName, kind.ParentColName)
	if err != nil {
		return EntityID{}, err
	}

	parent, err := mdb.ResolveReference(ctx, parents, parentID, kind.ParentName)
	if err != nil {
		return EntityID{}, err
	}

	doc := bson.M{
		kind.ParentField: parent.Hex(),
		"filename":       filename,
		"content_type":   contentType,
		"content":        primitive.Binary{Subtype: 0x00, Data: content},
		"uploaded_at":    time.Now().UTC(),
	}

	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return EntityID{}, fmt.Errorf("failed to insert %s: %w", kind.Label, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return EntityID{}, PersistenceFailure(fmt.Sprintf("Failed to upload %s", kind.Label))
	}
	return EntityID(oid), nil
}
