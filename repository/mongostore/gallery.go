package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phillip/charity-admin-go/models"
	"github.com/phillip/charity-admin-go/repository"
)

type galleryStore struct{ s *store }

func (r galleryStore) col() *mongo.Collection { return r.s.db.Collection("gallery") }

func (r galleryStore) List(ctx context.Context) ([]models.GalleryItem, error) {
	cursor, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("could not fetch gallery items: %w", err)
	}
	items := []models.GalleryItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("could not decode gallery items: %w", err)
	}
	return items, nil
}

func (r galleryStore) Get(ctx context.Context, id string) (models.GalleryItem, error) {
	var item models.GalleryItem
	err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.GalleryItem{}, repository.ErrNotFound
	}
	return item, err
}

func (r galleryStore) Create(ctx context.Context, in models.CreateGalleryItem) (models.GalleryItem, error) {
	now := time.Now().UTC()
	item := models.GalleryItem{
		ID:          newID(),
		Src:         in.Src,
		Alt:         in.Alt,
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.col().InsertOne(ctx, item); err != nil {
		return models.GalleryItem{}, fmt.Errorf("could not create gallery item: %w", err)
	}
	return item, nil
}

func (r galleryStore) Update(ctx context.Context, id string, fields map[string]any) (models.GalleryItem, error) {
	var updated models.GalleryItem
	err := r.col().
		FindOneAndUpdate(ctx, bson.M{"_id": id}, setFields(fields), returnUpdated()).
		Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.GalleryItem{}, repository.ErrNotFound
	}
	return updated, err
}

func (r galleryStore) Delete(ctx context.Context, id string) error {
	res, err := r.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("could not delete gallery item: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
