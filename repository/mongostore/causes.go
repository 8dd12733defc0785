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

type causesStore struct{ s *store }

func (r causesStore) col() *mongo.Collection { return r.s.db.Collection("causes") }

func (r causesStore) List(ctx context.Context) ([]models.Cause, error) {
	cursor, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("could not fetch causes: %w", err)
	}
	causes := []models.Cause{}
	if err := cursor.All(ctx, &causes); err != nil {
		return nil, fmt.Errorf("could not decode causes: %w", err)
	}
	return causes, nil
}

func (r causesStore) Get(ctx context.Context, id string) (models.Cause, error) {
	var cause models.Cause
	err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(&cause)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Cause{}, repository.ErrNotFound
	}
	return cause, err
}

func (r causesStore) Create(ctx context.Context, in models.CreateCause) (models.Cause, error) {
	now := time.Now().UTC()
	cause := models.Cause{
		ID:          newID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Goal:        in.Goal,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.col().InsertOne(ctx, cause); err != nil {
		return models.Cause{}, fmt.Errorf("could not create cause: %w", err)
	}
	return cause, nil
}

func (r causesStore) Update(ctx context.Context, id string, fields map[string]any) (models.Cause, error) {
	var updated models.Cause
	err := r.col().
		FindOneAndUpdate(ctx, bson.M{"_id": id}, setFields(fields), returnUpdated()).
		Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Cause{}, repository.ErrNotFound
	}
	return updated, err
}

func (r causesStore) Delete(ctx context.Context, id string) error {
	res, err := r.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("could not delete cause: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
