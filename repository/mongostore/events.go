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

type eventsStore struct{ s *store }

func (r eventsStore) col() *mongo.Collection { return r.s.db.Collection("events") }

func (r eventsStore) List(ctx context.Context) ([]models.Event, error) {
	cursor, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("could not fetch events: %w", err)
	}
	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("could not decode events: %w", err)
	}
	return events, nil
}

func (r eventsStore) Get(ctx context.Context, id string) (models.Event, error) {
	var event models.Event
	err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Event{}, repository.ErrNotFound
	}
	return event, err
}

func (r eventsStore) Create(ctx context.Context, in models.CreateEvent) (models.Event, error) {
	now := time.Now().UTC()
	event := models.Event{
		ID:               newID(),
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Category:         in.Category,
		Description:      in.Description,
		ImageURL:         in.ImageURL,
		Date:             in.Date,
		Time:             in.Time,
		EndTime:          in.EndTime,
		Location:         in.Location,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if _, err := r.col().InsertOne(ctx, event); err != nil {
		return models.Event{}, fmt.Errorf("could not create event: %w", err)
	}
	return event, nil
}

func (r eventsStore) Update(ctx context.Context, id string, fields map[string]any) (models.Event, error) {
	var updated models.Event
	err := r.col().
		FindOneAndUpdate(ctx, bson.M{"_id": id}, setFields(fields), returnUpdated()).
		Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Event{}, repository.ErrNotFound
	}
	return updated, err
}

func (r eventsStore) Delete(ctx context.Context, id string) error {
	res, err := r.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("could not delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
