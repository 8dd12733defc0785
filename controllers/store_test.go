package controllers

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	config "github.com/phillip/charity-admin-go/config"
	models "github.com/phillip/charity-admin-go/models"
	"github.com/phillip/charity-admin-go/repository"
)

// memStore is an in-memory stand-in for the real repositories. Call
// counters let tests assert that invalid requests never reach the backend.
type memStore struct {
	nextID int

	causes map[string]models.Cause
	events map[string]models.Event

	causeCreates int
	eventCreates int
}

func newMemStore() *memStore {
	return &memStore{
		causes: map[string]models.Cause{},
		events: map[string]models.Event{},
	}
}

func (m *memStore) id() string {
	m.nextID++
	return fmt.Sprintf("id-%d", m.nextID)
}

func testConfig(store *memStore) *config.Config {
	return &config.Config{
		Env:                "production",
		PublicBaseURL:      "https://dashboard.example.org",
		UploadMaxSize:      config.DefaultMaxFileSize,
		UploadAllowedTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif"},
		Logger:             zap.NewNop().Sugar(),
		Repos: repository.Store{
			Causes: memCauses{store},
			Events: memEvents{store},
		},
	}
}

// --- Causes ---

type memCauses struct{ m *memStore }

func (r memCauses) List(context.Context) ([]models.Cause, error) {
	out := []models.Cause{}
	for _, c := range r.m.causes {
		out = append(out, c)
	}
	return out, nil
}

func (r memCauses) Get(_ context.Context, id string) (models.Cause, error) {
	c, ok := r.m.causes[id]
	if !ok {
		return models.Cause{}, repository.ErrNotFound
	}
	return c, nil
}

func (r memCauses) Create(_ context.Context, in models.CreateCause) (models.Cause, error) {
	r.m.causeCreates++
	now := time.Now().UTC()
	c := models.Cause{
		ID: r.m.id(), Title: in.Title, Goal: in.Goal, Category: in.Category,
		Description: in.Description, ImageURL: in.ImageURL,
		CreatedAt: now, UpdatedAt: now,
	}
	r.m.causes[c.ID] = c
	return c, nil
}

func (r memCauses) Update(_ context.Context, id string, fields map[string]any) (models.Cause, error) {
	c, ok := r.m.causes[id]
	if !ok {
		return models.Cause{}, repository.ErrNotFound
	}
	if v, ok := fields["title"].(string); ok {
		c.Title = v
	}
	if v, ok := fields["goal"].(float64); ok {
		c.Goal = v
	}
	if v, ok := fields["imageUrl"].(string); ok {
		c.ImageURL = v
	}
	c.UpdatedAt = time.Now().UTC()
	r.m.causes[id] = c
	return c, nil
}

func (r memCauses) Delete(_ context.Context, id string) error {
	if _, ok := r.m.causes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.m.causes, id)
	return nil
}

// --- Events ---

type memEvents struct{ m *memStore }

func (r memEvents) List(context.Context) ([]models.Event, error) {
	out := []models.Event{}
	for _, e := range r.m.events {
		out = append(out, e)
	}
	return out, nil
}

func (r memEvents) Get(_ context.Context, id string) (models.Event, error) {
	e, ok := r.m.events[id]
	if !ok {
		return models.Event{}, repository.ErrNotFound
	}
	return e, nil
}

func (r memEvents) Create(_ context.Context, in models.CreateEvent) (models.Event, error) {
	r.m.eventCreates++
	now := time.Now().UTC()
	e := models.Event{
		ID: r.m.id(), Title: in.Title, ShortDescription: in.ShortDescription,
		Category: in.Category, Description: in.Description, ImageURL: in.ImageURL,
		Date: in.Date, Time: in.Time, EndTime: in.EndTime, Location: in.Location,
		CreatedAt: now, UpdatedAt: now,
	}
	r.m.events[e.ID] = e
	return e, nil
}

func (r memEvents) Update(_ context.Context, id string, fields map[string]any) (models.Event, error) {
	e, ok := r.m.events[id]
	if !ok {
		return models.Event{}, repository.ErrNotFound
	}
	if v, ok := fields["title"].(string); ok {
		e.Title = v
	}
	if v, ok := fields["endTime"].(string); ok {
		e.EndTime = v
	}
	e.UpdatedAt = time.Now().UTC()
	r.m.events[id] = e
	return e, nil
}

func (r memEvents) Delete(_ context.Context, id string) error {
	if _, ok := r.m.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.m.events, id)
	return nil
}
