package upstream

import (
	"context"
	"net/http"

	"github.com/phillip/charity-admin-go/models"
)

// --- Causes ---

type causesClient struct{ c *Client }

func (r causesClient) List(ctx context.Context) ([]models.Cause, error) {
	var out []models.Cause
	err := r.c.do(ctx, http.MethodGet, "/causes", nil, &out)
	return out, err
}

func (r causesClient) Get(ctx context.Context, id string) (models.Cause, error) {
	var out models.Cause
	err := r.c.do(ctx, http.MethodGet, "/causes/"+id, nil, &out)
	return out, err
}

func (r causesClient) Create(ctx context.Context, in models.CreateCause) (models.Cause, error) {
	var out models.Cause
	err := r.c.do(ctx, http.MethodPost, "/causes", in, &out)
	return out, err
}

func (r causesClient) Update(ctx context.Context, id string, fields map[string]any) (models.Cause, error) {
	var out models.Cause
	err := r.c.do(ctx, http.MethodPatch, "/causes/"+id, fields, &out)
	return out, err
}

func (r causesClient) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, "/causes/"+id, nil, nil)
}

// --- Events ---

type eventsClient struct{ c *Client }

func (r eventsClient) List(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	err := r.c.do(ctx, http.MethodGet, "/events", nil, &out)
	return out, err
}

func (r eventsClient) Get(ctx context.Context, id string) (models.Event, error) {
	var out models.Event
	err := r.c.do(ctx, http.MethodGet, "/events/"+id, nil, &out)
	return out, err
}

func (r eventsClient) Create(ctx context.Context, in models.CreateEvent) (models.Event, error) {
	var out models.Event
	err := r.c.do(ctx, http.MethodPost, "/events", in, &out)
	return out, err
}

func (r eventsClient) Update(ctx context.Context, id string, fields map[string]any) (models.Event, error) {
	var out models.Event
	err := r.c.do(ctx, http.MethodPatch, "/events/"+id, fields, &out)
	return out, err
}

func (r eventsClient) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, "/events/"+id, nil, nil)
}

// --- Gallery ---

type galleryClient struct{ c *Client }

func (r galleryClient) List(ctx context.Context) ([]models.GalleryItem, error) {
	var out []models.GalleryItem
	err := r.c.do(ctx, http.MethodGet, "/gallery", nil, &out)
	return out, err
}

func (r galleryClient) Get(ctx context.Context, id string) (models.GalleryItem, error) {
	var out models.GalleryItem
	err := r.c.do(ctx, http.MethodGet, "/gallery/"+id, nil, &out)
	return out, err
}

func (r galleryClient) Create(ctx context.Context, in models.CreateGalleryItem) (models.GalleryItem, error) {
	var out models.GalleryItem
	err := r.c.do(ctx, http.MethodPost, "/gallery", in, &out)
	return out, err
}

func (r galleryClient) Update(ctx context.Context, id string, fields map[string]any) (models.GalleryItem, error) {
	var out models.GalleryItem
	err := r.c.do(ctx, http.MethodPatch, "/gallery/"+id, fields, &out)
	return out, err
}

func (r galleryClient) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, "/gallery/"+id, nil, nil)
}

// --- Teams ---

type teamsClient struct{ c *Client }

func (r teamsClient) List(ctx context.Context) ([]models.TeamMember, error) {
	var out []models.TeamMember
	err := r.c.do(ctx, http.MethodGet, "/teams", nil, &out)
	return out, err
}

func (r teamsClient) Get(ctx context.Context, id string) (models.TeamMember, error) {
	var out models.TeamMember
	err := r.c.do(ctx, http.MethodGet, "/teams/"+id, nil, &out)
	return out, err
}

func (r teamsClient) Create(ctx context.Context, in models.CreateTeamMember) (models.TeamMember, error) {
	var out models.TeamMember
	err := r.c.do(ctx, http.MethodPost, "/teams", in, &out)
	return out, err
}

func (r teamsClient) Update(ctx context.Context, id string, fields map[string]any) (models.TeamMember, error) {
	var out models.TeamMember
	err := r.c.do(ctx, http.MethodPatch, "/teams/"+id, fields, &out)
	return out, err
}

func (r teamsClient) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, "/teams/"+id, nil, nil)
}
