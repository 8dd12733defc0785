// Package repository defines the per-entity data access contracts shared by
// the upstream proxy client and the standalone Mongo store. Handlers receive
// a Store at construction and never touch a transport or database directly.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/phillip/charity-admin-go/models"
)

// ErrNotFound is returned when the backing store has no record for the id.
var ErrNotFound = errors.New("not found")

// UpstreamError carries a non-2xx upstream response so the proxy can relay
// status and body verbatim to the caller.
type UpstreamError struct {
	Status int
	Body   []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream rejected request: status %d", e.Status)
}

type Causes interface {
	List(ctx context.Context) ([]models.Cause, error)
	Get(ctx context.Context, id string) (models.Cause, error)
	Create(ctx context.Context, in models.CreateCause) (models.Cause, error)
	Update(ctx context.Context, id string, fields map[string]any) (models.Cause, error)
	Delete(ctx context.Context, id string) error
}

type Events interface {
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id string) (models.Event, error)
	Create(ctx context.Context, in models.CreateEvent) (models.Event, error)
	Update(ctx context.Context, id string, fields map[string]any) (models.Event, error)
	Delete(ctx context.Context, id string) error
}

type Gallery interface {
	List(ctx context.Context) ([]models.GalleryItem, error)
	Get(ctx context.Context, id string) (models.GalleryItem, error)
	Create(ctx context.Context, in models.CreateGalleryItem) (models.GalleryItem, error)
	Update(ctx context.Context, id string, fields map[string]any) (models.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}

type Teams interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	Get(ctx context.Context, id string) (models.TeamMember, error)
	Create(ctx context.Context, in models.CreateTeamMember) (models.TeamMember, error)
	Update(ctx context.Context, id string, fields map[string]any) (models.TeamMember, error)
	Delete(ctx context.Context, id string) error
}

// Store bundles one repository per entity.
type Store struct {
	Causes  Causes
	Events  Events
	Gallery Gallery
	Teams   Teams
}
