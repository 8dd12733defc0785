// Package storage persists uploaded images. Providers are tried in a fixed
// order; a failure on one degrades to the next instead of failing the
// request. The local filesystem provider is always last and terminal.
package storage

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/phillip/charity-admin-go/models"
)

// File is a fully buffered upload. Buffering lets every provider in the
// chain see the same content.
type File struct {
	Name        string
	ContentType string
	Folder      string
	Data        []byte
}

type Provider interface {
	Name() string
	Upload(ctx context.Context, f File) (models.UploadResult, error)
	Remove(ctx context.Context, objectPath string) error
}

// URLMatcher reports whether a public URL belongs to this provider and, if
// so, the object path to remove.
type URLMatcher interface {
	MatchURL(raw string) (string, bool)
}

// Attempt records one provider try so callers can see which backends were
// consulted and why they were skipped.
type Attempt struct {
	Provider string
	Err      error
}

type Chain struct {
	providers []Provider
	log       *zap.SugaredLogger
}

func NewChain(log *zap.SugaredLogger, providers ...Provider) *Chain {
	return &Chain{providers: providers, log: log}
}

// Providers returns the configured provider names in try order.
func (ch *Chain) Providers() []string {
	names := make([]string, len(ch.providers))
	for i, p := range ch.providers {
		names[i] = p.Name()
	}
	return names
}

// Upload tries each provider in order and returns the first success tagged
// with the serving provider, plus the attempt log.
func (ch *Chain) Upload(ctx context.Context, f File) (models.UploadResult, []Attempt, error) {
	var attempts []Attempt
	for _, p := range ch.providers {
		res, err := p.Upload(ctx, f)
		attempts = append(attempts, Attempt{Provider: p.Name(), Err: err})
		if err != nil {
			ch.log.Warnw("storage upload failed, falling back",
				"provider", p.Name(), "error", err)
			continue
		}
		return res, attempts, nil
	}
	return models.UploadResult{}, attempts, errors.New("all storage providers failed")
}

// RemoveByURL reverse-engineers the object path from a public image URL and
// removes it from the owning provider. URLs that match no provider fall back
// to treating the last path segment as a file under uploads/ on the first
// provider, mirroring the dashboard's historical behavior.
func (ch *Chain) RemoveByURL(ctx context.Context, raw string) error {
	for _, p := range ch.providers {
		m, ok := p.(URLMatcher)
		if !ok {
			continue
		}
		objectPath, matched := m.MatchURL(raw)
		if !matched {
			continue
		}
		ch.log.Infow("deleting stored image",
			"provider", p.Name(), "path", objectPath)
		return p.Remove(ctx, objectPath)
	}

	if len(ch.providers) == 0 {
		return errors.New("no storage providers configured")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	filename := segments[len(segments)-1]
	if filename == "" {
		return errors.New("image URL has no path")
	}
	fallbackPath := "uploads/" + filename
	ch.log.Infow("deleting stored image via fallback path",
		"provider", ch.providers[0].Name(), "path", fallbackPath)
	return ch.providers[0].Remove(ctx, fallbackPath)
}
