package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phillip/charity-admin-go/models"
)

// PublicPrefix is the URL prefix local files are served under.
const PublicPrefix = "/uploads"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Local writes files to the public uploads directory. Concurrent requests
// need no locking because every upload gets a distinct generated name.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create uploads directory: %w", err)
	}
	return &Local{dir: dir}, nil
}

func (l *Local) Name() string { return "local" }

func (l *Local) Upload(_ context.Context, f File) (models.UploadResult, error) {
	filename := fmt.Sprintf("%d-%s-%s",
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		unsafeChars.ReplaceAllString(f.Name, "_"))

	if err := os.WriteFile(filepath.Join(l.dir, filename), f.Data, 0o644); err != nil {
		return models.UploadResult{}, fmt.Errorf("could not write file: %w", err)
	}

	return models.UploadResult{
		URL:      PublicPrefix + "/" + filename,
		Filename: filename,
		Size:     int64(len(f.Data)),
		Type:     f.ContentType,
		Provider: "local",
	}, nil
}

func (l *Local) Remove(_ context.Context, objectPath string) error {
	// Object paths may arrive as "uploads/name" from the heuristic URL
	// reconstruction; only the basename is meaningful here. Anything that
	// still points outside the uploads dir is rejected.
	name := filepath.Base(strings.TrimPrefix(objectPath, "uploads/"))
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("invalid object path %q", objectPath)
	}
	if err := os.Remove(filepath.Join(l.dir, name)); err != nil {
		return fmt.Errorf("could not remove file: %w", err)
	}
	return nil
}

// MatchURL claims relative URLs under /uploads/.
func (l *Local) MatchURL(raw string) (string, bool) {
	idx := strings.Index(raw, PublicPrefix+"/")
	if idx < 0 {
		return "", false
	}
	name := raw[idx+len(PublicPrefix)+1:]
	if name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}

// Path resolves an object name to its location on disk. Used by tests and
// the static file route configuration.
func (l *Local) Path(filename string) string {
	return filepath.Join(l.dir, filepath.Base(filename))
}
