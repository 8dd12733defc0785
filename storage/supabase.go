package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/phillip/charity-admin-go/models"
)

// Supabase talks to the Supabase Storage REST API directly: one endpoint to
// upload an object, one to remove it, and a fixed public-URL layout.
type Supabase struct {
	baseURL    string
	serviceKey string
	bucket     string
	client     *http.Client
}

func NewSupabase(baseURL, serviceKey, bucket string) *Supabase {
	return &Supabase{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		client:     &http.Client{},
	}
}

func (s *Supabase) Name() string { return "supabase" }

func (s *Supabase) Upload(ctx context.Context, f File) (models.UploadResult, error) {
	folder := f.Folder
	if folder == "" {
		folder = "uploads"
	}
	ext := path.Ext(f.Name)
	key := fmt.Sprintf("%s/%d-%d%s", folder, time.Now().UnixMilli(), rand.Int63n(1e9), ext)

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(f.Data))
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", contentTypeForExt(ext))
	req.Header.Set("Cache-Control", "max-age=3600")
	req.Header.Set("x-upsert", "false")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("failed to reach supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return models.UploadResult{}, fmt.Errorf("supabase upload failed: status %d: %s", resp.StatusCode, body)
	}

	return models.UploadResult{
		URL:      s.publicURL(key),
		Path:     key,
		Filename: f.Name,
		Size:     int64(len(f.Data)),
		Type:     f.ContentType,
		Provider: "supabase",
	}, nil
}

func (s *Supabase) Remove(ctx context.Context, objectPath string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("supabase delete failed: status %d: %s", resp.StatusCode, body)
	}
	return nil
}

// MatchURL claims public object URLs of this bucket, returning the object
// path after the bucket segment.
func (s *Supabase) MatchURL(raw string) (string, bool) {
	marker := "/storage/v1/object/public/" + s.bucket + "/"
	idx := strings.Index(raw, marker)
	if idx < 0 {
		return "", false
	}
	objectPath := raw[idx+len(marker):]
	if objectPath == "" {
		return "", false
	}
	return objectPath, true
}

func (s *Supabase) publicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, key)
}

func contentTypeForExt(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
