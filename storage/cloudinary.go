package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/phillip/charity-admin-go/models"
)

type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary(cloudName, apiKey, apiSecret string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config error: %w", err)
	}
	return &Cloudinary{cld: cld}, nil
}

func (c *Cloudinary) Name() string { return "cloudinary" }

func (c *Cloudinary) Upload(ctx context.Context, f File) (models.UploadResult, error) {
	folder := f.Folder
	if folder == "" {
		folder = "uploads"
	}

	resp, err := c.cld.Upload.Upload(ctx, bytes.NewReader(f.Data), uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("upload error: %w", err)
	}

	return models.UploadResult{
		URL:      resp.SecureURL,
		Path:     resp.PublicID,
		PublicID: resp.PublicID,
		Filename: f.Name,
		Size:     int64(len(f.Data)),
		Type:     f.ContentType,
		Provider: "cloudinary",
	}, nil
}

func (c *Cloudinary) Remove(ctx context.Context, objectPath string) error {
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: objectPath,
	})
	if err != nil {
		return fmt.Errorf("delete error: %w", err)
	}
	return nil
}

// MatchURL claims Cloudinary delivery URLs, returning the public ID.
func (c *Cloudinary) MatchURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || !strings.Contains(u.Host, "cloudinary.com") {
		return "", false
	}
	publicID, err := extractPublicID(u.Path)
	if err != nil {
		return "", false
	}
	return publicID, true
}

// extractPublicID pulls the public ID out of a delivery URL path.
// Example: /demo/image/upload/v1234567890/uploads/abc123.jpg -> uploads/abc123
func extractPublicID(urlPath string) (string, error) {
	parts := strings.Split(strings.Trim(urlPath, "/"), "/")

	uploadIdx := -1
	for i, part := range parts {
		if part == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx < 0 || uploadIdx == len(parts)-1 {
		return "", fmt.Errorf("invalid cloudinary URL format")
	}

	rest := parts[uploadIdx+1:]
	// Skip the version segment (v1234567890) if present.
	if len(rest) > 1 && strings.HasPrefix(rest[0], "v") {
		allDigits := true
		for _, r := range rest[0][1:] {
			if r < '0' || r > '9' {
				allDigits = false
				break
			}
		}
		if allDigits && len(rest[0]) > 1 {
			rest = rest[1:]
		}
	}

	joined := path.Join(rest...)
	return strings.TrimSuffix(joined, path.Ext(joined)), nil
}
