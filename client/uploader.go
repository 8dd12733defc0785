// Package client is the Go SDK for the dashboard's upload endpoint. It
// mirrors what the browser-side uploader does: pre-flight validation before
// any network call, a progress-tracked transfer, and strictly sequential
// multi-file uploads that abort the batch on the first failure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/phillip/charity-admin-go/models"
)

type UploadProgress struct {
	Loaded     int64
	Total      int64
	Percentage int
}

type ProgressFunc func(UploadProgress)

type Options struct {
	MaxFileSize  int64    // bytes, default 10 MiB
	AllowedTypes []string // default image/jpeg,jpg,png,webp,gif
	Folder       string
	OnProgress   ProgressFunc
}

type Uploader struct {
	baseURL string
	client  *http.Client
	opts    Options
}

func NewUploader(baseURL string, opts Options) *Uploader {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = 10 << 20
	}
	if len(opts.AllowedTypes) == 0 {
		opts.AllowedTypes = []string{
			"image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif",
		}
	}
	return &Uploader{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		opts:    opts,
	}
}

// UploadFile validates and uploads a single file from disk. Validation
// failures are reported without touching the network.
func (u *Uploader) UploadFile(ctx context.Context, path string) (models.UploadResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.UploadResult{}, err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if err := u.validate(contentType, info.Size()); err != nil {
		return models.UploadResult{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.UploadResult{}, err
	}
	return u.upload(ctx, filepath.Base(path), contentType, data)
}

// UploadFiles uploads one file at a time and aborts the whole batch on the
// first failure, returning the results accumulated so far. Files already
// uploaded are not rolled back.
func (u *Uploader) UploadFiles(ctx context.Context, paths []string) ([]models.UploadResult, error) {
	results := make([]models.UploadResult, 0, len(paths))
	for _, p := range paths {
		res, err := u.UploadFile(ctx, p)
		if err != nil {
			return results, fmt.Errorf("failed to upload %s: %w", filepath.Base(p), err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (u *Uploader) validate(contentType string, size int64) error {
	allowed := false
	for _, t := range u.opts.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("invalid file type. Allowed types: %s",
			strings.Join(u.opts.AllowedTypes, ", "))
	}
	if size > u.opts.MaxFileSize {
		return fmt.Errorf("file too large. Maximum size: %.1fMB",
			float64(u.opts.MaxFileSize)/1024/1024)
	}
	return nil
}

func (u *Uploader) upload(ctx context.Context, filename, contentType string, data []byte) (models.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if u.opts.Folder != "" {
		if err := mw.WriteField("folder", u.opts.Folder); err != nil {
			return models.UploadResult{}, err
		}
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return models.UploadResult{}, err
	}
	if _, err := part.Write(data); err != nil {
		return models.UploadResult{}, err
	}
	if err := mw.Close(); err != nil {
		return models.UploadResult{}, err
	}

	body := io.Reader(&buf)
	total := int64(buf.Len())
	if u.opts.OnProgress != nil {
		body = &progressReader{r: body, total: total, report: u.opts.OnProgress}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+"/api/upload", body)
	if err != nil {
		return models.UploadResult{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.ContentLength = total

	resp, err := u.client.Do(req)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("network error during upload: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("network error during upload: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var serverErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &serverErr) == nil && serverErr.Message != "" {
			return models.UploadResult{}, fmt.Errorf("%s", serverErr.Message)
		}
		return models.UploadResult{}, fmt.Errorf("upload failed with status: %d", resp.StatusCode)
	}

	var result models.UploadResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return models.UploadResult{}, fmt.Errorf("invalid response format: %w", err)
	}
	return result, nil
}

// progressReader reports transfer progress as the HTTP client consumes the
// request body.
type progressReader struct {
	r      io.Reader
	loaded int64
	total  int64
	report ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.loaded += int64(n)
		pct := 0
		if p.total > 0 {
			pct = int(p.loaded * 100 / p.total)
		}
		p.report(UploadProgress{Loaded: p.loaded, Total: p.total, Percentage: pct})
	}
	return n, err
}
