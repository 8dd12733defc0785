package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupabaseUpload(t *testing.T) {
	var (
		gotPath string
		gotAuth string
		gotType string
		gotBody []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"Key":"ok"}`))
	}))
	defer srv.Close()

	sup := NewSupabase(srv.URL, "service-key", "dashboard-uploads")

	res, err := sup.Upload(context.Background(), File{
		Name:        "photo.png",
		ContentType: "image/png",
		Folder:      "uploads",
		Data:        []byte("png-bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, "supabase", res.Provider)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, "png-bytes", string(gotBody))

	assert.True(t, strings.HasPrefix(gotPath, "/storage/v1/object/dashboard-uploads/uploads/"))
	assert.True(t, strings.HasSuffix(gotPath, ".png"))

	wantPrefix := srv.URL + "/storage/v1/object/public/dashboard-uploads/uploads/"
	assert.True(t, strings.HasPrefix(res.URL, wantPrefix))
	assert.Equal(t, "photo.png", res.Filename)
	assert.NotEmpty(t, res.Path)
}

func TestSupabaseUploadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"bad key"}`))
	}))
	defer srv.Close()

	sup := NewSupabase(srv.URL, "wrong", "dashboard-uploads")
	_, err := sup.Upload(context.Background(), File{Name: "x.png", Data: []byte("a")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestSupabaseRemove(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	sup := NewSupabase(srv.URL, "service-key", "dashboard-uploads")
	require.NoError(t, sup.Remove(context.Background(), "uploads/123-456.png"))

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/storage/v1/object/dashboard-uploads/uploads/123-456.png", gotPath)
}

func TestSupabaseMatchURL(t *testing.T) {
	sup := NewSupabase("https://proj.supabase.co", "key", "dashboard-uploads")

	objectPath, ok := sup.MatchURL(
		"https://proj.supabase.co/storage/v1/object/public/dashboard-uploads/uploads/123-456.png")
	require.True(t, ok)
	assert.Equal(t, "uploads/123-456.png", objectPath)

	_, ok = sup.MatchURL("https://proj.supabase.co/storage/v1/object/public/other-bucket/x.png")
	assert.False(t, ok)

	_, ok = sup.MatchURL("/uploads/123.png")
	assert.False(t, ok)
}

func TestContentTypeForExt(t *testing.T) {
	assert.Equal(t, "image/jpeg", contentTypeForExt(".jpg"))
	assert.Equal(t, "image/jpeg", contentTypeForExt(".JPEG"))
	assert.Equal(t, "image/webp", contentTypeForExt(".webp"))
	assert.Equal(t, "application/octet-stream", contentTypeForExt(".bin"))
	assert.Equal(t, "application/octet-stream", contentTypeForExt(""))
}
