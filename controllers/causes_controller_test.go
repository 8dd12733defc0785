package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/phillip/charity-admin-go/config"
	models "github.com/phillip/charity-admin-go/models"
)

func causesRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/causes", ListCauses(cfg))
	r.POST("/api/causes", CreateCause(cfg))
	r.GET("/api/causes/:id", GetCause(cfg))
	r.PATCH("/api/causes/:id", UpdateCause(cfg))
	r.DELETE("/api/causes/:id", DeleteCause(cfg))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCause(t *testing.T) {
	t.Run("valid payload returns 201 with assigned id", func(t *testing.T) {
		store := newMemStore()
		r := causesRouter(testConfig(store))

		w := doJSON(r, http.MethodPost, "/api/causes",
			`{"title":"Clean Water","goal":"1000","category":"Health","description":"...","imageUrl":"https://x/y.png"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var created models.Cause
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Clean Water", created.Title)
		assert.Equal(t, 1000.0, created.Goal)
	})

	t.Run("empty title returns 400 and backend sees nothing", func(t *testing.T) {
		store := newMemStore()
		r := causesRouter(testConfig(store))

		w := doJSON(r, http.MethodPost, "/api/causes",
			`{"title":"","goal":"1000","category":"Health","description":"...","imageUrl":"https://x/y.png"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t,
			`{"message":"Title is required and must be a string","field":"title"}`,
			w.Body.String())
		assert.Zero(t, store.causeCreates)
	})

	t.Run("missing field returns 400 naming the field", func(t *testing.T) {
		store := newMemStore()
		r := causesRouter(testConfig(store))

		w := doJSON(r, http.MethodPost, "/api/causes",
			`{"title":"x","goal":"1000","description":"...","imageUrl":"https://x/y.png"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var ferr struct {
			Field string `json:"field"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ferr))
		assert.Equal(t, "category", ferr.Field)
		assert.Zero(t, store.causeCreates)
	})

	t.Run("non-numeric goal is not forwarded", func(t *testing.T) {
		store := newMemStore()
		r := causesRouter(testConfig(store))

		w := doJSON(r, http.MethodPost, "/api/causes",
			`{"title":"x","goal":"plenty","category":"Health","description":"...","imageUrl":"https://x/y.png"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, store.causeCreates)
	})

	t.Run("negative goal is not forwarded", func(t *testing.T) {
		store := newMemStore()
		r := causesRouter(testConfig(store))

		w := doJSON(r, http.MethodPost, "/api/causes",
			`{"title":"x","goal":-10,"category":"Health","description":"...","imageUrl":"https://x/y.png"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, store.causeCreates)
	})

	t.Run("legacy images list is adapted to imageUrl", func(t *testing.T) {
		store := newMemStore()
		r := causesRouter(testConfig(store))

		w := doJSON(r, http.MethodPost, "/api/causes",
			`{"title":"x","goal":"10","category":"Health","description":"...","images":["/uploads/a.png"]}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var created models.Cause
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "https://dashboard.example.org/uploads/a.png", created.ImageURL)
	})
}

func TestGetCause(t *testing.T) {
	store := newMemStore()
	cfg := testConfig(store)
	r := causesRouter(cfg)

	t.Run("round-trips a created cause", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/causes",
			`{"title":"Clean Water","goal":"1000","category":"Health","description":"...","imageUrl":"https://x/y.png"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		var created models.Cause
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		w = doJSON(r, http.MethodGet, "/api/causes/"+created.ID, "")
		require.Equal(t, http.StatusOK, w.Code)
		var fetched models.Cause
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
		assert.Equal(t, created.Title, fetched.Title)
		assert.Equal(t, created.Goal, fetched.Goal)
		assert.Equal(t, created.ImageURL, fetched.ImageURL)
	})

	t.Run("unknown id yields 404 naming the id", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/causes/abc123", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Cause with ID abc123 not found"}`, w.Body.String())
	})

	t.Run("matching If-None-Match yields 304", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/causes",
			`{"title":"School","goal":"500","category":"Education","description":"...","imageUrl":"https://x/z.png"}`)
		var created models.Cause
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		w = doJSON(r, http.MethodGet, "/api/causes/"+created.ID, "")
		etag := w.Header().Get("ETag")
		require.NotEmpty(t, etag)

		req := httptest.NewRequest(http.MethodGet, "/api/causes/"+created.ID, nil)
		req.Header.Set("If-None-Match", etag)
		w2 := httptest.NewRecorder()
		r.ServeHTTP(w2, req)
		assert.Equal(t, http.StatusNotModified, w2.Code)
	})
}

func TestDeleteCause(t *testing.T) {
	store := newMemStore()
	r := causesRouter(testConfig(store))

	w := doJSON(r, http.MethodPost, "/api/causes",
		`{"title":"x","goal":"10","category":"Health","description":"...","imageUrl":"https://x/y.png"}`)
	var created models.Cause
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	t.Run("first delete returns 204 with empty body", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/api/causes/"+created.ID, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("second delete of the same id returns 404", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/api/causes/"+created.ID, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateCause(t *testing.T) {
	store := newMemStore()
	r := causesRouter(testConfig(store))

	w := doJSON(r, http.MethodPost, "/api/causes",
		`{"title":"Old","goal":"10","category":"Health","description":"...","imageUrl":"https://x/y.png"}`)
	var created models.Cause
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	t.Run("partial patch updates only sent fields", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/causes/"+created.ID, `{"title":"New","goal":"25"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var updated models.Cause
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "New", updated.Title)
		assert.Equal(t, 25.0, updated.Goal)
		assert.Equal(t, created.ImageURL, updated.ImageURL)
	})

	t.Run("patch on unknown id yields 404", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/causes/nope", `{"title":"New"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/causes/"+created.ID, `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListCauses(t *testing.T) {
	store := newMemStore()
	r := causesRouter(testConfig(store))

	t.Run("empty store yields empty array", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/causes", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("list carries ETag and Last-Modified", func(t *testing.T) {
		doJSON(r, http.MethodPost, "/api/causes",
			`{"title":"x","goal":"10","category":"Health","description":"...","imageUrl":"https://x/y.png"}`)

		w := doJSON(r, http.MethodGet, "/api/causes", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("ETag"))
		assert.NotEmpty(t, w.Header().Get("Last-Modified"))
	})
}
