package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	config "github.com/phillip/charity-admin-go/config"
	models "github.com/phillip/charity-admin-go/models"
	"github.com/phillip/charity-admin-go/repository"
	utils "github.com/phillip/charity-admin-go/utils"
	"github.com/phillip/charity-admin-go/validate"
)

var causeSchema = validate.Schema{
	{Field: "title", Label: "Title", Required: true, Kind: validate.String},
	{Field: "goal", Label: "Goal", Required: true, Kind: validate.Number},
	{Field: "category", Label: "Category", Required: true, Kind: validate.String},
	{Field: "description", Label: "Description", Required: true, Kind: validate.String},
	{Field: "imageUrl", Label: "Image URL", Required: true, Kind: validate.String},
}

// normalizeCauseImages adapts the legacy payload revision that carried an
// ordered images[] list instead of a single imageUrl: relative entries are
// absolutized against the public base URL and the first one is promoted.
func normalizeCauseImages(body map[string]any, baseURL string) {
	if s, ok := body["imageUrl"].(string); ok && s != "" {
		return
	}
	list, ok := body["images"].([]any)
	if !ok || len(list) == 0 {
		return
	}
	urls := make([]string, 0, len(list))
	for _, item := range list {
		var u string
		switch v := item.(type) {
		case string:
			u = v
		case map[string]any:
			u, _ = v["url"].(string)
		}
		if u == "" {
			continue
		}
		if strings.HasPrefix(u, "/") && baseURL != "" {
			u = baseURL + u
		}
		urls = append(urls, u)
	}
	if len(urls) > 0 {
		body["imageUrl"] = urls[0]
	}
}

// ---------------- LIST ----------------
func ListCauses(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		causes, err := cfg.Repos.Causes.List(ctx)
		if err != nil {
			respondInternal(c, cfg, err, "Error fetching causes")
			return
		}

		if len(causes) == 0 {
			c.JSON(http.StatusOK, []models.Cause{})
			return
		}

		// --- ETag from the most recently updated cause ---
		latest := causes[0]
		for _, cause := range causes {
			if cause.UpdatedAt.After(latest.UpdatedAt) {
				latest = cause
			}
		}
		etag := utils.GenerateETag(latest.ID, latest.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", latest.UpdatedAt.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, causes)
	}
}

// ---------------- GET ----------------
func GetCause(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cause, err := cfg.Repos.Causes.Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondNotFound(c, "Cause", id)
				return
			}
			respondInternal(c, cfg, err, "Error fetching cause")
			return
		}

		etag := utils.GenerateETag(cause.ID, cause.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)

		c.JSON(http.StatusOK, cause)
	}
}

// ---------------- CREATE ----------------
func CreateCause(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
			return
		}
		cfg.Logger.Debugw("incoming cause data", "body", body)

		normalizeCauseImages(body, cfg.PublicBaseURL)

		if ferr := causeSchema.Create(body); ferr != nil {
			c.JSON(http.StatusBadRequest, ferr)
			return
		}

		goal, _ := validate.NumberValue(body["goal"])
		payload := models.CreateCause{
			Title:       fieldString(body, "title"),
			Goal:        goal,
			Category:    fieldString(body, "category"),
			Description: fieldString(body, "description"),
			ImageURL:    fieldString(body, "imageUrl"),
		}
		cfg.Logger.Debugw("sending cause to backend", "payload", payload)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		created, err := cfg.Repos.Causes.Create(ctx, payload)
		if err != nil {
			if relayUpstream(c, err) {
				return
			}
			respondInternal(c, cfg, err, "Internal server error")
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// ---------------- UPDATE ----------------
func UpdateCause(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
			return
		}
		cfg.Logger.Debugw("updating cause data", "id", id, "body", body)

		normalizeCauseImages(body, cfg.PublicBaseURL)

		if ferr := causeSchema.Update(body); ferr != nil {
			c.JSON(http.StatusBadRequest, ferr)
			return
		}

		fields := make(map[string]any)
		for _, field := range []string{"title", "category", "description", "imageUrl"} {
			if v, ok := body[field]; ok {
				fields[field] = v
			}
		}
		if v, ok := body["goal"]; ok {
			goal, _ := validate.NumberValue(v)
			fields["goal"] = goal
		}
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "no fields to update"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		updated, err := cfg.Repos.Causes.Update(ctx, id, fields)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondNotFound(c, "Cause", id)
				return
			}
			if relayUpstream(c, err) {
				return
			}
			respondInternal(c, cfg, err, "Internal server error")
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// ---------------- DELETE ----------------
func DeleteCause(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := cfg.Repos.Causes.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondNotFound(c, "Cause", id)
				return
			}
			respondInternal(c, cfg, err, "Error deleting cause")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
