package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	config "github.com/phillip/charity-admin-go/config"
	models "github.com/phillip/charity-admin-go/models"
	"github.com/phillip/charity-admin-go/repository"
	utils "github.com/phillip/charity-admin-go/utils"
	"github.com/phillip/charity-admin-go/validate"
)

var gallerySchema = validate.Schema{
	{Field: "src", Label: "Src", Required: true, Kind: validate.String},
	{Field: "alt", Label: "Alt", Required: true, Kind: validate.String},
	{Field: "title", Label: "Title", Required: true, Kind: validate.String},
	{Field: "description", Label: "Description", Required: true, Kind: validate.String},
}

// ---------------- LIST ----------------
func ListGallery(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		items, err := cfg.Repos.Gallery.List(ctx)
		if err != nil {
			respondInternal(c, cfg, err, "Error fetching gallery")
			return
		}

		if len(items) == 0 {
			c.JSON(http.StatusOK, []models.GalleryItem{})
			return
		}

		latest := items[0]
		for _, item := range items {
			if item.UpdatedAt.After(latest.UpdatedAt) {
				latest = item
			}
		}
		etag := utils.GenerateETag(latest.ID, latest.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", latest.UpdatedAt.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, items)
	}
}

// ---------------- GET ----------------
func GetGalleryItem(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		item, err := cfg.Repos.Gallery.Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondNotFound(c, "Gallery item", id)
				return
			}
			respondInternal(c, cfg, err, "Error fetching gallery item")
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// ---------------- CREATE ----------------
func CreateGalleryItem(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
			return
		}
		cfg.Logger.Debugw("incoming gallery data", "body", body)

		if ferr := gallerySchema.Create(body); ferr != nil {
			c.JSON(http.StatusBadRequest, ferr)
			return
		}

		payload := models.CreateGalleryItem{
			Src:         fieldString(body, "src"),
			Alt:         fieldString(body, "alt"),
			Title:       fieldString(body, "title"),
			Description: fieldString(body, "description"),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		created, err := cfg.Repos.Gallery.Create(ctx, payload)
		if err != nil {
			if relayUpstream(c, err) {
				return
			}
			respondInternal(c, cfg, err, "Error creating gallery item")
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// ---------------- UPDATE ----------------
func UpdateGalleryItem(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
			return
		}

		if ferr := gallerySchema.Update(body); ferr != nil {
			c.JSON(http.StatusBadRequest, ferr)
			return
		}

		fields := make(map[string]any)
		for _, field := range []string{"src", "alt", "title", "description"} {
			if v, ok := body[field]; ok {
				fields[field] = v
			}
		}
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "no fields to update"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		updated, err := cfg.Repos.Gallery.Update(ctx, id, fields)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondNotFound(c, "Gallery item", id)
				return
			}
			if relayUpstream(c, err) {
				return
			}
			respondInternal(c, cfg, err, "Error updating gallery item")
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// ---------------- DELETE ----------------
func DeleteGalleryItem(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := cfg.Repos.Gallery.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondNotFound(c, "Gallery item", id)
				return
			}
			respondInternal(c, cfg, err, "Error deleting gallery item")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
