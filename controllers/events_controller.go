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

var eventSchema = validate.Schema{
	{Field: "title", Label: "Title", Required: true, Kind: validate.String},
	{Field: "shortDescription", Label: "Short description", Required: true, Kind: validate.String},
	{Field: "category", Label: "Category", Required: true, Kind: validate.String},
	{Field: "description", Label: "Description", Required: true, Kind: validate.String},
	{Field: "imageUrl", Label: "Image URL", Required: true, Kind: validate.String},
	{Field: "date", Label: "Date", Required: true, Kind: validate.DateYMD},
	{Field: "time", Label: "Time", Required: true, Kind: validate.TimeHM},
	{Field: "location", Label: "Location", Required: false, Kind: validate.String},
}

// composeEndTime builds the RFC3339 end timestamp the backend expects from
// the calendar date and the HH:MM time the form posts.
func composeEndTime(date, tm string) (string, bool) {
	t, err := time.Parse("2006-01-02 15:04", date+" "+tm)
	if err != nil {
		return "", false
	}
	return t.UTC().Format(time.RFC3339), true
}

// ---------------- LIST ----------------
func ListEvents(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		events, err := cfg.Repos.Events.List(ctx)
		if err != nil {
			respondInternal(c, cfg, err, "Error fetching events")
			return
		}

		if len(events) == 0 {
			c.JSON(http.StatusOK, []models.Event{})
			return
		}

		// --- ETag from the most recently updated event ---
		latest := events[0]
		for _, ev := range events {
			if ev.UpdatedAt.After(latest.UpdatedAt) {
				latest = ev
			}
		}
		etag := utils.GenerateETag(latest.ID, latest.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", latest.UpdatedAt.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, events)
	}
}

// ---------------- GET ----------------
func GetEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		event, err := cfg.Repos.Events.Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondNotFound(c, "Event", id)
				return
			}
			respondInternal(c, cfg, err, "Error fetching event")
			return
		}

		etag := utils.GenerateETag(event.ID, event.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)

		c.JSON(http.StatusOK, event)
	}
}

// ---------------- CREATE ----------------
func CreateEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
			return
		}
		cfg.Logger.Debugw("incoming event data", "body", body)

		if ferr := eventSchema.Create(body); ferr != nil {
			c.JSON(http.StatusBadRequest, ferr)
			return
		}

		payload := models.CreateEvent{
			Title:            fieldString(body, "title"),
			ShortDescription: fieldString(body, "shortDescription"),
			Category:         fieldString(body, "category"),
			Description:      fieldString(body, "description"),
			ImageURL:         fieldString(body, "imageUrl"),
			Date:             fieldString(body, "date"),
			Time:             fieldString(body, "time"),
			Location:         fieldString(body, "location"),
		}
		if endTime, ok := composeEndTime(payload.Date, payload.Time); ok {
			payload.EndTime = endTime
		}
		cfg.Logger.Debugw("sending event to backend", "payload", payload)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		created, err := cfg.Repos.Events.Create(ctx, payload)
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
func UpdateEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
			return
		}
		cfg.Logger.Debugw("updating event data", "id", id, "body", body)

		if ferr := eventSchema.Update(body); ferr != nil {
			c.JSON(http.StatusBadRequest, ferr)
			return
		}

		fields := make(map[string]any)
		for _, field := range []string{
			"title", "shortDescription", "category", "description",
			"imageUrl", "date", "time", "location",
		} {
			if v, ok := body[field]; ok {
				fields[field] = v
			}
		}
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "no fields to update"})
			return
		}

		// Recompose the end timestamp only when the payload carries both
		// halves; a lone date or time change leaves it untouched.
		date, hasDate := fields["date"].(string)
		tm, hasTime := fields["time"].(string)
		if hasDate && hasTime {
			if endTime, ok := composeEndTime(date, tm); ok {
				fields["endTime"] = endTime
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		updated, err := cfg.Repos.Events.Update(ctx, id, fields)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondNotFound(c, "Event", id)
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
func DeleteEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := cfg.Repos.Events.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondNotFound(c, "Event", id)
				return
			}
			respondInternal(c, cfg, err, "Error deleting event")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
