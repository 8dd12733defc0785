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

var teamSchema = validate.Schema{
	{Field: "name", Label: "Name", Required: true, Kind: validate.String},
	{Field: "role", Label: "Role", Required: true, Kind: validate.String},
	{Field: "description", Label: "Description", Required: true, Kind: validate.String},
	{Field: "imageUrl", Label: "Image URL", Required: true, Kind: validate.URL},
	{Field: "email", Label: "Email", Required: false, Kind: validate.String},
	{Field: "phone", Label: "Phone", Required: false, Kind: validate.String},
	{Field: "linkedinUrl", Label: "LinkedIn URL", Required: false, Kind: validate.URL},
	{Field: "twitterUrl", Label: "Twitter URL", Required: false, Kind: validate.URL},
	{Field: "facebookUrl", Label: "Facebook URL", Required: false, Kind: validate.URL},
	{Field: "tiktokUrl", Label: "TikTok URL", Required: false, Kind: validate.URL},
	{Field: "githubUrl", Label: "GitHub URL", Required: false, Kind: validate.URL},
}

var teamFields = []string{
	"name", "role", "description", "imageUrl", "email", "phone",
	"linkedinUrl", "twitterUrl", "facebookUrl", "tiktokUrl", "githubUrl",
}

// ---------------- LIST ----------------
func ListTeams(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		members, err := cfg.Repos.Teams.List(ctx)
		if err != nil {
			respondInternal(c, cfg, err, "Error fetching teams")
			return
		}

		if len(members) == 0 {
			c.JSON(http.StatusOK, []models.TeamMember{})
			return
		}

		latest := members[0]
		for _, m := range members {
			if m.UpdatedAt.After(latest.UpdatedAt) {
				latest = m
			}
		}
		etag := utils.GenerateETag(latest.ID, latest.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", latest.UpdatedAt.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, members)
	}
}

// ---------------- GET ----------------
func GetTeamMember(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		member, err := cfg.Repos.Teams.Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondNotFound(c, "Team member", id)
				return
			}
			respondInternal(c, cfg, err, "Error fetching team member")
			return
		}

		c.JSON(http.StatusOK, member)
	}
}

// ---------------- CREATE ----------------
func CreateTeamMember(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
			return
		}
		cfg.Logger.Debugw("incoming team data", "body", body)

		if ferr := teamSchema.Create(body); ferr != nil {
			c.JSON(http.StatusBadRequest, ferr)
			return
		}

		payload := models.CreateTeamMember{
			Name:        fieldString(body, "name"),
			Role:        fieldString(body, "role"),
			Description: fieldString(body, "description"),
			ImageURL:    fieldString(body, "imageUrl"),
			Email:       fieldString(body, "email"),
			Phone:       fieldString(body, "phone"),
			LinkedinURL: fieldString(body, "linkedinUrl"),
			TwitterURL:  fieldString(body, "twitterUrl"),
			FacebookURL: fieldString(body, "facebookUrl"),
			TiktokURL:   fieldString(body, "tiktokUrl"),
			GithubURL:   fieldString(body, "githubUrl"),
		}
		cfg.Logger.Debugw("sending team member to backend", "payload", payload)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		created, err := cfg.Repos.Teams.Create(ctx, payload)
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
func UpdateTeamMember(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
			return
		}

		if ferr := teamSchema.Update(body); ferr != nil {
			c.JSON(http.StatusBadRequest, ferr)
			return
		}

		fields := make(map[string]any)
		for _, field := range teamFields {
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

		updated, err := cfg.Repos.Teams.Update(ctx, id, fields)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondNotFound(c, "Team member", id)
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
func DeleteTeamMember(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := cfg.Repos.Teams.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondNotFound(c, "Team member", id)
				return
			}
			respondInternal(c, cfg, err, "Error deleting team member")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
