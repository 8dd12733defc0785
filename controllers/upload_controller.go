package controllers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	config "github.com/phillip/charity-admin-go/config"
	"github.com/phillip/charity-admin-go/storage"
)

// ---------------- UPLOAD ----------------
func UploadImage(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
			return
		}

		// Server-side re-validation; the client's pre-flight check is
		// never trusted. Nothing is written on a violation.
		mimeType := fileHeader.Header.Get("Content-Type")
		if !cfg.AllowedType(mimeType) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid file type. Only JPEG, PNG, WebP, and GIF are allowed.",
			})
			return
		}
		if fileHeader.Size > cfg.UploadMaxSize {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("File too large. Maximum size is %dMB.", cfg.UploadMaxSize>>20),
			})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respondInternal(c, cfg, err, "Error uploading file")
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			respondInternal(c, cfg, err, "Error uploading file")
			return
		}

		folder := c.PostForm("folder")
		if folder == "" {
			folder = "uploads"
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
		defer cancel()

		result, attempts, err := cfg.Storage.Upload(ctx, storage.File{
			Name:        fileHeader.Filename,
			ContentType: mimeType,
			Folder:      folder,
			Data:        data,
		})
		if err != nil {
			respondInternal(c, cfg, err, "Error uploading file")
			return
		}
		if len(attempts) > 1 {
			cfg.Logger.Infow("upload served by fallback provider",
				"provider", result.Provider, "attempts", len(attempts))
		}

		c.JSON(http.StatusOK, result)
	}
}

// ---------------- DELETE IMAGE ----------------
func DeleteImage(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		imageURL := c.Query("imageUrl")
		if imageURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image URL is required"})
			return
		}
		cfg.Logger.Infow("deleting image", "url", imageURL)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		if err := cfg.Storage.RemoveByURL(ctx, imageURL); err != nil {
			cfg.Logger.Errorw("image deletion failed", "url", imageURL, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to delete image from storage",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
