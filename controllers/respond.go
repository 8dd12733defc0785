package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/phillip/charity-admin-go/config"
	"github.com/phillip/charity-admin-go/repository"
)

// relayUpstream forwards an upstream rejection verbatim (status + body).
// Returns false when the error is not an upstream rejection.
func relayUpstream(c *gin.Context, err error) bool {
	var ue *repository.UpstreamError
	if !errors.As(err, &ue) {
		return false
	}
	c.Data(ue.Status, "application/json; charset=utf-8", ue.Body)
	return true
}

func respondNotFound(c *gin.Context, label, id string) {
	c.JSON(http.StatusNotFound, gin.H{
		"message": fmt.Sprintf("%s with ID %s not found", label, id),
	})
}

// respondInternal emits a 500 with a fixed message. Development builds
// attach the underlying error; production never does.
func respondInternal(c *gin.Context, cfg *config.Config, err error, message string) {
	cfg.Logger.Errorw("request failed", "path", c.FullPath(), "error", err)
	body := gin.H{"message": message}
	if cfg.Development() && err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

func fieldString(body map[string]any, field string) string {
	s, _ := body[field].(string)
	return s
}
