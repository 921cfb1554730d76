package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/royalguard/activity-api/internal/adapter/presenter"
	"github.com/royalguard/activity-api/internal/domain/repository"
)

// Client-facing messages shared across endpoints. They are part of the
// wire contract with the game client and must not change.
const (
	msgInvalidData      = "Invalid data"
	msgInvalidUserID    = "Missing or invalid user_id"
	msgInvalidAPIKey    = "Invalid or missing API key"
	msgStoreUnavailable = "Database not available"
)

// writeStoreError translates storage failures for the endpoints using
// the status/message envelope. Unexpected errors surface their message
// as-is: every caller here already holds the shared secret.
func writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrUnavailable) {
		c.JSON(http.StatusServiceUnavailable, presenter.Error(msgStoreUnavailable))
		return
	}
	c.JSON(http.StatusInternalServerError, presenter.Error(err.Error()))
}
