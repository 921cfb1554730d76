package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/royalguard/activity-api/internal/adapter/middleware"
	"github.com/royalguard/activity-api/internal/adapter/presenter"
	"github.com/royalguard/activity-api/internal/domain/service"
	"github.com/royalguard/activity-api/internal/usecase"
)

// ActivityHandler serves the activity reporting endpoint.
type ActivityHandler struct {
	recordActivityUC *usecase.RecordActivityUseCase
	gate             *service.CredentialGate
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(recordActivityUC *usecase.RecordActivityUseCase, gate *service.CredentialGate) *ActivityHandler {
	return &ActivityHandler{
		recordActivityUC: recordActivityUC,
		gate:             gate,
	}
}

// Pointer fields distinguish absent from zero; a fractional number
// fails the int64 bind and is rejected as invalid.
type updateActivityRequest struct {
	UserID          *int64 `json:"user_id"`
	ActivityMinutes *int64 `json:"activity_minutes"`
	APIKey          string `json:"api_key"`
}

// UpdateActivity is the POST /update_activity handler.
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	var req updateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == nil || req.ActivityMinutes == nil {
		c.JSON(http.StatusBadRequest, presenter.Error(msgInvalidData))
		return
	}

	// Payload validation precedes the credential check on this
	// endpoint; /log_event does the reverse.
	if !h.gate.Authorize(c.GetHeader(middleware.APIKeyHeader), req.APIKey) {
		c.JSON(http.StatusUnauthorized, presenter.Error(msgInvalidAPIKey))
		return
	}

	input := usecase.RecordActivityInput{
		UserID:  *req.UserID,
		Minutes: *req.ActivityMinutes,
	}
	if err := h.recordActivityUC.Execute(c.Request.Context(), input); err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, presenter.Success())
}

// RegisterRoutes registers the activity route. The handler checks the
// credential itself because this endpoint accepts it in the body too.
func (h *ActivityHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/update_activity", h.UpdateActivity)
}
