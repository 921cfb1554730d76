package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/royalguard/activity-api/internal/adapter/middleware"
	"github.com/royalguard/activity-api/internal/adapter/presenter"
	"github.com/royalguard/activity-api/internal/domain/repository"
	"github.com/royalguard/activity-api/internal/domain/service"
	"github.com/royalguard/activity-api/internal/usecase"
)

// LogHandler serves the log ingestion endpoint.
type LogHandler struct {
	ingestLogUC *usecase.IngestLogUseCase
	gate        *service.CredentialGate
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(ingestLogUC *usecase.IngestLogUseCase, gate *service.CredentialGate) *LogHandler {
	return &LogHandler{
		ingestLogUC: ingestLogUC,
		gate:        gate,
	}
}

type logEventRequest struct {
	LogType   string         `json:"log_type"`
	LogData   map[string]any `json:"log_data"`
	Timestamp any            `json:"timestamp"`
	APIKey    string         `json:"api_key"`
}

// LogEvent is the POST /log_event handler.
func (h *LogHandler) LogEvent(c *gin.Context) {
	// Bind leniently: the credential check reads the body key and runs
	// before any payload validation on this endpoint.
	var req logEventRequest
	_ = c.ShouldBindJSON(&req)

	if !h.gate.Authorize(c.GetHeader(middleware.APIKeyHeader), req.APIKey) {
		c.JSON(http.StatusUnauthorized, presenter.LogError{Error: "Invalid API key"})
		return
	}

	if req.LogType == "" || len(req.LogData) == 0 {
		c.JSON(http.StatusBadRequest, presenter.LogError{Error: "Missing log_type or log_data"})
		return
	}

	input := usecase.IngestLogInput{
		LogType:   req.LogType,
		LogData:   req.LogData,
		Timestamp: req.Timestamp,
	}
	output, err := h.ingestLogUC.Execute(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, presenter.LogError{Error: msgStoreUnavailable})
			return
		}
		// This endpoint keeps unexpected failures generic.
		c.JSON(http.StatusInternalServerError, presenter.LogError{Error: "Internal server error"})
		return
	}

	message := "Log stored for processing"
	if output.Duplicate {
		message = "Duplicate log ignored"
	}
	c.JSON(http.StatusOK, presenter.LogResponse{Success: true, Message: message})
}

// RegisterRoutes registers the log route. The handler checks the
// credential itself because this endpoint accepts it in the body too.
func (h *LogHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/log_event", h.LogEvent)
}
