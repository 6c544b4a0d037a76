package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/llmgate/promptcheck/internal/utils"
	"github.com/llmgate/promptcheck/models"
)

const (
	checkRequestsMetric = "promptcheck_check_requests_total"
	checkLatencyMetric  = "promptcheck_check_latency_seconds"
)

type PromptImprover interface {
	Improve(ctx context.Context, content string) (string, error)
	Provider() string
}

type MetricsRecorder interface {
	RecordCounter(metricName string, labels map[string]string, value float64)
	RecordTimer(metricName string, labels map[string]string, duration time.Duration)
}

type CheckHandler struct {
	improver PromptImprover
	metrics  MetricsRecorder
}

func NewCheckHandler(improver PromptImprover, metrics MetricsRecorder) *CheckHandler {
	return &CheckHandler{
		improver: improver,
		metrics:  metrics,
	}
}

// ProcessCheck forwards the posted prompt to the model and returns its raw
// reply as {"response": ...}. Provider failures become a 500 carrying the
// provider's message.
func (h *CheckHandler) ProcessCheck(c *gin.Context) {
	var request models.CheckRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		log.Printf("[%s] invalid check payload: %v", requestIdFrom(c), err)
		utils.ProcessGenericBadRequest(c)
		return
	}

	start := time.Now()
	response, err := h.improver.Improve(c.Request.Context(), request.Content)
	h.record(start, err)
	if err != nil {
		log.Printf("[%s] check failed: %v", requestIdFrom(c), err)
		utils.ProcessDependencyError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CheckResponse{Response: response})
}

func (h *CheckHandler) record(start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	provider := h.improver.Provider()

	h.metrics.RecordCounter(checkRequestsMetric, map[string]string{"provider": provider, "status": status}, 1)
	h.metrics.RecordTimer(checkLatencyMetric, map[string]string{"provider": provider}, time.Since(start))
}
