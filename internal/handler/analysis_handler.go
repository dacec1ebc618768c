package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wayli-app/wayli-sub001/internal/models"
	"github.com/wayli-app/wayli-sub001/internal/service"
	"github.com/wayli-app/wayli-sub001/pkg/response"
)

// AnalysisHandler handles HTTP requests for trip analysis
type AnalysisHandler struct {
	service *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// AnalyzeBatchRequest is the body of POST /api/v1/analysis. An empty
// batch is valid and yields all-zero statistics.
type AnalyzeBatchRequest struct {
	Points []models.TrackerPoint `json:"points"`
}

// AnalyzeBatch handles POST /api/v1/analysis
func (h *AnalysisHandler) AnalyzeBatch(c *gin.Context) {
	var req AnalyzeBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.service.AnalyzeBatch(req.Points)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, result)
}

// IngestBatchRequest is the body of POST /api/v1/points.
type IngestBatchRequest struct {
	Points []models.TrackerPoint `json:"points"`
}

// IngestBatch handles POST /api/v1/points. The points are stored under
// the authenticated user.
func (h *AnalysisHandler) IngestBatch(c *gin.Context) {
	var req IngestBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID := c.GetString("user_id")
	if err := h.service.IngestBatch(c.Request.Context(), userID, req.Points); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"stored": len(req.Points)})
}

// AnalyzeRange handles GET /api/v1/analysis
func (h *AnalysisHandler) AnalyzeRange(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		response.BadRequest(c, "user_id is required")
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		response.BadRequest(c, "start must be RFC 3339")
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		response.BadRequest(c, "end must be RFC 3339")
		return
	}

	result, err := h.service.AnalyzeRange(c.Request.Context(), userID, start, end)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}
