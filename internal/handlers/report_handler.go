package handlers

import (
	"errors"
	"net/http"

	"dayjob-record/internal/report"

	"github.com/gin-gonic/gin"
)

// ReportRequest selects the tasks to report on
type ReportRequest struct {
	TaskIDs []uint `json:"taskIds"`
	// Locale overrides the configured report language ("en", "zh")
	Locale string `json:"locale"`
}

// GenerateReport handles POST /api/reports
// Responds with JSON by default, or the bare text with ?format=text.
func (h *Handler) GenerateReport(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := h.store.GetTasksByIDs(c.Request.Context(), req.TaskIDs)
	if err != nil {
		respondError(c, err, "", "Failed to fetch tasks")
		return
	}

	locale := req.Locale
	if locale == "" {
		locale = h.reportLocale
	}
	text, err := report.Generate(c.Request.Context(), tasks, h.store, report.LabelsFor(locale))
	if err != nil {
		if errors.Is(err, report.ErrNoTasksSelected) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please select at least one task for the report"})
			return
		}
		respondError(c, err, "", "Failed to generate report")
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, text)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"report":    text,
		"taskCount": len(tasks),
	})
}
