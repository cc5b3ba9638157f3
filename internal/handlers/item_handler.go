package handlers

import (
	"net/http"

	"dayjob-record/internal/models"
	"dayjob-record/internal/realtime"

	"github.com/gin-gonic/gin"
)

// CreateItemRequest represents the request payload for adding an item to a task
type CreateItemRequest struct {
	Content      string `json:"content"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	CompleteDate string `json:"completeDate"`
	IsReportItem *bool  `json:"isReportItem"`
}

// UpdateItemRequest represents the request payload for updating an item
type UpdateItemRequest struct {
	Content      *string `json:"content"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	CompleteDate *string `json:"completeDate"`
	IsReportItem *bool   `json:"isReportItem"`
}

// GetTaskItems handles GET /api/tasks/:id/items
func (h *Handler) GetTaskItems(c *gin.Context) {
	taskID, ok := parseID(c, "task")
	if !ok {
		return
	}
	if _, err := h.store.GetTask(c.Request.Context(), taskID); err != nil {
		respondError(c, err, "Task not found", "Failed to fetch task")
		return
	}

	items, err := h.store.ListItems(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, "Task not found", "Failed to fetch task items")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// CreateTaskItem handles POST /api/tasks/:id/items
// Items are included in reports unless isReportItem is false.
func (h *Handler) CreateTaskItem(c *gin.Context) {
	taskID, ok := parseID(c, "task")
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.TaskItem{
		TaskID:       taskID,
		Content:      req.Content,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		CompleteDate: req.CompleteDate,
		IsReportItem: true,
	}
	if req.IsReportItem != nil {
		item.IsReportItem = *req.IsReportItem
	}

	if err := h.store.CreateItem(c.Request.Context(), &item); err != nil {
		respondError(c, err, "Task not found", "Failed to create task item")
		return
	}

	h.publish(c, realtime.ItemCreated, item.TaskID, item.ID)
	c.JSON(http.StatusCreated, item)
}

// UpdateTaskItem handles PUT /api/items/:id
func (h *Handler) UpdateTaskItem(c *gin.Context) {
	id, ok := parseID(c, "item")
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.store.GetItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Task item not found", "Failed to fetch task item")
		return
	}

	if req.Content != nil {
		item.Content = *req.Content
	}
	if req.StartDate != nil {
		item.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		item.EndDate = *req.EndDate
	}
	if req.CompleteDate != nil {
		item.CompleteDate = *req.CompleteDate
	}
	if req.IsReportItem != nil {
		item.IsReportItem = *req.IsReportItem
	}

	if err := h.store.UpdateItem(c.Request.Context(), item); err != nil {
		respondError(c, err, "Task item not found", "Failed to update task item")
		return
	}

	h.publish(c, realtime.ItemUpdated, item.TaskID, item.ID)
	c.JSON(http.StatusOK, item)
}

// DeleteTaskItem handles DELETE /api/items/:id
func (h *Handler) DeleteTaskItem(c *gin.Context) {
	id, ok := parseID(c, "item")
	if !ok {
		return
	}

	item, err := h.store.GetItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Task item not found", "Failed to fetch task item")
		return
	}
	if err := h.store.DeleteItem(c.Request.Context(), id); err != nil {
		respondError(c, err, "Task item not found", "Failed to delete task item")
		return
	}

	h.publish(c, realtime.ItemDeleted, item.TaskID, id)
	c.JSON(http.StatusOK, gin.H{
		"message": "Task item deleted successfully",
		"id":      id,
	})
}
