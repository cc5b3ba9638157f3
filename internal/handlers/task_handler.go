package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"dayjob-record/internal/models"
	"dayjob-record/internal/realtime"
	"dayjob-record/internal/store"

	"github.com/gin-gonic/gin"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Name     string           `json:"name"`
	TaskType *models.TaskType `json:"taskType"`
	Status   string           `json:"status"`
	Priority int              `json:"priority"`
	IsShow   *bool            `json:"isShow"`
	Project  string           `json:"project"`
}

// UpdateTaskRequest represents the request payload for updating a task
type UpdateTaskRequest struct {
	Name     *string          `json:"name"`
	TaskType *models.TaskType `json:"taskType"`
	Status   *string          `json:"status"`
	Priority *int             `json:"priority"`
	IsShow   *bool            `json:"isShow"`
	Project  *string          `json:"project"`
}

// VisibilityRequest toggles whether a task shows in the default list
type VisibilityRequest struct {
	IsShow *bool `json:"isShow" binding:"required"`
}

// TaskDetail is a task together with its items
type TaskDetail struct {
	models.Task
	Items []models.TaskItem `json:"items"`
}

// GetTasks handles GET /api/tasks
// Query params: all (default true) includes hidden tasks, type filters by task type, project by project label.
func (h *Handler) GetTasks(c *gin.Context) {
	filter := store.TaskFilter{ShowAll: true}
	if v := c.Query("all"); v != "" {
		all, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid value for all"})
			return
		}
		filter.ShowAll = all
	}
	if v := c.Query("type"); v != "" {
		taskType, err := models.ParseTaskType(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid taskType"})
			return
		}
		filter.Type = &taskType
	}
	filter.Project = strings.TrimSpace(c.Query("project"))

	tasks, err := h.store.ListTasks(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "", "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks),
	})
}

// GetTaskByID handles GET /api/tasks/:id
func (h *Handler) GetTaskByID(c *gin.Context) {
	id, ok := parseID(c, "task")
	if !ok {
		return
	}

	task, err := h.store.GetTask(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Task not found", "Failed to fetch task")
		return
	}
	items, err := h.store.ListItems(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Task not found", "Failed to fetch task items")
		return
	}

	c.JSON(http.StatusOK, TaskDetail{Task: *task, Items: items})
}

// CreateTask handles POST /api/tasks
func (h *Handler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := models.Task{
		Name:     req.Name,
		Type:     models.TypeDevelopment,
		Status:   req.Status,
		Priority: req.Priority,
		IsShow:   true,
		Project:  req.Project,
	}
	if req.TaskType != nil {
		task.Type = *req.TaskType
	}
	if req.IsShow != nil {
		task.IsShow = *req.IsShow
	}

	if err := h.store.CreateTask(c.Request.Context(), &task); err != nil {
		respondError(c, err, "", "Failed to create task")
		return
	}

	h.publish(c, realtime.TaskCreated, task.ID, 0)
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /api/tasks/:id
// Only fields present in the body are changed.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c, "task")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.store.GetTask(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Task not found", "Failed to fetch task")
		return
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.TaskType != nil {
		task.Type = *req.TaskType
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.IsShow != nil {
		task.IsShow = *req.IsShow
	}
	if req.Project != nil {
		task.Project = *req.Project
	}

	if err := h.store.UpdateTask(c.Request.Context(), task); err != nil {
		respondError(c, err, "Task not found", "Failed to update task")
		return
	}

	h.publish(c, realtime.TaskUpdated, task.ID, 0)
	c.JSON(http.StatusOK, task)
}

// UpdateTaskVisibility handles PATCH /api/tasks/:id/visibility
func (h *Handler) UpdateTaskVisibility(c *gin.Context) {
	id, ok := parseID(c, "task")
	if !ok {
		return
	}

	var req VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.store.GetTask(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Task not found", "Failed to fetch task")
		return
	}
	task.IsShow = *req.IsShow
	if err := h.store.UpdateTask(c.Request.Context(), task); err != nil {
		respondError(c, err, "Task not found", "Failed to update visibility")
		return
	}

	h.publish(c, realtime.TaskUpdated, task.ID, 0)
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
// The task's items are deleted with it.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c, "task")
	if !ok {
		return
	}

	if err := h.store.DeleteTask(c.Request.Context(), id); err != nil {
		respondError(c, err, "Task not found", "Failed to delete task")
		return
	}

	h.publish(c, realtime.TaskDeleted, id, 0)
	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      id,
	})
}

// GetStats handles GET /api/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
