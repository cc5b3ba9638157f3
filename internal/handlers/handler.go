package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"dayjob-record/internal/middleware"
	"dayjob-record/internal/options"
	"dayjob-record/internal/realtime"
	"dayjob-record/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler serves the tracker API
type Handler struct {
	store   *store.Store
	hub     *realtime.Hub
	options *options.Service

	reportLocale string
	passwordHash string
}

// Config carries the settings handlers need beyond their dependencies
type Config struct {
	ReportLocale string
	// PasswordHash is the bcrypt hash checked by Login; empty disables login
	PasswordHash string
}

// New creates a Handler
func New(s *store.Store, hub *realtime.Hub, opts *options.Service, cfg Config) *Handler {
	return &Handler{
		store:        s,
		hub:          hub,
		options:      opts,
		reportLocale: cfg.ReportLocale,
		passwordHash: cfg.PasswordHash,
	}
}

func (h *Handler) publish(c *gin.Context, eventType string, taskID, itemID uint) {
	h.hub.Publish(c.GetString(middleware.ContextUserID), realtime.NewEvent(eventType, taskID, itemID))
}

func parseID(c *gin.Context, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + " ID"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps store errors to status codes; anything unexpected is logged and hidden
func respondError(c *gin.Context, err error, notFound, failed string) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	default:
		log.Printf("%s: %v", failed, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": failed})
	}
}
