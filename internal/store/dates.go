package store

import (
	"strings"
	"time"

	"dayjob-record/internal/models"
)

var dateLayouts = []string{
	models.DateLayout, // ISO date
	"2 Jan 2006",      // e.g., 30 Oct 2025
	"02 Jan 2006",     // zero-padded day
	time.RFC3339,
	"2006/01/02",
	"2006-01-02 15:04:05",
}

// ParseDate parses the date formats accepted from clients
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeDate rewrites a client date to the storage layout; empty stays empty
func normalizeDate(field, s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	t, ok := ParseDate(s)
	if !ok {
		return "", invalid(field, "invalid date")
	}
	return t.Format(models.DateLayout), nil
}
