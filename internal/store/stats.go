package store

import (
	"context"
	"fmt"

	"dayjob-record/internal/models"
)

// Stats summarizes the tasks in the store
type Stats struct {
	ByStatus map[string]int64 `json:"byStatus"`
	ByType   map[string]int64 `json:"byType"`
	Total    int64            `json:"total"`
}

// Stats counts tasks grouped by status and by type
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	type statusRow struct {
		StatusKey string
		Count     int64
	}
	stats := Stats{
		ByStatus: map[string]int64{},
		ByType: map[string]int64{
			models.TypeDevelopment.String(): 0,
			models.TypeIssue.String():       0,
		},
	}

	var byStatus []statusRow
	if err := s.db.WithContext(ctx).Model(&models.Task{}).
		Select("COALESCE(Status, '') AS status_key, COUNT(*) AS count").
		Group("status_key").
		Scan(&byStatus).Error; err != nil {
		return Stats{}, fmt.Errorf("count tasks by status: %w", err)
	}
	for _, r := range byStatus {
		stats.ByStatus[r.StatusKey] += r.Count
		stats.Total += r.Count
	}

	type typeRow struct {
		TaskType models.TaskType
		Count    int64
	}
	var byType []typeRow
	if err := s.db.WithContext(ctx).Model(&models.Task{}).
		Select("TaskType AS task_type, COUNT(*) AS count").
		Group("TaskType").
		Scan(&byType).Error; err != nil {
		return Stats{}, fmt.Errorf("count tasks by type: %w", err)
	}
	for _, r := range byType {
		stats.ByType[r.TaskType.String()] = r.Count
	}
	return stats, nil
}
