package models

import (
	"fmt"
	"strconv"
	"strings"
)

// TaskType represents the kind of work a task tracks
type TaskType int

const (
	TypeDevelopment TaskType = 0
	TypeIssue       TaskType = 1
)

// String returns the display name of the task type
func (t TaskType) String() string {
	switch t {
	case TypeDevelopment:
		return "Development"
	case TypeIssue:
		return "Issue"
	default:
		return fmt.Sprintf("TaskType(%d)", int(t))
	}
}

// Valid reports whether t is one of the known task types
func (t TaskType) Valid() bool {
	return t == TypeDevelopment || t == TypeIssue
}

// ParseTaskType accepts either the numeric value ("0", "1") or the display name (case-insensitive)
func ParseTaskType(s string) (TaskType, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		t := TaskType(n)
		if !t.Valid() {
			return 0, fmt.Errorf("invalid task type %q", s)
		}
		return t, nil
	}
	switch strings.ToLower(s) {
	case "development", "dev":
		return TypeDevelopment, nil
	case "issue":
		return TypeIssue, nil
	}
	return 0, fmt.Errorf("invalid task type %q", s)
}

// CreatedAtLayout is the format of Task.CreatedAt as stored in the database
const CreatedAtLayout = "2006-01-02 15:04:05"

// Task represents a tracked unit of work.
// Table and column names match the database files written by the desktop tracker.
// The schema itself is created by database.Migrate, so column defaults are not declared here;
// every insert writes all columns.
type Task struct {
	ID        uint     `json:"id" gorm:"column:Id;primaryKey;autoIncrement"`
	Name      string   `json:"name" gorm:"column:Name"`
	Type      TaskType `json:"taskType" gorm:"column:TaskType"`
	Status    string   `json:"status" gorm:"column:Status"`
	Priority  int      `json:"priority" gorm:"column:Priority"`
	IsShow    bool     `json:"isShow" gorm:"column:IsShow"`
	CreatedAt string   `json:"createdAt" gorm:"column:CreatedAt;autoCreateTime:false"`
	Project   string   `json:"project" gorm:"column:Project"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "Tasks"
}
