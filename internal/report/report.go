// Package report renders the daily report text for a selection of tasks.
package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"dayjob-record/internal/models"
)

// ErrNoTasksSelected is returned when a report is requested for an empty selection
var ErrNoTasksSelected = errors.New("select at least one task")

// ItemSource supplies the items of a task in display order
type ItemSource interface {
	ListItems(ctx context.Context, taskID uint) ([]models.TaskItem, error)
}

// Generate renders tasks as report text.
// Tasks are ordered by descending priority (stable), grouped Development first, then Issue;
// each task lists its status and its report-flagged items.
func Generate(ctx context.Context, tasks []models.Task, items ItemSource, labels Labels) (string, error) {
	if len(tasks) == 0 {
		return "", ErrNoTasksSelected
	}

	ordered := make([]models.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	var dev, issues []models.Task
	for _, t := range ordered {
		switch t.Type {
		case models.TypeDevelopment:
			dev = append(dev, t)
		case models.TypeIssue:
			issues = append(issues, t)
		}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	if err := writeSection(ctx, &sb, labels.DevelopmentHeader, dev, items, labels, ""); err != nil {
		return "", err
	}
	if err := writeSection(ctx, &sb, labels.IssueHeader, issues, items, labels, labels.IssueHandled); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeSection(ctx context.Context, sb *strings.Builder, header string, tasks []models.Task, items ItemSource, labels Labels, dateSuffix string) error {
	if len(tasks) == 0 {
		return nil
	}
	sb.WriteString(header + "\n")
	for i, t := range tasks {
		fmt.Fprintf(sb, "%d%s%s\n", i+1, labels.IndexSeparator, t.Name)
		fmt.Fprintf(sb, "\t%s%s\n", labels.StatusPrefix, t.Status)

		taskItems, err := items.ListItems(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("load items of task %d: %w", t.ID, err)
		}
		for _, item := range taskItems {
			if !item.IsReportItem {
				continue
			}
			if date := DatePrefix(item); date != "" {
				fmt.Fprintf(sb, "\t%s%s%s%s\n", date, dateSuffix, labels.DateSeparator, item.Content)
			} else {
				fmt.Fprintf(sb, "\t%s\n", item.Content)
			}
		}
	}
	return nil
}

// DatePrefix returns the date shown before an item's content.
// A completion date wins; otherwise start/end dates render as MM-dd or MM-dd~MM-dd.
func DatePrefix(item models.TaskItem) string {
	if d := strings.TrimSpace(item.CompleteDate); d != "" {
		return d
	}
	start := shortDate(item.StartDate)
	end := shortDate(item.EndDate)
	switch {
	case start != "" && end != "" && start != end:
		return start + "~" + end
	case start != "":
		return start
	default:
		return end
	}
}

func shortDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("01-02")
}
