package store

import (
	"context"
	"fmt"
	"strings"

	"dayjob-record/internal/models"

	"gorm.io/gorm"
)

// TaskFilter narrows ListTasks
type TaskFilter struct {
	// ShowAll includes tasks whose IsShow flag is off
	ShowAll bool
	Type    *models.TaskType
	Project string
}

const taskOrder = "Priority DESC, Id ASC"

// columns written on insert
var taskInsertColumns = []string{"Name", "Type", "Status", "Priority", "IsShow", "CreatedAt", "Project"}

func validateTask(task *models.Task) error {
	task.Name = strings.TrimSpace(task.Name)
	task.Status = strings.TrimSpace(task.Status)
	task.Project = strings.TrimSpace(task.Project)
	if task.Name == "" {
		return invalid("name", "name is required")
	}
	if !task.Type.Valid() {
		return invalid("taskType", "invalid task type")
	}
	return nil
}

// ListTasks returns tasks by descending priority, then by id
func (s *Store) ListTasks(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	query := s.db.WithContext(ctx).Model(&models.Task{})
	if !filter.ShowAll {
		query = query.Where("IsShow = ?", true)
	}
	if filter.Type != nil {
		query = query.Where("TaskType = ?", *filter.Type)
	}
	if p := strings.TrimSpace(filter.Project); p != "" {
		query = query.Where("Project = ?", p)
	}

	tasks := []models.Task{}
	if err := query.Order(taskOrder).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns one task by id
func (s *Store) GetTask(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.WithContext(ctx).Where("Id = ?", id).First(&task).Error; err != nil {
		return nil, wrapNotFound(err, "task")
	}
	return &task, nil
}

// GetTasksByIDs returns the tasks that exist among ids, in store order
func (s *Store) GetTasksByIDs(ctx context.Context, ids []uint) ([]models.Task, error) {
	tasks := []models.Task{}
	if len(ids) == 0 {
		return tasks, nil
	}
	if err := s.db.WithContext(ctx).Where("Id IN ?", ids).Order(taskOrder).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks by id: %w", err)
	}
	return tasks, nil
}

// CreateTask validates and inserts task, filling in its ID and CreatedAt
func (s *Store) CreateTask(ctx context.Context, task *models.Task) error {
	if err := validateTask(task); err != nil {
		return err
	}
	task.ID = 0
	task.CreatedAt = s.now().Format(models.CreatedAtLayout)

	if err := s.db.WithContext(ctx).Select(taskInsertColumns).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// UpdateTask saves every field of task except CreatedAt
func (s *Store) UpdateTask(ctx context.Context, task *models.Task) error {
	if err := validateTask(task); err != nil {
		return err
	}
	existing, err := s.GetTask(ctx, task.ID)
	if err != nil {
		return err
	}
	task.CreatedAt = existing.CreatedAt

	if err := s.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// DeleteTask removes a task together with all of its items
func (s *Store) DeleteTask(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("TaskId = ?", id).Delete(&models.TaskItem{}).Error; err != nil {
			return fmt.Errorf("delete task items: %w", err)
		}
		result := tx.Where("Id = ?", id).Delete(&models.Task{})
		if result.Error != nil {
			return fmt.Errorf("delete task: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil
	})
	// invalidated even when the transaction fails
	s.invalidateItems(id)
	return err
}
