package store

import (
	"context"
	"fmt"
	"strings"

	"dayjob-record/internal/models"
)

var itemInsertColumns = []string{"TaskID", "Content", "StartDate", "EndDate", "CompleteDate", "IsReportItem"}

func validateItem(item *models.TaskItem) error {
	item.Content = strings.TrimSpace(item.Content)
	item.CompleteDate = strings.TrimSpace(item.CompleteDate)
	if item.Content == "" {
		return invalid("content", "content is required")
	}

	start, err := normalizeDate("startDate", item.StartDate)
	if err != nil {
		return err
	}
	end, err := normalizeDate("endDate", item.EndDate)
	if err != nil {
		return err
	}
	// layout is lexically ordered
	if start != "" && end != "" && end < start {
		start, end = end, start
	}
	item.StartDate, item.EndDate = start, end
	return nil
}

// ListItems returns the items of a task, newest first
func (s *Store) ListItems(ctx context.Context, taskID uint) ([]models.TaskItem, error) {
	load := func() ([]models.TaskItem, error) {
		items := []models.TaskItem{}
		if err := s.db.WithContext(ctx).Where("TaskId = ?", taskID).Order("Id DESC").Find(&items).Error; err != nil {
			return nil, fmt.Errorf("list task items: %w", err)
		}
		return items, nil
	}
	if s.itemsTTL <= 0 {
		return load()
	}

	items, err := s.items.GetOrLoad(taskID, s.itemsTTL, load)
	if err != nil {
		return nil, err
	}
	// callers may modify the slice
	out := make([]models.TaskItem, len(items))
	copy(out, items)
	return out, nil
}

// GetItem returns one item by id
func (s *Store) GetItem(ctx context.Context, id uint) (*models.TaskItem, error) {
	var item models.TaskItem
	if err := s.db.WithContext(ctx).Where("Id = ?", id).First(&item).Error; err != nil {
		return nil, wrapNotFound(err, "task item")
	}
	return &item, nil
}

// CreateItem inserts an item under an existing task
func (s *Store) CreateItem(ctx context.Context, item *models.TaskItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if _, err := s.GetTask(ctx, item.TaskID); err != nil {
		return err
	}
	item.ID = 0

	if err := s.db.WithContext(ctx).Select(itemInsertColumns).Create(item).Error; err != nil {
		return fmt.Errorf("create task item: %w", err)
	}
	s.invalidateItems(item.TaskID)
	return nil
}

// UpdateItem saves an item; the owning task is kept from the stored row
func (s *Store) UpdateItem(ctx context.Context, item *models.TaskItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	existing, err := s.GetItem(ctx, item.ID)
	if err != nil {
		return err
	}
	item.TaskID = existing.TaskID

	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("update task item: %w", err)
	}
	s.invalidateItems(item.TaskID)
	return nil
}

// DeleteItem removes a single item
func (s *Store) DeleteItem(ctx context.Context, id uint) error {
	existing, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Where("Id = ?", id).Delete(&models.TaskItem{}).Error; err != nil {
		return fmt.Errorf("delete task item: %w", err)
	}
	s.invalidateItems(existing.TaskID)
	return nil
}
