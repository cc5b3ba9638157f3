package testutil

import (
	"dayjob-record/internal/database"
	"dayjob-record/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewInMemoryDB creates an in-memory SQLite DB and runs migrations.
// The pool is capped at one connection because every new ":memory:" connection is a separate database.
func NewInMemoryDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// SeedTask inserts a task with the given fields and returns it
func SeedTask(db *gorm.DB, name string, taskType models.TaskType, priority int, visible bool) (models.Task, error) {
	task := models.Task{Name: name, Type: taskType, Priority: priority, IsShow: visible, Status: "In Progress"}
	err := db.Select("Name", "Type", "Status", "Priority", "IsShow").Create(&task).Error
	return task, err
}

// SeedItem inserts an item under taskID and returns it
func SeedItem(db *gorm.DB, taskID uint, content string, report bool) (models.TaskItem, error) {
	item := models.TaskItem{TaskID: taskID, Content: content, IsReportItem: report}
	err := db.Select("TaskID", "Content", "IsReportItem").Create(&item).Error
	return item, err
}
