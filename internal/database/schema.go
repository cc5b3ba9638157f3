package database

import (
	"fmt"

	"gorm.io/gorm"
)

const createTasksTable = `
CREATE TABLE IF NOT EXISTS Tasks (
    Id INTEGER PRIMARY KEY AUTOINCREMENT,
    Name TEXT NOT NULL,
    TaskType INTEGER NOT NULL,
    Status TEXT,
    Priority INTEGER DEFAULT 0,
    IsShow INTEGER DEFAULT 1
)`

const createTaskItemsTable = `
CREATE TABLE IF NOT EXISTS TaskItems (
    Id INTEGER PRIMARY KEY AUTOINCREMENT,
    TaskId INTEGER NOT NULL,
    Content TEXT,
    CompleteDate TEXT,
    IsReportItem INTEGER DEFAULT 1,
    FOREIGN KEY(TaskId) REFERENCES Tasks(Id)
)`

// column is a column added after the first release of the schema
type column struct {
	table      string
	name       string
	definition string
}

// addedColumns are applied in order to tables that lack them
var addedColumns = []column{
	{"TaskItems", "IsReportItem", "INTEGER DEFAULT 1"},
	{"Tasks", "CreatedAt", "TEXT DEFAULT ''"},
	{"Tasks", "Project", "TEXT DEFAULT ''"},
	{"TaskItems", "StartDate", "TEXT DEFAULT ''"},
	{"TaskItems", "EndDate", "TEXT DEFAULT ''"},
}

// Migrate creates the Tasks and TaskItems tables when missing and adds any
// column an older database file lacks. It only ever adds; nothing is rebuilt.
func Migrate(db *gorm.DB) error {
	for _, ddl := range []string{createTasksTable, createTaskItemsTable} {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	for _, col := range addedColumns {
		exists, err := hasColumn(db, col.table, col.name)
		if err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		if exists {
			continue
		}
		ddl := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", col.table, col.name, col.definition)
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("migrate database: add %s.%s: %w", col.table, col.name, err)
		}
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_TaskItems_TaskId ON TaskItems(TaskId)").Error; err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

func hasColumn(db *gorm.DB, table, name string) (bool, error) {
	var count int64
	err := db.Raw("SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?", table, name).Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("inspect %s: %w", table, err)
	}
	return count > 0, nil
}
