package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open opens (creating if needed) the SQLite file at path and migrates the schema.
// Older database files gain any missing columns with their defaults.
// The file may be shared with the desktop tracker, so existing columns are never altered.
// Using glebarez/sqlite which is a pure Go implementation (no CGO required)
func Open(path string, logLevel string) (*gorm.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(ParseLogLevel(logLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// InitDB opens the database at path and stores it in DB
func InitDB(path string, logLevel string) {
	db, err := Open(path, logLevel)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	DB = db

	log.Printf("Database %s connected and migrated", path)
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}

// ParseLogLevel maps a config string to a gorm log level; unknown values mean warn
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
