package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

type implStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// Open opens (or creates) the SQLite database at path and migrates the schema.
// Use ":memory:" for a throwaway database.
func Open(path string, log logger.Logger) (Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create database dir: %w", err)
			}
		}
	}

	log = log.With("component", "store")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newGormLogger(log, slowQueryThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if path == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&Transcription{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &implStore{db: db, logger: log}, nil
}
