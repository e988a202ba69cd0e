// Package store bootstraps the embedded SQLite database. The schema
// carries spaced-repetition scaffolding for a future review scheduler;
// today the study flow never reads or writes it, and the rest of the
// app only ever asks whether the store opened cleanly.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store holds the gorm handle for the local database.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite database at path, applies the recommended
// pragmas, and runs auto-migration for the review schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := db.AutoMigrate(&CardReview{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying gorm handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ReviewCount returns the number of rows in the review table. Surfaced
// on the home screen status card; nothing else consumes the table yet.
func (s *Store) ReviewCount() (int64, error) {
	var n int64
	if err := s.db.Model(&CardReview{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}

// applyPragmas configures SQLite for single-user desktop use.
func applyPragmas(db *gorm.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if err := db.Exec(p).Error; err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. FRDOJO_DB environment variable
// 2. $XDG_DATA_HOME/frdojo/frdojo.db
// 3. ~/.local/share/frdojo/frdojo.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("FRDOJO_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "frdojo", "frdojo.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
