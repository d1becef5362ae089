// Package dbtest opens throwaway migrated databases for package tests.
package dbtest

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"Fyyur/internal/config"
	"Fyyur/internal/database"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var seq atomic.Int64

// New returns a migrated in-memory SQLite database private to the test.
func New(tb testing.TB) *gorm.DB {
	tb.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, seq.Add(1))

	db, err := database.Open(config.DatabaseConfig{
		Driver:   "sqlite",
		DSN:      dsn,
		LogLevel: "silent",
	}, Logger())
	if err != nil {
		tb.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate test database: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Logger returns a logrus logger that discards output.
func Logger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
