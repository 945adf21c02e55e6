package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

const (
	sqliteDialect = "sqlite3"
	migrationsDir = "sql"
)

//go:embed sql/*.sql
var embedded embed.FS

var (
	setupOnce sync.Once
	setupErr  error
)

// goose keeps its settings in package globals.
func setup() error {
	setupOnce.Do(func() {
		goose.SetBaseFS(embedded)
		goose.SetLogger(goose.NopLogger())
		if err := goose.SetDialect(sqliteDialect); err != nil {
			setupErr = fmt.Errorf("set goose dialect: %w", err)
		}
	})
	return setupErr
}

// Up runs all pending SQL migrations embedded in the binary.
func Up(db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("run goose up migrations: %w", err)
	}

	return nil
}

// Version reports the current schema version.
func Version(db *sql.DB) (int64, error) {
	if err := setup(); err != nil {
		return 0, err
	}

	v, err := goose.GetDBVersion(db)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}
