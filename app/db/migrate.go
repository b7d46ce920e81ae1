package db

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrations embed.FS

var (
	migrateOnce sync.Once
	migrateErr  error
)

// Migrate brings the schema up to date, at most once per process. The
// sync.Once latch is only a fast path for warm processes: goose's version
// ledger plus IF NOT EXISTS bodies keep RunMigrations idempotent, so
// concurrent cold starts racing past the latch still converge on the same
// schema.
func Migrate(ctx context.Context, gdb *gorm.DB, driver string) error {
	migrateOnce.Do(func() {
		migrateErr = RunMigrations(ctx, gdb, driver)
	})
	return migrateErr
}

// RunMigrations applies the embedded migrations unconditionally.
func RunMigrations(ctx context.Context, gdb *gorm.DB, driver string) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}
	dialect := "sqlite3"
	if driver == "mysql" {
		dialect = "mysql"
	}
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
