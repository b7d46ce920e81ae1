package repo

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"pageforge/app/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory sqlite database and applies the
// embedded migrations. The shared-cache DSN keeps gorm's pooled
// connections on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(context.Background(), gdb, "sqlite"))
	return gdb
}
