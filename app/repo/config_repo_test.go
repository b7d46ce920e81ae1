package repo

import (
	"context"
	"testing"

	"pageforge/app/apperr"
	"pageforge/app/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newPageConfig(pageName, userID, configData string, published bool, ts int64) *models.PageConfig {
	return &models.PageConfig{
		ID:          uuid.NewString(),
		PageName:    pageName,
		ConfigData:  configData,
		Metadata:    "{}",
		UserID:      userID,
		IsPublished: published,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func TestConfigRepositoryUpsertKeepsSingleRow(t *testing.T) {
	gdb := newTestDB(t)
	r := NewConfigRepository(gdb)
	ctx := context.Background()

	first := newPageConfig("home", "u1", `{"v":1}`, false, 1000)
	require.NoError(t, r.Upsert(ctx, first))

	second := newPageConfig("home", "u1", `{"v":2}`, true, 2000)
	require.NoError(t, r.Upsert(ctx, second))

	var count int64
	require.NoError(t, gdb.Model(&models.PageConfig{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	row, err := r.FindByPageAndUser(ctx, "home", "u1")
	require.NoError(t, err)
	require.Equal(t, first.ID, row.ID, "id survives the upsert")
	require.EqualValues(t, 1000, row.CreatedAt, "created_at survives the upsert")
	require.EqualValues(t, 2000, row.UpdatedAt)
	require.Equal(t, `{"v":2}`, row.ConfigData)
	require.True(t, row.IsPublished)
}

func TestConfigRepositorySamePageDifferentUsers(t *testing.T) {
	r := NewConfigRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, newPageConfig("home", "u1", `{"o":"u1"}`, false, 1000)))
	require.NoError(t, r.Upsert(ctx, newPageConfig("home", "u2", `{"o":"u2"}`, false, 1000)))

	row1, err := r.FindByPageAndUser(ctx, "home", "u1")
	require.NoError(t, err)
	require.Equal(t, `{"o":"u1"}`, row1.ConfigData)

	row2, err := r.FindByPageAndUser(ctx, "home", "u2")
	require.NoError(t, err)
	require.Equal(t, `{"o":"u2"}`, row2.ConfigData)
}

func TestConfigRepositoryLatestPublishedWins(t *testing.T) {
	r := NewConfigRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, newPageConfig("home", "u1", `{"cfg":"A"}`, true, 1000)))
	require.NoError(t, r.Upsert(ctx, newPageConfig("home", "u2", `{"cfg":"B"}`, true, 2000)))
	// a newer draft must not shadow the published rows
	require.NoError(t, r.Upsert(ctx, newPageConfig("home", "u3", `{"cfg":"C"}`, false, 3000)))

	row, err := r.FindLatestPublished(ctx, "home")
	require.NoError(t, err)
	require.Equal(t, "u2", row.UserID)
	require.Equal(t, `{"cfg":"B"}`, row.ConfigData)
}

func TestConfigRepositoryNotFound(t *testing.T) {
	r := NewConfigRepository(newTestDB(t))
	ctx := context.Background()

	_, err := r.FindByPageAndUser(ctx, "home", "u1")
	require.ErrorIs(t, err, apperr.ErrNotFound)

	// an existing draft is not enough for the published lookup
	require.NoError(t, r.Upsert(ctx, newPageConfig("home", "u1", `{}`, false, 1000)))
	_, err = r.FindLatestPublished(ctx, "home")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
