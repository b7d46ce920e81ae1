package repo

import (
	"context"
	"errors"
	"fmt"

	"pageforge/app/apperr"
	"pageforge/app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigRepository struct{ db *gorm.DB }

func NewConfigRepository(db *gorm.DB) *ConfigRepository { return &ConfigRepository{db: db} }

// Upsert writes the row keyed by (page_name, user_id). On conflict the
// payload columns and updated_at are overwritten; id and created_at keep
// their original values, so a pair never accumulates history.
func (r *ConfigRepository) Upsert(ctx context.Context, pc *models.PageConfig) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "page_name"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"config_data":  pc.ConfigData,
			"metadata":     pc.Metadata,
			"is_published": pc.IsPublished,
			"updated_at":   pc.UpdatedAt,
		}),
	}).Create(pc).Error
	if err != nil {
		return fmt.Errorf("%w: upsert page config: %v", apperr.ErrPersistence, err)
	}
	return nil
}

// FindByPageAndUser returns the single row for this exact user and page,
// draft or published alike.
func (r *ConfigRepository) FindByPageAndUser(ctx context.Context, pageName, userID string) (*models.PageConfig, error) {
	var pc models.PageConfig
	err := r.db.WithContext(ctx).
		Where("page_name = ? AND user_id = ?", pageName, userID).
		First(&pc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("%w: find page config: %v", apperr.ErrPersistence, err)
	}
	return &pc, nil
}

// FindLatestPublished returns the most recently updated published row for
// the page across all owners.
func (r *ConfigRepository) FindLatestPublished(ctx context.Context, pageName string) (*models.PageConfig, error) {
	var pc models.PageConfig
	err := r.db.WithContext(ctx).
		Where("page_name = ? AND is_published = ?", pageName, true).
		Order("updated_at DESC").
		First(&pc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("%w: find published config: %v", apperr.ErrPersistence, err)
	}
	return &pc, nil
}
