package services

import (
	"context"
	"encoding/json"
	"time"

	"pageforge/app/models"
	"pageforge/app/repo"

	"github.com/google/uuid"
)

// ConfigEnvelope is the readable view of a stored page configuration.
// Config and Metadata come back as raw JSON; corrupted stored text degrades
// to an empty object rather than failing the read.
type ConfigEnvelope struct {
	Config      json.RawMessage
	Metadata    json.RawMessage
	UserID      string
	IsPublished bool
	CreatedAt   int64
	UpdatedAt   int64
}

type ConfigService struct{ configs *repo.ConfigRepository }

func NewConfigService(configs *repo.ConfigRepository) *ConfigService {
	return &ConfigService{configs: configs}
}

// Save upserts the configuration for (pageName, userID) and returns the id
// of the surviving row. First save for a pair inserts a fresh row; later
// saves overwrite payload, publish flag and updated_at in place, keeping
// the original id and created_at.
func (s *ConfigService) Save(ctx context.Context, userID, pageName string, config, metadata json.RawMessage, publish bool) (string, error) {
	now := time.Now().UnixMilli()
	pc := &models.PageConfig{
		ID:          uuid.NewString(),
		PageName:    pageName,
		ConfigData:  jsonText(config),
		Metadata:    jsonText(metadata),
		UserID:      userID,
		IsPublished: publish,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.configs.Upsert(ctx, pc); err != nil {
		return "", err
	}
	// On a conflicting save the pre-existing row keeps its id, so read the
	// surviving row back instead of reporting the candidate id.
	saved, err := s.configs.FindByPageAndUser(ctx, pageName, userID)
	if err != nil {
		return "", err
	}
	return saved.ID, nil
}

// GetDraft returns this user's own row for the page, whether or not it is
// published.
func (s *ConfigService) GetDraft(ctx context.Context, userID, pageName string) (*ConfigEnvelope, error) {
	pc, err := s.configs.FindByPageAndUser(ctx, pageName, userID)
	if err != nil {
		return nil, err
	}
	return envelope(pc), nil
}

// GetPublished returns the most recently updated published row for the
// page, regardless of owner. This read path is deliberately public and
// ownerless; callers need no session.
func (s *ConfigService) GetPublished(ctx context.Context, pageName string) (*ConfigEnvelope, error) {
	pc, err := s.configs.FindLatestPublished(ctx, pageName)
	if err != nil {
		return nil, err
	}
	return envelope(pc), nil
}

func envelope(pc *models.PageConfig) *ConfigEnvelope {
	return &ConfigEnvelope{
		Config:      safeJSON(pc.ConfigData),
		Metadata:    safeJSON(pc.Metadata),
		UserID:      pc.UserID,
		IsPublished: pc.IsPublished,
		CreatedAt:   pc.CreatedAt,
		UpdatedAt:   pc.UpdatedAt,
	}
}
