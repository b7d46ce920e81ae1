package models

// PageConfig stores one JSON configuration blob per (page, owner) pair. The
// composite unique index is what actually enforces upsert-in-place; callers
// never create a second row for the same pair. ConfigData and Metadata hold
// serialized JSON and are not validated on write.
//
// Timestamps are epoch milliseconds. CreatedAt survives upserts; UpdatedAt
// advances on every save and decides which published row a page serves.
type PageConfig struct {
	ID          string `gorm:"primaryKey;size:64"`
	PageName    string `gorm:"size:191;not null;uniqueIndex:idx_page_user"`
	ConfigData  string `gorm:"not null"`
	Metadata    string
	UserID      string `gorm:"size:64;uniqueIndex:idx_page_user"`
	IsPublished bool   `gorm:"not null;default:false;index"`
	CreatedAt   int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   int64  `gorm:"not null;autoUpdateTime:false;index"`
}
