package models

// User is an identity record. Rows are immutable after registration: there
// is no update or delete path.
type User struct {
	ID           string `gorm:"primaryKey;size:64"`
	Username     string `gorm:"uniqueIndex;size:191;not null"`
	PasswordHash string `gorm:"size:64;not null"`
	Salt         []byte `gorm:"not null"`
	Profile      string
	CreatedAt    int64 `gorm:"not null;autoCreateTime:false"`
}
