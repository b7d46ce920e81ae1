package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pageforge/app/apperr"
	"pageforge/app/models"
	"pageforge/app/repo"

	"github.com/google/uuid"
)

const saltLength = 16

// UserRecord is the readable view of an identity, with the profile
// deserialized from its stored text.
type UserRecord struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Profile   json.RawMessage `json:"profile"`
	CreatedAt int64           `json:"createdAt"`
}

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// Register creates a new identity. The username existence check is advisory;
// the unique constraint settles concurrent duplicate registrations and the
// repository reports the loser as a conflict.
func (s *UserService) Register(ctx context.Context, username, password string, profile json.RawMessage) (string, error) {
	count, err := s.users.CountByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", apperr.ErrConflict
	}
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	u := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hashPassword(password, salt),
		Salt:         salt,
		Profile:      jsonText(profile),
		CreatedAt:    time.Now().UnixMilli(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return "", err
	}
	return u.ID, nil
}

// Verify checks a login attempt and returns the user id on success. Unknown
// usernames and wrong passwords both come back as ErrInvalidCredentials so
// the caller cannot probe which usernames exist.
func (s *UserService) Verify(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", apperr.ErrInvalidCredentials
		}
		return "", err
	}
	computed := hashPassword(password, u.Salt)
	if subtle.ConstantTimeCompare([]byte(computed), []byte(u.PasswordHash)) != 1 {
		return "", apperr.ErrInvalidCredentials
	}
	return u.ID, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*UserRecord, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &UserRecord{
		ID:        u.ID,
		Username:  u.Username,
		Profile:   safeJSON(u.Profile),
		CreatedAt: u.CreatedAt,
	}, nil
}

// hashPassword computes hex(SHA-256(salt ‖ password)). A single unstretched
// pass, kept for compatibility with the stored credential format; a
// production deployment should migrate to a memory-hard KDF.
func hashPassword(password string, salt []byte) string {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil))
}
