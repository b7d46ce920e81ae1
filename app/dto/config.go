package dto

import "encoding/json"

type SaveConfigRequest struct {
	Config    json.RawMessage `json:"config"`
	IsPublish bool            `json:"isPublish"`
	Metadata  json.RawMessage `json:"metadata"`
}

type SaveConfigResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// PublishedConfigResponse is the public, ownerless envelope: it names the
// owning user but needs no session to fetch.
type PublishedConfigResponse struct {
	Success   bool            `json:"success"`
	Config    json.RawMessage `json:"config"`
	Metadata  json.RawMessage `json:"metadata"`
	UserID    string          `json:"userId"`
	CreatedAt int64           `json:"createdAt"`
	UpdatedAt int64           `json:"updatedAt"`
}

// DraftConfigResponse is the owner's view of their own row, draft or not.
type DraftConfigResponse struct {
	Success     bool            `json:"success"`
	Config      json.RawMessage `json:"config"`
	Metadata    json.RawMessage `json:"metadata"`
	IsPublished bool            `json:"isPublished"`
	CreatedAt   int64           `json:"createdAt"`
	UpdatedAt   int64           `json:"updatedAt"`
}

type ConfigErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
