package dto

import "encoding/json"

type RegisterRequest struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	Profile  json.RawMessage `json:"profile"`
}

type RegisterResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MeResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Profile   json.RawMessage `json:"profile"`
	CreatedAt int64           `json:"createdAt"`
}
