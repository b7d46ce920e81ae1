package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pageforge/app/apperr"
	"pageforge/app/dto"
	"pageforge/app/middleware"
	"pageforge/app/services"
	"pageforge/global"
)

type ConfigController struct {
	Configs *services.ConfigService
}

func NewConfigController(configs *services.ConfigService) *ConfigController {
	return &ConfigController{Configs: configs}
}

// Save upserts the caller's configuration for the page, optionally marking
// it published.
func (c *ConfigController) Save(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, dto.ConfigErrorResponse{Error: "unauthorized"})
		return
	}
	pageName := r.PathValue("pageName")
	var req dto.SaveConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ConfigErrorResponse{Error: "invalid request body"})
		return
	}
	if len(req.Config) == 0 {
		writeJSON(w, http.StatusBadRequest, dto.ConfigErrorResponse{Error: "config is required"})
		return
	}
	id, err := c.Configs.Save(r.Context(), claims.Subject, pageName, req.Config, req.Metadata, req.IsPublish)
	if err != nil {
		global.Logger.Error().Err(err).Str("page", pageName).Msg("config save failed")
		writeJSON(w, http.StatusInternalServerError, dto.ConfigErrorResponse{Error: "failed to save config"})
		return
	}
	writeJSON(w, http.StatusOK, dto.SaveConfigResponse{
		Success: true,
		Message: "config saved",
		ID:      id,
	})
}

// GetPublished serves the most recently published configuration for the
// page to anyone, signed in or not.
func (c *ConfigController) GetPublished(w http.ResponseWriter, r *http.Request) {
	pageName := r.PathValue("pageName")
	env, err := c.Configs.GetPublished(r.Context(), pageName)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, dto.ConfigErrorResponse{Error: "published config not found"})
			return
		}
		global.Logger.Error().Err(err).Str("page", pageName).Msg("published config lookup failed")
		writeJSON(w, http.StatusInternalServerError, dto.ConfigErrorResponse{Error: "failed to get published config"})
		return
	}
	writeJSON(w, http.StatusOK, dto.PublishedConfigResponse{
		Success:   true,
		Config:    env.Config,
		Metadata:  env.Metadata,
		UserID:    env.UserID,
		CreatedAt: env.CreatedAt,
		UpdatedAt: env.UpdatedAt,
	})
}

// GetDraft serves the caller's own row for the page, draft or published.
func (c *ConfigController) GetDraft(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, dto.ConfigErrorResponse{Error: "unauthorized"})
		return
	}
	pageName := r.PathValue("pageName")
	env, err := c.Configs.GetDraft(r.Context(), claims.Subject, pageName)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, dto.ConfigErrorResponse{Error: "config not found"})
			return
		}
		global.Logger.Error().Err(err).Str("page", pageName).Msg("draft config lookup failed")
		writeJSON(w, http.StatusInternalServerError, dto.ConfigErrorResponse{Error: "failed to get config"})
		return
	}
	writeJSON(w, http.StatusOK, dto.DraftConfigResponse{
		Success:     true,
		Config:      env.Config,
		Metadata:    env.Metadata,
		IsPublished: env.IsPublished,
		CreatedAt:   env.CreatedAt,
		UpdatedAt:   env.UpdatedAt,
	})
}
