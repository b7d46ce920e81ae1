package controllers

import (
	"net/http"
	"time"
)

type HTTPController struct{}

func NewHTTPController() *HTTPController { return &HTTPController{} }

func (c *HTTPController) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "ok",
		"timestamp": time.Now().UnixMilli(),
	})
}
