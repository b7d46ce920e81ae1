package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pageforge/app/apperr"
	"pageforge/app/dto"
	jwtutil "pageforge/app/jwt"
	"pageforge/app/middleware"
	"pageforge/app/services"
	"pageforge/app/session"
	"pageforge/global"
)

type AuthController struct {
	Users  *services.UserService
	Signer *jwtutil.Signer
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Signer: signer}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "missing credentials"})
		return
	}
	id, err := c.Users.Register(r.Context(), req.Username, req.Password, req.Profile)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			writeJSON(w, http.StatusConflict, dto.ErrorResponse{Error: "username taken"})
			return
		}
		global.Logger.Error().Err(err).Msg("register failed")
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to register user"})
		return
	}
	writeJSON(w, http.StatusOK, dto.RegisterResponse{OK: true, ID: id})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "missing credentials"})
		return
	}
	id, err := c.Users.Verify(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"})
			return
		}
		global.Logger.Error().Err(err).Msg("login failed")
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "login failed"})
		return
	}
	token, err := c.Signer.Sign(id, req.Username)
	if err != nil {
		global.Logger.Error().Err(err).Msg("token signing failed")
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "token error"})
		return
	}
	session.SetCookie(w, token, c.Signer.Validity)
	writeJSON(w, http.StatusOK, dto.OKResponse{OK: true})
}

// Logout clears the client cookie. Tokens already issued elsewhere remain
// valid until they expire; there is no server-side revocation.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session.ClearCookie(w)
	writeJSON(w, http.StatusOK, dto.OKResponse{OK: true})
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}
	u, err := c.Users.GetByID(r.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
			return
		}
		global.Logger.Error().Err(err).Msg("user lookup failed")
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to load user"})
		return
	}
	writeJSON(w, http.StatusOK, dto.MeResponse{
		ID:        u.ID,
		Username:  u.Username,
		Profile:   u.Profile,
		CreatedAt: u.CreatedAt,
	})
}
