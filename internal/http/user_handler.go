package api

import (
	"encoding/json"
	"net/http"

	"bloglist-service/internal/platform/apperr"
)

type registerRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200  {array}   user.Profile
// @Failure     500  {object}  map[string]string  "server error"
// @Router      /api/users [get]
func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.userSvc.Profiles(r.Context())
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

// @Summary     Register user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request  body      registerRequest  true  "Credentials"
// @Success     201      {object}  user.User
// @Failure     400      {object}  map[string]string  "validation error or username taken"
// @Router      /api/users [post]
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	u, err := h.userSvc.Register(r.Context(), req.Username, req.Name, req.Password)
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// @Summary     Log in
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request  body      loginRequest  true  "Credentials"
// @Success     200      {object}  loginResponse
// @Failure     401      {object}  map[string]string  "invalid credentials"
// @Failure     429      {object}  map[string]string  "rate limited"
// @Router      /api/login [post]
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	u, err := h.userSvc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		errorResponse(w, err)
		return
	}

	token, err := h.jwtMgr.Generate(u.ID, u.Username)
	if err != nil {
		errorResponse(w, apperr.Internal("token_error", "could not issue token", err))
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Username: u.Username, Name: u.Name})
}
