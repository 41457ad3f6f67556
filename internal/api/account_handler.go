package api

import (
	"errors"
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type RegisterRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct horse"`
	FullName string `json:"fullName" example:"Ada Lovelace"`
}

type CredentialsRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct horse"`
}

func (r *CredentialsRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("missing credentials")
	}
	return nil
}

type MessageResponse struct {
	Message string `json:"message" example:"User registered"`
}

type LoginResponse struct {
	UserID string `json:"user_id" example:"3f2b9c0e7d1a4e5f8a6b2c4d9e0f1a2b"`
	Streak int    `json:"streak" example:"4"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// register creates an account.
// @Summary      Register
// @Description  Creates an account and an empty profile. Password must be at least 8 characters.
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "New account"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse  "email already registered"
// @Failure      500   {object}  ErrorResponse
// @Router       /register [post]
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	_, err := h.accounts.Register(r.Context(), req.Email, req.Password, req.FullName)
	if h.handleServiceError(w, err, "user") {
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "User registered"})
}

// login verifies credentials and updates the daily streak.
// @Summary      Log in
// @Description  Verifies credentials and returns the user id with the updated daily login streak.
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Param        body  body      CredentialsRequest  true  "Credentials"
// @Success      200   {object}  LoginResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	userID, streak, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if h.handleServiceError(w, err, "user") {
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{UserID: userID, Streak: streak})
}
