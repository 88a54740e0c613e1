package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/sbilibin2017/idea-board/internal/logger"
	"github.com/sbilibin2017/idea-board/internal/services"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: alice
	Username *string `json:"username"`

	// Password
	// required: true
	// default: pw1
	Password *string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Signed access token
	// default: JWT_TOKEN
	AccessToken string `json:"access_token"`

	// Token scheme for the Authorization header
	// default: bearer
	TokenType string `json:"token_type"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Verifies the credentials and returns a bearer token. Accepts JSON or form-encoded bodies.
// @Tags users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Token issued"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 429 {object} handlers.ErrorResponse "Too many login attempts"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeLoginRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Username == nil || req.Password == nil {
			writeError(w, http.StatusBadRequest, "Username and password are required")
			return
		}

		token, err := svc.Login(r.Context(), *req.Username, *req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid credentials")
			case errors.Is(err, services.ErrTooManyAttempts):
				writeError(w, http.StatusTooManyRequests, "Too many login attempts")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

func decodeLoginRequest(r *http.Request) (LoginRequest, error) {
	var req LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		if v, ok := r.PostForm["username"]; ok && len(v) > 0 {
			req.Username = &v[0]
		}
		if v, ok := r.PostForm["password"]; ok && len(v) > 0 {
			req.Password = &v[0]
		}
		return req, nil
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}
