package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/idea-board/internal/logger"
	"github.com/sbilibin2017/idea-board/internal/services"
)

//go:generate mockgen -source=signup.go -destination=mock_signup.go -package=handlers

// Signupper defines the interface that the service must implement.
type Signupper interface {
	Signup(ctx context.Context, username, password string) error
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: alice
	Username *string `json:"username"`

	// Password
	// required: true
	// default: pw1
	Password *string `json:"password"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// Registered username
	// default: alice
	Username string `json:"username"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Sign up
// @Description Creates a new user. The username must be unused. The password is stored as a bcrypt hash.
// @Tags users
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 200 {object} handlers.SignupResponse "User created"
// @Failure 400 {object} handlers.ErrorResponse "Username already exists / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/signup [post]
func NewSignupHandler(svc Signupper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Username == nil || req.Password == nil {
			writeError(w, http.StatusBadRequest, "Username and password are required")
			return
		}

		err := svc.Signup(r.Context(), *req.Username, *req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusBadRequest, "Username already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, SignupResponse{Username: *req.Username})
	}
}
