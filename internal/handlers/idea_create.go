package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/idea-board/internal/logger"
	"github.com/sbilibin2017/idea-board/internal/middlewares"
)

//go:generate mockgen -source=idea_create.go -destination=mock_idea_create.go -package=handlers

// IdeaCreator defines the interface that the service must implement.
type IdeaCreator interface {
	Create(ctx context.Context, owner, title, description string, tags []string) (uuid.UUID, error)
}

// CreateIdeaRequest represents the JSON body for creating an idea
// swagger:model CreateIdeaRequest
type CreateIdeaRequest struct {
	// Title
	// required: true
	// default: Shared grocery list
	Title *string `json:"title"`

	// Description
	// required: true
	// default: A list the whole flat can edit
	Description *string `json:"description"`

	// Optional labels
	Tags []string `json:"tags"`
}

// CreateIdeaResponse represents a successful idea creation response
// swagger:model CreateIdeaResponse
type CreateIdeaResponse struct {
	// Identifier of the new idea
	ID string `json:"id"`

	// Success message
	// default: Idea created successfully
	Message string `json:"message"`
}

// NewCreateIdeaHandler returns an HTTP handler creating an idea owned by the caller.
// @Summary Create idea
// @Tags ideas
// @Accept json
// @Produce json
// @Param request body handlers.CreateIdeaRequest true "Idea"
// @Success 200 {object} handlers.CreateIdeaResponse "Idea created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /ideas/ [post]
// @Security BearerAuth
func NewCreateIdeaHandler(svc IdeaCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		owner, ok := middlewares.UsernameFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req CreateIdeaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode idea request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Title == nil || req.Description == nil {
			writeError(w, http.StatusBadRequest, "Title and description are required")
			return
		}

		id, err := svc.Create(ctx, owner, *req.Title, *req.Description, req.Tags)
		if err != nil {
			logger.Log.Errorw("failed to create idea", "owner", owner, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, CreateIdeaResponse{
			ID:      id.String(),
			Message: "Idea created successfully",
		})
	}
}
