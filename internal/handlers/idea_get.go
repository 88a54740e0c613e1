package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/idea-board/internal/logger"
	"github.com/sbilibin2017/idea-board/internal/middlewares"
	"github.com/sbilibin2017/idea-board/internal/models"
	"github.com/sbilibin2017/idea-board/internal/services"
)

//go:generate mockgen -source=idea_get.go -destination=mock_idea_get.go -package=handlers

// IdeaGetter defines the interface that the service must implement.
type IdeaGetter interface {
	GetByID(ctx context.Context, owner string, id uuid.UUID) (*models.IdeaDB, error)
}

// IdeaResponse is a full idea document
// swagger:model IdeaResponse
type IdeaResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Owner       string           `json:"owner"`
	Tags        []string         `json:"tags"`
	Votes       int              `json:"votes"`
	CreatedAt   time.Time        `json:"created_at"`
	Comments    []models.Comment `json:"comments"`
}

// NewGetIdeaHandler returns an HTTP handler returning one of the caller's ideas.
// @Summary Get idea
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID"
// @Success 200 {object} handlers.IdeaResponse "Idea"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Idea not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /ideas/{id} [get]
// @Security BearerAuth
func NewGetIdeaHandler(svc IdeaGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		owner, ok := middlewares.UsernameFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		// ids are opaque: a malformed one is just an unknown idea
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Idea not found")
			return
		}

		idea, err := svc.GetByID(ctx, owner, id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrIdeaNotFound):
				writeError(w, http.StatusNotFound, "Idea not found")
			default:
				logger.Log.Errorw("failed to get idea", "owner", owner, "id", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		comments := []models.Comment(idea.Comments)
		if comments == nil {
			comments = []models.Comment{}
		}

		writeJSON(w, http.StatusOK, IdeaResponse{
			ID:          idea.ID.String(),
			Title:       idea.Title,
			Description: idea.Description,
			Owner:       idea.Owner,
			Tags:        nonNilTags(idea.Tags),
			Votes:       idea.Votes,
			CreatedAt:   idea.CreatedAt,
			Comments:    comments,
		})
	}
}
