package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/idea-board/internal/logger"
	"github.com/sbilibin2017/idea-board/internal/middlewares"
	"github.com/sbilibin2017/idea-board/internal/models"
)

//go:generate mockgen -source=idea_list.go -destination=mock_idea_list.go -package=handlers

// IdeaLister defines the interface that the service must implement.
type IdeaLister interface {
	ListByOwner(ctx context.Context, owner string) ([]models.IdeaDB, error)
}

// IdeaSummary is one entry of the idea list
// swagger:model IdeaSummary
type IdeaSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Votes       int       `json:"votes"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewListIdeasHandler returns an HTTP handler listing the caller's ideas.
// @Summary List ideas
// @Description Returns the caller's ideas in creation order. Ideas of other users are never included.
// @Tags ideas
// @Produce json
// @Success 200 {array} handlers.IdeaSummary "Ideas"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /ideas/ [get]
// @Security BearerAuth
func NewListIdeasHandler(svc IdeaLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		owner, ok := middlewares.UsernameFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		ideas, err := svc.ListByOwner(ctx, owner)
		if err != nil {
			logger.Log.Errorw("failed to list ideas", "owner", owner, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		resp := make([]IdeaSummary, 0, len(ideas))
		for _, idea := range ideas {
			resp = append(resp, IdeaSummary{
				ID:          idea.ID.String(),
				Title:       idea.Title,
				Description: idea.Description,
				Tags:        nonNilTags(idea.Tags),
				Votes:       idea.Votes,
				CreatedAt:   idea.CreatedAt,
			})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func nonNilTags(tags models.Tags) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
