package handlers

import "net/http"

// RootResponse is returned by the health endpoint.
// swagger:model RootResponse
type RootResponse struct {
	// default: IdeaBoard API is running!
	Message string `json:"message"`
}

// NewRootHandler returns a liveness endpoint.
// @Summary API status
// @Tags status
// @Produce json
// @Success 200 {object} handlers.RootResponse
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RootResponse{Message: "IdeaBoard API is running!"})
	}
}
