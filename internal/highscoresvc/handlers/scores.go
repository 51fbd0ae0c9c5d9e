package handlers

import (
	"net/http"

	"github.com/avvvet/highscore-services/internal/highscoresvc/models"
)

// POST /api/scores
func (h *Handler) CreateScore(w http.ResponseWriter, r *http.Request) {
	var in models.NewScore
	if err := h.decodeBody(r, &in); err != nil {
		h.badRequest(w, err)
		return
	}

	score, err := h.scores.CreateScore(r.Context(), in)
	if err != nil {
		h.internalError(w, r, "ScoreService.CreateScore", err)
		return
	}

	// the insert does not return the new id, so point at the collection
	w.Header().Set("Location", "/api/scores")
	h.writeJSON(w, http.StatusCreated, score)
}

// GET /api/scores/highscores
func (h *Handler) ListHighscores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.highscores.ListHighscores(r.Context())
	if err != nil {
		h.internalError(w, r, "HighscoreService.ListHighscores", err)
		return
	}

	h.writeJSON(w, http.StatusOK, scores)
}
