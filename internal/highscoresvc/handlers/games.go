package handlers

import (
	"net/http"
	"net/url"

	"github.com/avvvet/highscore-services/internal/highscoresvc/models"
	"github.com/go-chi/chi"
)

// GET /api/games[?title=]
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")

	games, err := h.games.ListGames(r.Context(), title)
	if err != nil {
		h.internalError(w, r, "GameService.ListGames", err)
		return
	}

	h.writeJSON(w, http.StatusOK, games)
}

// GET /api/games/{urlSlug}
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "urlSlug")

	game, err := h.games.GetGame(r.Context(), slug)
	if err != nil {
		h.internalError(w, r, "GameService.GetGame", err)
		return
	}

	if game == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, game)
}

// POST /api/games
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var in models.NewGame
	if err := h.decodeBody(r, &in); err != nil {
		h.badRequest(w, err)
		return
	}

	game, err := h.games.CreateGame(r.Context(), in)
	if err != nil {
		h.internalError(w, r, "GameService.CreateGame", err)
		return
	}

	w.Header().Set("Location", "/api/games/"+url.PathEscape(game.URLSlug))
	h.writeJSON(w, http.StatusCreated, game)
}

// DELETE /api/games/{urlSlug}
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "urlSlug")

	if err := h.games.DeleteGame(r.Context(), slug); err != nil {
		h.internalError(w, r, "GameService.DeleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /api/games/{urlSlug}/highscores
func (h *Handler) GetGameHighscores(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "urlSlug")

	scores, err := h.highscores.GetGameHighscores(r.Context(), slug)
	if err != nil {
		h.internalError(w, r, "HighscoreService.GetGameHighscores", err)
		return
	}

	h.writeJSON(w, http.StatusOK, scores)
}
