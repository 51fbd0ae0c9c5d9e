package handlers

import (
	"github.com/go-chi/chi"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.NotFound(h.NotFoundHandler)
	r.MethodNotAllowed(h.MethodNotAllowedHandler)

	r.Get("/health", h.HealthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/games", func(r chi.Router) {
			r.Get("/", h.ListGames)
			r.Post("/", h.CreateGame)
			r.Get("/{urlSlug}", h.GetGame)
			r.Delete("/{urlSlug}", h.DeleteGame)
			r.Get("/{urlSlug}/highscores", h.GetGameHighscores)
		})

		r.Route("/scores", func(r chi.Router) {
			r.Post("/", h.CreateScore)
			r.Get("/highscores", h.ListHighscores)
		})
	})
}
