package profile

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers profiling and map update routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/firstProfile", h.FirstProfile)
		r.Post("/mapUpdate", h.MapUpdate)
		r.Get("/questionnaire", h.Questionnaire)
		r.Get("/conversation/{userId}", h.GetConversation)
	})
}
