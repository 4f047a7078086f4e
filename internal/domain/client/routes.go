package client

import "github.com/go-chi/chi/v5"

// Routes returns client routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Register)
	r.Get("/{id}", h.Get)
	return r
}
