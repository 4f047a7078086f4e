package wallet

import "github.com/go-chi/chi/v5"

// Routes returns wallet routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/topup", h.TopUp)
	r.Get("/{clientId}/balance", h.GetBalance)
	r.Get("/{clientId}/transactions", h.ListTransactions)
	return r
}
