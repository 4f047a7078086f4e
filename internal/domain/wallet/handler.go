package wallet

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/response"
	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/validator"
)

// Handler handles wallet HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates wallet handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// TopUp credits a client's wallet
// POST /wallets/topup
func (h *Handler) TopUp(w http.ResponseWriter, r *http.Request) {
	var req TopUpRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.TopUp(r.Context(), &req)
	if err != nil {
		var verr *validator.Error
		switch {
		case errors.As(err, &verr):
			response.BadRequest(w, verr.Message)
		case errors.Is(err, ErrInvalidAmount):
			response.BadRequest(w, "The amount must be greater than zero")
		case errors.Is(err, ErrWalletNotFound):
			response.NotFound(w, response.CodeClientNotFound, "Client not found")
		default:
			log.Error().Err(err).Str("client_id", req.ClientID.String()).Msg("topup failed")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, result)
}

// GetBalance returns the wallet snapshot for a client
// GET /wallets/{clientId}/balance
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(chi.URLParam(r, "clientId"))
	if err != nil {
		response.BadRequest(w, "The clientId must be a valid UUID")
		return
	}

	result, err := h.service.GetBalance(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, ErrWalletNotFound) {
			response.NotFound(w, response.CodeClientNotFound, "Client not found")
			return
		}
		log.Error().Err(err).Str("client_id", clientID.String()).Msg("balance inquiry failed")
		response.InternalError(w)
		return
	}

	response.OK(w, result)
}

// ListTransactions returns a page of the client's transaction history
// GET /wallets/{clientId}/transactions?limit=&offset=
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(chi.URLParam(r, "clientId"))
	if err != nil {
		response.BadRequest(w, "The clientId must be a valid UUID")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	result, err := h.service.ListTransactions(r.Context(), clientID, limit, offset)
	if err != nil {
		if errors.Is(err, ErrWalletNotFound) {
			response.NotFound(w, response.CodeClientNotFound, "Client not found")
			return
		}
		log.Error().Err(err).Str("client_id", clientID.String()).Msg("list transactions failed")
		response.InternalError(w)
		return
	}

	response.OK(w, result)
}
