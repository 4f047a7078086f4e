package client

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/response"
	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/validator"
)

// Handler handles client HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates client handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register registers a new client with a zero-balance wallet
// POST /clients
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		var verr *validator.Error
		switch {
		case errors.As(err, &verr):
			response.BadRequest(w, verr.Message)
		case errors.Is(err, ErrEmailTaken):
			response.Conflict(w, response.CodeDuplicateKey, "The email is already registered")
		case errors.Is(err, ErrDocNumberTaken):
			response.Conflict(w, response.CodeDuplicateKey, "The document number is already registered")
		default:
			log.Error().Err(err).Msg("register client failed")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, result)
}

// Get returns a client by id
// GET /clients/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "The id must be a valid UUID")
		return
	}

	result, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, response.CodeClientNotFound, "Client not found")
			return
		}
		log.Error().Err(err).Str("client_id", id.String()).Msg("get client failed")
		response.InternalError(w)
		return
	}

	response.OK(w, result)
}
