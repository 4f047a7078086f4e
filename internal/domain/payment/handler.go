package payment

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/response"
	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/validator"
)

// Handler handles payment HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates payment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Initiate starts a payment pending token confirmation
// POST /payments/initiate
func (h *Handler) Initiate(w http.ResponseWriter, r *http.Request) {
	var req InitiateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.Initiate(r.Context(), &req)
	if err != nil {
		var verr *validator.Error
		switch {
		case errors.As(err, &verr):
			response.BadRequest(w, verr.Message)
		case errors.Is(err, ErrInvalidAmount):
			response.BadRequest(w, "The amount must be greater than zero")
		case errors.Is(err, ErrAmountTooLarge):
			response.BadRequest(w, "The amount exceeds the allowed maximum")
		case errors.Is(err, ErrWalletNotFound):
			response.NotFound(w, response.CodeClientNotFound, "Client not found")
		case errors.Is(err, ErrInsufficientFunds):
			response.Conflict(w, response.CodeInsufficientFunds, "Insufficient funds")
		case errors.Is(err, ErrNotificationFailed):
			response.Fail(w, http.StatusBadGateway, response.CodeNotificationFailed, "The confirmation token could not be delivered")
		default:
			log.Error().Err(err).Msg("initiate payment failed")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, result)
}

// Confirm settles a pending payment
// POST /payments/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.Confirm(r.Context(), &req)
	if err != nil {
		var verr *validator.Error
		switch {
		case errors.As(err, &verr):
			response.BadRequest(w, verr.Message)
		case errors.Is(err, ErrSessionNotFound):
			response.NotFound(w, response.CodeSessionNotFound, "Payment session not found")
		case errors.Is(err, ErrSessionAlreadyUsed):
			response.Conflict(w, response.CodeSessionAlreadyUsed, "The payment session was already confirmed")
		case errors.Is(err, ErrSessionExpired):
			response.Fail(w, http.StatusGone, response.CodeSessionExpired, "The payment session has expired")
		case errors.Is(err, ErrTokenMismatch):
			response.Fail(w, http.StatusUnauthorized, response.CodeTokenMismatch, "The confirmation token does not match")
		case errors.Is(err, ErrInsufficientFunds):
			response.Conflict(w, response.CodeInsufficientFunds, "Insufficient funds")
		default:
			log.Error().Err(err).Msg("confirm payment failed")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, result)
}
