package response

import (
	"encoding/json"
	"io"
	"net/http"
)

// Error codes carried in the cod_error field. Callers drive control flow on
// these, not on HTTP semantics alone.
const (
	CodeSuccess            = "00"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeDuplicateKey       = "DUPLICATE_KEY"
	CodeClientNotFound     = "CLIENT_NOT_FOUND"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeSessionAlreadyUsed = "SESSION_ALREADY_USED"
	CodeSessionExpired     = "SESSION_EXPIRED"
	CodeTokenMismatch      = "TOKEN_MISMATCH"
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodeNotificationFailed = "NOTIFICATION_FAILED"
	CodePersistenceError   = "PERSISTENCE_ERROR"
)

// Envelope is the wire shape of every API response.
type Envelope struct {
	Success      bool        `json:"success"`
	CodError     string      `json:"cod_error"`
	MessageError string      `json:"message_error"`
	Data         interface{} `json:"data,omitempty"`
}

// DecodeJSON decodes JSON from request body into the provided struct
func DecodeJSON(body io.ReadCloser, v interface{}) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

// JSON sends an envelope with the given status
func JSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}

// OK sends a 200 success envelope
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, Envelope{Success: true, CodError: CodeSuccess, Data: data})
}

// Created sends a 201 success envelope
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, Envelope{Success: true, CodError: CodeSuccess, Data: data})
}

// Fail sends an error envelope
func Fail(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, Envelope{Success: false, CodError: code, MessageError: message})
}

// BadRequest sends a 400 validation failure
func BadRequest(w http.ResponseWriter, message string) {
	Fail(w, http.StatusBadRequest, CodeValidationFailed, message)
}

// NotFound sends a 404 with the given code
func NotFound(w http.ResponseWriter, code, message string) {
	Fail(w, http.StatusNotFound, code, message)
}

// Conflict sends a 409 with the given code
func Conflict(w http.ResponseWriter, code, message string) {
	Fail(w, http.StatusConflict, code, message)
}

// InternalError sends a 500 persistence failure
func InternalError(w http.ResponseWriter) {
	Fail(w, http.StatusInternalServerError, CodePersistenceError, "An unexpected error occurred")
}
