package payment

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/response"
)

func postJSON(t *testing.T, fn http.HandlerFunc, payload interface{}) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	fn(rec, req)

	var env response.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return rec, env
}

func TestConfirmHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unknown session", ErrSessionNotFound, http.StatusNotFound, response.CodeSessionNotFound},
		{"already confirmed", ErrSessionAlreadyUsed, http.StatusConflict, response.CodeSessionAlreadyUsed},
		{"expired", ErrSessionExpired, http.StatusGone, response.CodeSessionExpired},
		{"wrong token", ErrTokenMismatch, http.StatusUnauthorized, response.CodeTokenMismatch},
		{"funds drained since initiate", ErrInsufficientFunds, http.StatusConflict, response.CodeInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{confirmE: tt.err}
			h := NewHandler(newTestService(repo, &fakeNotifier{}))

			rec, env := postJSON(t, h.Confirm, &ConfirmRequest{
				SessionID: uuid.New().String(),
				Token:     "123456",
			})

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if env.Success {
				t.Error("envelope must not be successful")
			}
			if env.CodError != tt.wantCode {
				t.Errorf("cod_error = %s, want %s", env.CodError, tt.wantCode)
			}
		})
	}
}

func TestInitiateHandlerErrorMapping(t *testing.T) {
	owner := ownerWithBalance("150.00")

	tests := []struct {
		name       string
		repo       *fakeRepository
		notifier   *fakeNotifier
		req        *InitiateRequest
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown client",
			repo:       &fakeRepository{},
			notifier:   &fakeNotifier{},
			req:        &InitiateRequest{ClientID: uuid.New(), Amount: 10, Description: "valid description"},
			wantStatus: http.StatusNotFound,
			wantCode:   response.CodeClientNotFound,
		},
		{
			name:       "insufficient funds",
			repo:       &fakeRepository{owner: owner},
			notifier:   &fakeNotifier{},
			req:        &InitiateRequest{ClientID: owner.ClientID, Amount: 200, Description: "valid description"},
			wantStatus: http.StatusConflict,
			wantCode:   response.CodeInsufficientFunds,
		},
		{
			name:       "notifier down",
			repo:       &fakeRepository{owner: owner},
			notifier:   &fakeNotifier{err: errProviderDown},
			req:        &InitiateRequest{ClientID: owner.ClientID, Amount: 30, Description: "valid description"},
			wantStatus: http.StatusBadGateway,
			wantCode:   response.CodeNotificationFailed,
		},
		{
			name:       "validation failure",
			repo:       &fakeRepository{owner: owner},
			notifier:   &fakeNotifier{},
			req:        &InitiateRequest{ClientID: owner.ClientID, Amount: 30, Description: "abc"},
			wantStatus: http.StatusBadRequest,
			wantCode:   response.CodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(newTestService(tt.repo, tt.notifier))

			rec, env := postJSON(t, h.Initiate, tt.req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if env.CodError != tt.wantCode {
				t.Errorf("cod_error = %s, want %s", env.CodError, tt.wantCode)
			}
		})
	}
}

func TestInitiateHandlerSuccess(t *testing.T) {
	owner := ownerWithBalance("150.00")
	repo := &fakeRepository{owner: owner}
	h := NewHandler(newTestService(repo, &fakeNotifier{}))

	rec, env := postJSON(t, h.Initiate, &InitiateRequest{
		ClientID:    owner.ClientID,
		Amount:      30,
		Description: "movie tickets",
	})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if !env.Success || env.CodError != response.CodeSuccess {
		t.Errorf("envelope = %+v", env)
	}
}
