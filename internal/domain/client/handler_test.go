package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/response"
)

func newTestHandler(repo Repository) *Handler {
	return NewHandler(NewService(repo))
}

func doRegister(t *testing.T, h *Handler, payload interface{}) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	var env response.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return rec, env
}

func TestRegisterHandlerSuccessEnvelope(t *testing.T) {
	h := newTestHandler(&fakeRepository{})

	rec, env := doRegister(t, h, validRequest())

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if !env.Success || env.CodError != response.CodeSuccess {
		t.Errorf("envelope = %+v, want success with cod_error %q", env, response.CodeSuccess)
	}
	if env.Data == nil {
		t.Error("expected data in envelope")
	}
}

func TestRegisterHandlerValidationFailure(t *testing.T) {
	h := newTestHandler(&fakeRepository{})

	req := validRequest()
	req.Email = "broken"
	rec, env := doRegister(t, h, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if env.Success || env.CodError != response.CodeValidationFailed {
		t.Errorf("envelope = %+v, want VALIDATION_FAILED", env)
	}
	if env.MessageError != "email must be a valid email address" {
		t.Errorf("message = %q", env.MessageError)
	}
}

func TestRegisterHandlerDuplicateMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"duplicate email", ErrEmailTaken, "The email is already registered"},
		{"duplicate doc number", ErrDocNumberTaken, "The document number is already registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&fakeRepository{createErr: tt.err})

			rec, env := doRegister(t, h, validRequest())

			if rec.Code != http.StatusConflict {
				t.Errorf("status = %d, want 409", rec.Code)
			}
			if env.CodError != response.CodeDuplicateKey {
				t.Errorf("cod_error = %s, want DUPLICATE_KEY", env.CodError)
			}
			if env.MessageError != tt.wantMsg {
				t.Errorf("message = %q, want %q", env.MessageError, tt.wantMsg)
			}
		})
	}
}

func TestRegisterHandlerMalformedBody(t *testing.T) {
	h := newTestHandler(&fakeRepository{})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetHandler(t *testing.T) {
	repo := &fakeRepository{}
	h := newTestHandler(repo)

	resp, err := NewService(repo).Register(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
	}{
		{"existing client", "/" + resp.ID.String(), http.StatusOK, response.CodeSuccess},
		{"unknown client", "/" + uuid.New().String(), http.StatusNotFound, response.CodeClientNotFound},
		{"malformed id", "/not-a-uuid", http.StatusBadRequest, response.CodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			h.Routes().ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var env response.Envelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if env.CodError != tt.wantCode {
				t.Errorf("cod_error = %s, want %s", env.CodError, tt.wantCode)
			}
		})
	}
}

type erroringRepository struct{}

func (erroringRepository) Create(ctx context.Context, c *Client) (*WalletInfo, error) {
	return nil, context.DeadlineExceeded
}

func (erroringRepository) GetByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	return nil, ErrNotFound
}

func TestRegisterHandlerPersistenceFailure(t *testing.T) {
	h := newTestHandler(erroringRepository{})

	rec, env := doRegister(t, h, validRequest())

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if env.CodError != response.CodePersistenceError {
		t.Errorf("cod_error = %s, want PERSISTENCE_ERROR", env.CodError)
	}
}
