package bill

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/tipsplit/internal/bill/tip"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"meta"`
}

func serve(t *testing.T, h *Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return rec, env
}

func TestHandler_GetByID(t *testing.T) {
	svc, _ := newTestService(fakeParticipants{1: {
		{ID: 10, Name: "Ann", CustomAmount: f(20), CurrencyID: id(2)},
		{ID: 11, Name: "Bob"},
	}})
	h := NewHandler(svc)

	rec, env := serve(t, h, http.MethodGet, "/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got BillResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.InDelta(t, 100, got.TipAmount, 1e-9)
	assert.InDelta(t, 1100, got.TotalAmount, 1e-9)
	require.Len(t, got.Participants, 2)

	ann := got.Participants[0]
	assert.Equal(t, "Ann", ann.Name)
	assert.Equal(t, int64(2), ann.CurrencyID)
	require.NotNil(t, ann.TotalAmount)
	assert.InDelta(t, 10, *ann.TotalAmount, 1e-9)
	require.NotNil(t, ann.AmountInParticipantCurrency)
	assert.InDelta(t, 20, *ann.AmountInParticipantCurrency, 1e-9)
	assert.Equal(t, "10.00 EUR", ann.DisplayAmount)
	assert.Equal(t, "10%", ann.DisplayPercent)
	assert.Equal(t, tip.OverrideAmount, ann.ResolvedBy)
	assert.True(t, ann.Valid)

	bob := got.Participants[1]
	assert.Equal(t, int64(1), bob.CurrencyID)
	assert.Equal(t, tip.OverrideNone, bob.ResolvedBy)
	assert.Equal(t, "90.00 EUR", bob.DisplayAmount)

	require.NotNil(t, got.Summary)
	assert.True(t, got.Summary.CanCommit)
	assert.Equal(t, "0.00 EUR", got.Summary.DisplayRemaining)
}

func TestHandler_GetByIDErrors(t *testing.T) {
	svc, _ := newTestService(fakeParticipants{})
	h := NewHandler(svc)

	rec, _ := serve(t, h, http.MethodGet, "/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env := serve(t, h, http.MethodGet, "/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestHandler_Create(t *testing.T) {
	svc, _ := newTestService(fakeParticipants{})
	h := NewHandler(svc)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"amount": 80, "tip_percent": 0.15, "currency_id": 1}`, http.StatusCreated},
		{"no tip", `{"amount": 80, "currency_id": 2}`, http.StatusCreated},
		{"tip percent above one", `{"amount": 80, "tip_percent": 15, "currency_id": 1}`, http.StatusBadRequest},
		{"negative amount", `{"amount": -1, "currency_id": 1}`, http.StatusBadRequest},
		{"missing currency", `{"amount": 80}`, http.StatusBadRequest},
		{"unknown currency", `{"amount": 80, "currency_id": 42}`, http.StatusBadRequest},
		{"malformed", `{"amount":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := serve(t, h, http.MethodPost, "/", tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandler_List(t *testing.T) {
	svc, store := newTestService(fakeParticipants{})
	for i := 0; i < 4; i++ {
		_, err := store.Create(context.Background(), &CreateBillRequest{Amount: 10, CurrencyID: 1})
		require.NoError(t, err)
	}
	h := NewHandler(svc)

	rec, env := serve(t, h, http.MethodGet, "/?page=2&per_page=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []BillResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 2)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 5, env.Meta.Total)
	assert.Equal(t, 3, env.Meta.TotalPages)
}

func TestHandler_UpdateAndDelete(t *testing.T) {
	svc, _ := newTestService(fakeParticipants{})
	h := NewHandler(svc)

	rec, env := serve(t, h, http.MethodPatch, "/1", `{"tip_percent": 0.2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var got BillResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.InDelta(t, 200, got.TipAmount, 1e-9)

	rec, _ = serve(t, h, http.MethodDelete, "/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, h, http.MethodDelete, "/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_PreviewOverallocation(t *testing.T) {
	svc, _ := newTestService(fakeParticipants{})
	h := NewHandler(svc)

	body := `{"participants": [
		{"name": "Ann", "custom_amount": 80},
		{"name": "Bob", "custom_amount": 40},
		{"name": "Cal"}
	]}`
	rec, env := serve(t, h, http.MethodPost, "/1/allocation", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var got BillResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.NotNil(t, got.Summary)
	assert.True(t, got.Summary.Overallocated)
	assert.False(t, got.Summary.CanCommit)
	require.NotNil(t, got.Summary.Remaining)
	assert.InDelta(t, -20, *got.Summary.Remaining, 1e-9)
	require.NotNil(t, got.Participants[2].TotalAmount)
	assert.Equal(t, 0.0, *got.Participants[2].TotalAmount)
}

func TestHandler_PreviewRejectsMissingName(t *testing.T) {
	svc, _ := newTestService(fakeParticipants{})
	h := NewHandler(svc)

	rec, env := serve(t, h, http.MethodPost, "/1/allocation", `{"participants": [{"custom_amount": 5}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}
