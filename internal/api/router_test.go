package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"pizzaorder/internal/api"
	"pizzaorder/internal/api/handlers"
	"pizzaorder/internal/config"
	"pizzaorder/internal/domain"
	"pizzaorder/internal/orderapi"
	"pizzaorder/internal/services/submission"
	"pizzaorder/internal/services/validation"
)

func newRouter(t *testing.T, rate float64, log *zap.Logger) http.Handler {
	t.Helper()
	cfg := config.Default()
	return api.NewRouter(api.Options{
		Validator: validation.New(validation.Messages{
			FullNameRequired: cfg.Messages.FullNameRequired,
			FullNameTooShort: cfg.Messages.FullNameTooShort,
			FullNameTooLong:  cfg.Messages.FullNameTooLong,
			SizeRequired:     cfg.Messages.SizeRequired,
			SizeIncorrect:    cfg.Messages.SizeIncorrect,
		}),
		Catalog:       cfg.Catalog(),
		SizeWords:     cfg.SizeWordMap(),
		Logger:        log,
		RatePerSecond: rate,
		Burst:         1,
	})
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPlaceOrder_Accepted(t *testing.T) {
	h := newRouter(t, 0, nil)

	rec := post(t, h, `{"fullName":"  Jane Doe ","size":"L","toppings":["1","3"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp handlers.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Thank you for your order, Jane Doe! Your large pizza with 2 toppings is on the way.", resp.Message)
	assert.Equal(t, "Jane Doe", resp.Order.FullName)
	assert.Equal(t, []string{"1", "3"}, resp.Order.Toppings)
}

func TestPlaceOrder_InvalidOrder(t *testing.T) {
	h := newRouter(t, 0, nil)

	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{
			name: "empty",
			body: `{"fullName":"","size":"","toppings":[]}`,
			want: map[string]string{"fullName": "Full name is required", "size": "Size is required"},
		},
		{
			name: "short name bad size",
			body: `{"fullName":"Al","size":"XL"}`,
			want: map[string]string{
				"fullName": "full name must be at least 3 characters",
				"size":     "size must be S or M or L",
			},
		},
		{
			name: "unknown topping",
			body: `{"fullName":"Jane","size":"S","toppings":["99"]}`,
			want: map[string]string{"toppings": "unknown topping 99"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "invalid_order", resp.Message)
			assert.Equal(t, tt.want, resp.Errors)
		})
	}
}

func TestPlaceOrder_BadJSON(t *testing.T) {
	rec := post(t, newRouter(t, 0, nil), `{"fullName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaceOrder_RateLimited(t *testing.T) {
	h := newRouter(t, 1, nil)
	body := `{"fullName":"Jane","size":"M","toppings":[]}`

	assert.Equal(t, http.StatusCreated, post(t, h, body).Code)
	rec := post(t, h, body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestToppingsAndHealth(t *testing.T) {
	h := newRouter(t, 0, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/toppings", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var catalog []domain.Topping
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	require.Len(t, catalog, 5)
	assert.Equal(t, "Pepperoni", catalog[0].Text)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_LogsRequests(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := newRouter(t, 0, zap.New(core))

	post(t, h, `{"fullName":"Jane","size":"S"}`)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/api/order", fields["path"])
	assert.EqualValues(t, http.StatusCreated, fields["status"])
	assert.Equal(t, 1, logs.FilterMessage("order received").Len())
}

// The form's submitter talks to the endpoint end to end.
func TestSubmitterAgainstRouter(t *testing.T) {
	srv := httptest.NewServer(newRouter(t, 0, nil))
	defer srv.Close()

	cfg := config.Default()
	sub := submission.New(orderapi.NewHTTP(srv.URL+"/api/order", srv.Client()), submission.Options{
		SizeWords:   cfg.SizeWordMap(),
		FailureText: cfg.Messages.SubmitFailure,
	}, zap.NewNop())

	outcome, err := sub.Submit(context.Background(), domain.OrderDraft{FullName: "Jane Doe", Size: domain.SizeSmall})
	require.NoError(t, err)
	assert.Equal(t, "Thank you for your order, Jane Doe! Your small pizza with no toppings is on the way.", outcome.Success)

	outcome, err = sub.Submit(context.Background(), domain.OrderDraft{FullName: "Jo", Size: domain.SizeSmall})
	require.Error(t, err)
	assert.Equal(t, cfg.Messages.SubmitFailure, outcome.Failure)
}
