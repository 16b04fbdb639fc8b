package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzaorder/internal/app"
	"pizzaorder/internal/config"
	"pizzaorder/internal/domain"
)

func TestNewWire_RejectsInvalidSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Endpoint = "not a url"
	_, err := app.NewWire(app.Config{Settings: cfg})
	assert.Error(t, err)
}

func TestNewWire_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"received"}`))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Endpoint = srv.URL + "/api/order"
	w, err := app.NewWire(app.Config{Settings: cfg, HTTP: srv.Client()})
	require.NoError(t, err)
	assert.Len(t, w.Catalog, 5)

	f := w.NewForm()
	f.SetFullName("Alice")
	f.SetSize(domain.SizeLarge)
	f.SetTopping("1", true)
	f.SetTopping("2", true)

	out, err := f.Submit(context.Background(), w.Submitter)
	require.NoError(t, err)
	assert.Equal(t, "Thank you for your order, Alice! Your large pizza with 2 toppings is on the way.", out.Success)
	assert.True(t, f.Draft().IsEmpty())
}

func TestNewWire_EndpointRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Endpoint = srv.URL + "/api/order"
	w, err := app.NewWire(app.Config{Settings: cfg, HTTP: srv.Client()})
	require.NoError(t, err)

	f := w.NewForm()
	f.SetFullName("Alice")
	f.SetSize(domain.SizeMedium)

	_, err = f.Submit(context.Background(), w.Submitter)
	require.Error(t, err)
	assert.Equal(t, cfg.Messages.SubmitFailure, f.Outcome().Failure)
	assert.Equal(t, "Alice", f.Draft().FullName)
	assert.False(t, f.InFlight())
}
