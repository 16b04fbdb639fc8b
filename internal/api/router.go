// Package api serves the development order endpoint used by the pizza
// client during local runs and tests.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"pizzaorder/internal/api/handlers"
	"pizzaorder/internal/api/middleware"
	"pizzaorder/internal/domain"
)

// Options configures the router.
type Options struct {
	Validator domain.Validator
	Catalog   domain.ToppingCatalog
	SizeWords map[domain.Size]string
	Logger    *zap.Logger
	// RatePerSecond limits accepted requests; zero disables limiting.
	RatePerSecond float64
	Burst         int
}

// NewRouter builds the HTTP router for orderd.
func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(log))

	orderHandler := handlers.NewOrderHandler(opts.Validator, opts.Catalog, opts.SizeWords, log.Named("orders"))

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.RateLimit(opts.RatePerSecond, opts.Burst)).Post("/order", orderHandler.PlaceOrder)
		r.Get("/toppings", orderHandler.Toppings)
	})

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
