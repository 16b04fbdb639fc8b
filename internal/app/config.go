package app

import (
	"net/http"

	"go.uber.org/zap"

	"pizzaorder/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Settings config.Config // endpoint, catalog, messages
	HTTP     *http.Client  // optional; defaults to http.DefaultClient
	Logger   *zap.Logger   // optional; defaults to a no-op logger
}
