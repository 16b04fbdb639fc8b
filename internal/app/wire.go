package app

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"pizzaorder/internal/domain"
	"pizzaorder/internal/orderapi"
	"pizzaorder/internal/services/form"
	"pizzaorder/internal/services/submission"
	"pizzaorder/internal/services/validation"
)

// Wire bundles the services and clients for the CLI.
type Wire struct {
	Catalog   domain.ToppingCatalog
	Validator domain.Validator
	Submitter domain.Submitter
	Orders    domain.OrderClient
	HTTP      *http.Client
	Log       *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := cfg.Settings
	orders := orderapi.NewHTTP(s.Endpoint, httpClient)
	validator := validation.New(validation.Messages{
		FullNameRequired: s.Messages.FullNameRequired,
		FullNameTooShort: s.Messages.FullNameTooShort,
		FullNameTooLong:  s.Messages.FullNameTooLong,
		SizeRequired:     s.Messages.SizeRequired,
		SizeIncorrect:    s.Messages.SizeIncorrect,
	})
	submitter := submission.New(orders, submission.Options{
		SizeWords:   s.SizeWordMap(),
		FailureText: s.Messages.SubmitFailure,
		Timeout:     s.GetTimeout(),
	}, logger.Named("submission"))

	return &Wire{
		Catalog:   s.Catalog(),
		Validator: validator,
		Submitter: submitter,
		Orders:    orders,
		HTTP:      httpClient,
		Log:       logger,
	}, nil
}

// NewForm returns an empty form state bound to the wired validator.
func (w *Wire) NewForm() *form.State { return form.New(w.Validator) }
