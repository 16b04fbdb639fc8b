// Package config holds the immutable settings of the order form: the
// endpoint, the topping catalog, the user-facing strings and logging.
//
// Defaults reproduce the stock pizza form. An optional YAML file may
// override any subset of them; absent keys keep their default.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"pizzaorder/internal/domain"
)

// DefaultEndpoint is where orders are posted unless configured otherwise.
const DefaultEndpoint = "http://localhost:9009/api/order"

// Config is the full runtime configuration.
type Config struct {
	Endpoint  string            `yaml:"endpoint"`
	Timeout   string            `yaml:"timeout,omitempty"` // e.g. "10s"; empty or "0" waits forever
	Toppings  []domain.Topping  `yaml:"toppings"`
	SizeWords map[string]string `yaml:"size_words"`
	Messages  Messages          `yaml:"messages"`
	Log       LogConfig         `yaml:"log"`
}

// Messages are the fixed strings shown to the user.
type Messages struct {
	FullNameRequired string `yaml:"full_name_required"`
	FullNameTooShort string `yaml:"full_name_too_short"`
	FullNameTooLong  string `yaml:"full_name_too_long"`
	SizeRequired     string `yaml:"size_required"`
	SizeIncorrect    string `yaml:"size_incorrect"`
	SubmitFailure    string `yaml:"submit_failure"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`                 // debug, info, warn, error
	Development bool   `yaml:"development,omitempty"` // console encoder instead of JSON
	File        string `yaml:"file,omitempty"`        // output path; required for logs from the interactive form
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		Toppings: []domain.Topping{
			{ID: "1", Text: "Pepperoni"},
			{ID: "2", Text: "Green Peppers"},
			{ID: "3", Text: "Pineapple"},
			{ID: "4", Text: "Mushrooms"},
			{ID: "5", Text: "Ham"},
		},
		SizeWords: map[string]string{
			"S": "small",
			"M": "medium",
			"L": "large",
		},
		Messages: Messages{
			FullNameRequired: "Full name is required",
			FullNameTooShort: "full name must be at least 3 characters",
			FullNameTooLong:  "full name must be at most 20 characters",
			SizeRequired:     "Size is required",
			SizeIncorrect:    "size must be S or M or L",
			SubmitFailure:    "Something went wrong while submitting your order. Please try again.",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load returns Default overlaid with the YAML file at path.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can drive the form.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("endpoint %q must be an absolute URL", c.Endpoint)
	}
	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
	}
	if len(c.Toppings) == 0 {
		return errors.New("at least one topping is required")
	}
	seen := make(map[string]bool, len(c.Toppings))
	for i, t := range c.Toppings {
		if t.ID == "" {
			return fmt.Errorf("topping %d: id is required", i)
		}
		if seen[t.ID] {
			return fmt.Errorf("topping %d: duplicate id %q", i, t.ID)
		}
		seen[t.ID] = true
	}
	for _, s := range domain.Sizes() {
		if c.SizeWords[s.String()] == "" {
			return fmt.Errorf("size_words: missing word for %s", s)
		}
	}
	if c.Messages.SubmitFailure == "" {
		return errors.New("messages.submit_failure is required")
	}
	return nil
}

// GetTimeout returns the per-request timeout (0 = none).
func (c Config) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// Catalog returns a copy of the configured toppings.
func (c Config) Catalog() domain.ToppingCatalog {
	return append(domain.ToppingCatalog(nil), c.Toppings...)
}

// SizeWordMap returns a copy of the size words keyed by size code.
func (c Config) SizeWordMap() map[domain.Size]string {
	out := make(map[domain.Size]string, len(c.SizeWords))
	for k, v := range c.SizeWords {
		out[domain.Size(k)] = v
	}
	return out
}
