package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzaorder/internal/domain"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pizza.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Len(t, cfg.Toppings, 5)
	assert.Equal(t, "medium", cfg.SizeWordMap()[domain.SizeMedium])
	assert.Zero(t, cfg.GetTimeout())
}

func TestLoad_EmptyPathAndMissingFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesKeepUnsetDefaults(t *testing.T) {
	path := writeFile(t, `
endpoint: http://orders.test:8080/api/order
timeout: 3s
size_words:
  L: huge
messages:
  submit_failure: try again later
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://orders.test:8080/api/order", cfg.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.GetTimeout())
	assert.Equal(t, "huge", cfg.SizeWords["L"])
	assert.Equal(t, "small", cfg.SizeWords["S"])
	assert.Equal(t, "try again later", cfg.Messages.SubmitFailure)
	assert.Equal(t, Default().Messages.FullNameTooShort, cfg.Messages.FullNameTooShort)
	assert.Equal(t, Default().Toppings, cfg.Toppings)
}

func TestLoad_ReplacesCatalog(t *testing.T) {
	path := writeFile(t, `
toppings:
  - id: a
    text: Anchovies
  - id: b
    text: Basil
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	cat := cfg.Catalog()
	require.Len(t, cat, 2)
	top, ok := cat.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, "Basil", top.Text)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "endpoint: [\n"},
		{"relative endpoint", "endpoint: /api/order\n"},
		{"bad timeout", "timeout: soon\n"},
		{"empty catalog", "toppings: []\n"},
		{"duplicate topping", "toppings:\n  - id: x\n    text: X\n  - id: x\n    text: Y\n"},
		{"blank topping id", "toppings:\n  - text: X\n"},
		{"blank size word", "size_words:\n  M: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	cfg := Default()
	cat := cfg.Catalog()
	cat[0].Text = "changed"
	assert.Equal(t, "Pepperoni", cfg.Toppings[0].Text)
}
