package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"pizzaorder/internal/domain"
)

// HTTP posts orders to a fixed endpoint.
type HTTP struct {
	Endpoint string
	HTTP     *http.Client
}

// NewHTTP returns a client for endpoint. A nil client means http.DefaultClient.
func NewHTTP(endpoint string, c *http.Client) *HTTP {
	if c == nil {
		c = http.DefaultClient
	}
	return &HTTP{Endpoint: endpoint, HTTP: c}
}

// PlaceOrder posts p and returns the JSON response body.
func (c *HTTP) PlaceOrder(ctx context.Context, p domain.OrderPayload) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.post(ctx, p, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTP) post(ctx context.Context, in any, out *json.RawMessage) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("order api post %s: %s", c.Endpoint, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("order api post %s: decode response: %w", c.Endpoint, err)
	}
	return nil
}

var _ domain.OrderClient = (*HTTP)(nil)
