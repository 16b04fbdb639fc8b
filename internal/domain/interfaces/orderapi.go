package interfaces

import (
	"context"
	"encoding/json"

	domaintypes "pizzaorder/internal/domain/types"
)

// OrderClient is how we talk to the order endpoint.
type OrderClient interface {
	// PlaceOrder posts the payload and returns the raw JSON response body.
	PlaceOrder(ctx context.Context, p domaintypes.OrderPayload) (json.RawMessage, error)
}
