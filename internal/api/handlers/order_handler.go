package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pizzaorder/internal/domain"
	"pizzaorder/internal/services/submission"
)

const maxBodyBytes = 1 << 16

// --- Response DTOs ---

type OrderResponse struct {
	ID       string              `json:"id"`
	Message  string              `json:"message"`
	Order    domain.OrderPayload `json:"order"`
	PlacedAt time.Time           `json:"placed_at"`
}

type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// --- Handler struct & constructor ---

type OrderHandler struct {
	validator domain.Validator
	catalog   domain.ToppingCatalog
	sizeWords map[domain.Size]string
	log       *zap.Logger
	now       func() time.Time
}

func NewOrderHandler(v domain.Validator, catalog domain.ToppingCatalog, sizeWords map[domain.Size]string, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		validator: v,
		catalog:   catalog,
		sizeWords: sizeWords,
		log:       log,
		now:       time.Now,
	}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// --- Handlers ---

// PlaceOrder handles POST /api/order.
// The order is validated with the same rules as the form, logged and
// acknowledged; nothing is stored.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderPayload
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid_body"})
		return
	}

	draft := domain.OrderDraft{FullName: req.FullName, Size: req.Size, Toppings: req.Toppings}
	if res := h.validator.Validate(draft); !res.Valid() {
		fields := make(map[string]string, len(res))
		for f, msg := range res {
			fields[f.String()] = msg
		}
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Message: "invalid_order", Errors: fields})
		return
	}
	for _, id := range req.Toppings {
		if _, ok := h.catalog.Lookup(id); !ok {
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
				Message: "invalid_order",
				Errors:  map[string]string{domain.FieldToppings.String(): "unknown topping " + id},
			})
			return
		}
	}

	id := uuid.NewString()
	payload := draft.Payload()
	h.log.Info("order received",
		zap.String("id", id),
		zap.String("full_name", payload.FullName),
		zap.String("size", payload.Size.String()),
		zap.Strings("toppings", payload.Toppings))

	writeJSON(w, http.StatusCreated, OrderResponse{
		ID:       id,
		Message:  submission.Confirmation(payload.FullName, h.sizeWords[payload.Size], len(payload.Toppings)),
		Order:    payload,
		PlacedAt: h.now().UTC(),
	})
}

// Toppings handles GET /api/toppings.
func (h *OrderHandler) Toppings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog)
}
