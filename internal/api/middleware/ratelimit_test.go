package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"pizzaorder/internal/api/middleware"
)

func TestRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	tests := []struct {
		name  string
		rate  float64
		burst int
		want  []int
	}{
		{"disabled", 0, 0, []int{204, 204, 204}},
		{"burst of two", 0.001, 2, []int{204, 204, 429}},
		{"burst clamped to one", 0.001, 0, []int{204, 429}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := middleware.RateLimit(tt.rate, tt.burst)(ok)
			for i, want := range tt.want {
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
				assert.Equal(t, want, rec.Code, "request %d", i)
			}
		})
	}
}
