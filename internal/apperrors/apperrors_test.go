package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &NotFoundError{Message: "Not found ask with id: x"}, http.StatusNotFound},
		{"forbidden", &ForbiddenError{Message: "no permission"}, http.StatusForbidden},
		{"unavailable", &UnavailableError{Message: "Rooms service not available. Try later"}, http.StatusServiceUnavailable},
		{"upstream keeps original status", &UpstreamError{Status: 404, Message: "Not found room with id: x"}, http.StatusNotFound},
		{"upstream conflict", &UpstreamError{Status: 409, Message: "conflict"}, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped error", fmt.Errorf("load ask: %w", &NotFoundError{Message: "gone"}), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
