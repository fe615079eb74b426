package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jaekwang-park/todo-labels/internal/middleware"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		inbound  string
		wantSame bool
	}{
		{name: "generates when missing", inbound: ""},
		{name: "propagates inbound", inbound: "upstream-1", wantSame: true},
		{name: "replaces oversized inbound", inbound: strings.Repeat("a", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			e := newEcho(middleware.RequestID())
			e.GET("/", func(c echo.Context) error {
				seen = middleware.GetRequestID(c.Request().Context())
				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inbound != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.inbound)
			}
			w := serve(e, req)

			if tt.wantSame {
				if seen != tt.inbound {
					t.Errorf("expected %q, got %q", tt.inbound, seen)
				}
			} else if _, err := uuid.Parse(seen); err != nil {
				t.Errorf("expected generated uuid, got %q", seen)
			}
			if got := w.Header().Get(middleware.RequestIDHeader); got != seen {
				t.Errorf("expected response header %q, got %q", seen, got)
			}
		})
	}
}

func TestRequestID_OnUnknownRoute(t *testing.T) {
	e := newEcho(middleware.RequestID())

	w := serve(e, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected a request id on error responses too")
	}
}
