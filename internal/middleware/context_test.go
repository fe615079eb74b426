package middleware_test

import (
	"context"
	"testing"

	"github.com/jaekwang-park/todo-labels/internal/middleware"
)

func TestSetAndGetRequestID(t *testing.T) {
	ctx := context.Background()

	if got := middleware.GetRequestID(ctx); got != "" {
		t.Errorf("expected empty, got %q", got)
	}

	ctx = middleware.SetRequestID(ctx, "req-abc")
	if got := middleware.GetRequestID(ctx); got != "req-abc" {
		t.Errorf("expected req-abc, got %q", got)
	}
}
