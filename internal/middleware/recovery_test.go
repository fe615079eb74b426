package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jaekwang-park/todo-labels/internal/http/handler"
	"github.com/jaekwang-park/todo-labels/internal/middleware"
)

func TestRecovery_NoPanic(t *testing.T) {
	logger, logBuf := newTestLogger()
	e := newEcho(middleware.Recovery(logger))
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	w := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if logBuf.Len() != 0 {
		t.Errorf("expected nothing logged, got: %s", logBuf.String())
	}
}

func TestRecovery_RendersJSONError(t *testing.T) {
	logger, logBuf := newTestLogger()
	e := newEcho(middleware.Recovery(logger))
	e.GET("/todos/:id", func(c echo.Context) error {
		panic("something went wrong")
	})

	w := serve(e, httptest.NewRequest(http.MethodGet, "/todos/3", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var result handler.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("expected code=INTERNAL_ERROR, got %s", result.Error.Code)
	}
	if strings.Contains(result.Error.Message, "something went wrong") {
		t.Errorf("panic value leaked to the client: %s", result.Error.Message)
	}

	for _, want := range []string{"panic recovered", "route=/todos/:id", "something went wrong"} {
		if !bytes.Contains(logBuf.Bytes(), []byte(want)) {
			t.Errorf("expected log to contain %q, got: %s", want, logBuf.String())
		}
	}
}

func TestRecovery_PanicAfterResponseCommitted(t *testing.T) {
	logger, logBuf := newTestLogger()
	e := newEcho(middleware.Recovery(logger))
	e.GET("/", func(c echo.Context) error {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "partial"})
		panic("panic after write")
	})

	w := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 (already written), got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "INTERNAL_ERROR") {
		t.Errorf("error body appended to committed response: %s", w.Body.String())
	}
	if !bytes.Contains(logBuf.Bytes(), []byte("panic recovered")) {
		t.Error("expected panic to be logged")
	}
}

func TestRecovery_LoggedWithRequestIDAndStatus(t *testing.T) {
	logger, logBuf := newTestLogger()
	e := newEcho(middleware.RequestID(), middleware.Logging(logger), middleware.Recovery(logger))
	e.PATCH("/todos/:id", func(c echo.Context) error {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodPatch, "/todos/1", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-panic")
	w := serve(e, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
	logs := logBuf.String()
	if strings.Count(logs, "request_id=req-panic") != 2 {
		t.Errorf("expected panic and access log to carry the request id, got: %s", logs)
	}
	if !strings.Contains(logs, "status=500") {
		t.Errorf("expected access log with status 500, got: %s", logs)
	}
}
