package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Recovery turns a handler panic into an error for echo's HTTPErrorHandler,
// which renders it as a JSON 500 unless the response was already committed.
func Recovery(logger *slog.Logger) echo.MiddlewareFunc {
	return echomw.RecoverWithConfig(echomw.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			req := c.Request()
			logger.Error("panic recovered",
				"error", err,
				"method", req.Method,
				"route", c.Path(),
				"request_id", GetRequestID(req.Context()),
				"stack", string(stack),
			)
			return err
		},
	})
}
