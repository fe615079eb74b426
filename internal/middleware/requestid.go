package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const (
	RequestIDHeader    = echo.HeaderXRequestID
	maxRequestIDLength = 128
)

// RequestID propagates an inbound X-Request-ID or assigns a new UUID. The id
// is echoed on the response and stored in the request context, where service
// code and the error handler can read it back with GetRequestID.
func RequestID() echo.MiddlewareFunc {
	assign := echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			c.SetRequest(req.WithContext(SetRequestID(req.Context(), id)))
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		h := assign(next)
		return func(c echo.Context) error {
			header := c.Request().Header
			if len(header.Get(RequestIDHeader)) > maxRequestIDLength {
				header.Del(RequestIDHeader)
			}
			return h(c)
		}
	}
}
