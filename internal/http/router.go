package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/jaekwang-park/todo-labels/internal/http/handler"
	"github.com/jaekwang-park/todo-labels/internal/middleware"
	"github.com/jaekwang-park/todo-labels/internal/service"
)

// NewRouter wires the todo and label routes. Middleware runs outermost first:
// request id, access log, panic recovery, then CORS.
func NewRouter(todoSvc *service.TodoService, labelSvc *service.LabelService, allowedOrigin string, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.Logging(logger))
	e.Use(middleware.Recovery(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{allowedOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	e.GET("/", handler.Root)
	e.GET("/health", handler.Health)

	todos := handler.NewTodoHandler(todoSvc)
	e.POST("/todos", todos.Create)
	e.GET("/todos", todos.All)
	e.GET("/todos/:id", todos.Find)
	e.PATCH("/todos/:id", todos.Update)
	e.DELETE("/todos/:id", todos.Delete)

	labels := handler.NewLabelHandler(labelSvc)
	e.POST("/label", labels.Create)
	e.GET("/label", labels.All)
	e.DELETE("/label/:id", labels.Delete)

	return e
}
