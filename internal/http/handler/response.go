package handler

import (
	"github.com/labstack/echo/v4"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func WriteJSON(c echo.Context, status int, data any) error {
	return c.JSON(status, data)
}

func WriteError(c echo.Context, status int, code, message string) error {
	return WriteJSON(c, status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}
