package api

import (
	"net/http"

	"github.com/labstack/echo/v5"
)

type responseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg)
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return c.JSON(status, map[string]any{
		"error": responseError{
			Message: msg,
			Type:    errType,
		},
	})
}
