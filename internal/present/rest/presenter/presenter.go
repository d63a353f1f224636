package presenter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openparish/sacristy/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

func Created(c echo.Context, payload any) error {
	return c.JSON(http.StatusCreated, payload)
}

func BadRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func BadRequestMessage(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
}

// NotFound always renders the fixed body; resource details stay server-side.
func NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
}

func ServiceUnavailable(c echo.Context, err error) error {
	return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
}

func InternalError(c echo.Context, err error) error {
	slog.Error("internal error",
		slog.String("error", err.Error()),
		slog.String("path", c.Path()),
	)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// Error maps a domain error to its HTTP shape.
func Error(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return BadRequest(c, err)
	case errors.Is(err, domain.ErrUnauthorized):
		return Unauthorized(c)
	case errors.Is(err, domain.ErrNotFound):
		return NotFound(c)
	case errors.Is(err, domain.ErrUnavailable):
		return ServiceUnavailable(c, err)
	default:
		return InternalError(c, err)
	}
}
