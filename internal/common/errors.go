package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

// Error taxonomy used across services and repositories. Handlers map these
// to HTTP statuses with RespondError; everything else is treated as a
// storage failure and surfaced as a generic internal error.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrStorage         = errors.New("storage error")
)

// InvalidArgumentf wraps ErrInvalidArgument with a caller-facing message.
func InvalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidArgument}, args...)...)
}

// NotFoundf wraps ErrNotFound with the missing resource name.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

// WrapStorage classifies a database error. pgx.ErrNoRows becomes NotFound,
// unique-constraint violations become Conflict, anything else is a storage
// error carrying the operation name for the logs.
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %s: %s", ErrConflict, op, pgErr.ConstraintName)
	}
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}

// ErrorResponse is the JSON error envelope returned to clients.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newErrorResponse(code, message string) *ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	return &resp
}

// RespondError maps a taxonomy error to its HTTP status and JSON envelope.
// Storage errors are never echoed back verbatim; the caller only sees the
// taxonomy label.
func RespondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return c.JSON(http.StatusBadRequest, newErrorResponse("INVALID_ARGUMENT", err.Error()))
	case errors.Is(err, ErrNotFound):
		return c.JSON(http.StatusNotFound, newErrorResponse("NOT_FOUND", err.Error()))
	case errors.Is(err, ErrConflict):
		return c.JSON(http.StatusConflict, newErrorResponse("CONFLICT", err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, newErrorResponse("STORAGE_ERROR", "operation could not be completed"))
	}
}

// SendUnauthorizedError sends the standard 401 envelope.
func SendUnauthorizedError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, newErrorResponse("UNAUTHORIZED", "Unauthorized access"))
}
