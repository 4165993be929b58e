package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legal-connect/backend/internal/adapters/storage"
	"github.com/legal-connect/backend/internal/usecase"
	res "github.com/legal-connect/backend/pkg/http"
)

// serviceError maps the usecase error taxonomy onto HTTP statuses.
func serviceError(c echo.Context, err error) error {
	traceID := requestIDFromCtx(c)
	switch {
	case usecase.IsValidation(err):
		return res.ErrorJSON(c, http.StatusBadRequest, "validation_failed", err.Error(), traceID)
	case errors.Is(err, storage.ErrTooLarge), errors.Is(err, storage.ErrUnsupportedType):
		return res.ErrorJSON(c, http.StatusBadRequest, "invalid_document", err.Error(), traceID)
	case errors.Is(err, usecase.ErrUserExists):
		return res.ErrorJSON(c, http.StatusConflict, "user_exists", err.Error(), traceID)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return res.ErrorJSON(c, http.StatusUnauthorized, "invalid_credentials", err.Error(), traceID)
	case errors.Is(err, usecase.ErrForbidden):
		return res.ErrorJSON(c, http.StatusForbidden, "forbidden", err.Error(), traceID)
	case errors.Is(err, usecase.ErrNotFound):
		return res.ErrorJSON(c, http.StatusNotFound, "not_found", err.Error(), traceID)
	default:
		return res.ErrorJSON(c, http.StatusInternalServerError, "internal_error", "something went wrong", traceID)
	}
}

func requestIDFromCtx(c echo.Context) string {
	if reqID := c.Response().Header().Get(echo.HeaderXRequestID); reqID != "" {
		return reqID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
