package main

import (
	"errors"
	"net/http"
	"strconv"

	"FredStoreAPI/internal/repository"
	"FredStoreAPI/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
}

func deleted(c echo.Context, entity string) error {
	return c.JSON(http.StatusOK, map[string]string{"message": entity + " deleted successfully"})
}

// respondError maps service and repository errors to HTTP responses. entity
// names the resource in not-found and conflict messages.
func respondError(c echo.Context, logger *zap.Logger, entity string, err error) error {
	var (
		verr  *services.ValidationError
		vErrs validator.ValidationErrors
	)
	switch {
	case errors.Is(err, errInvalidRequest):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	case errors.As(err, &vErrs):
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":   "validation failed",
			"details": validationDetails(vErrs),
		})
	case errors.As(err, &verr):
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":   "validation failed",
			"details": verr.Fields,
		})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": entity + " not found"})
	case errors.Is(err, repository.ErrHasDependents):
		return c.JSON(http.StatusConflict, map[string]string{"error": entity + " has dependent records"})
	case errors.Is(err, repository.ErrDuplicate):
		return c.JSON(http.StatusConflict, map[string]string{"error": entity + " already exists"})
	case errors.Is(err, repository.ErrInvalidReference):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "referenced record does not exist"})
	case errors.Is(err, repository.ErrConstraint):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	logger.Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
