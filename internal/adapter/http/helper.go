package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"microloan-backend/internal/domain/client"
	"microloan-backend/internal/domain/creditconfig"
	"microloan-backend/internal/domain/installment"
	"microloan-backend/internal/domain/journal"
	"microloan-backend/internal/domain/loan"
	"microloan-backend/internal/domain/payment"
	"microloan-backend/internal/domain/schedule"
)

// respondError maps domain errors to HTTP status codes with a
// structured reason string.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, installment.ErrNotFound),
		errors.Is(err, payment.ErrNotFound),
		errors.Is(err, client.ErrNotFound),
		errors.Is(err, journal.ErrNotFound),
		errors.Is(err, creditconfig.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})

	case errors.Is(err, loan.ErrAlreadyApproved),
		errors.Is(err, loan.ErrInvalidTransition),
		errors.Is(err, creditconfig.ErrNoActive):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})

	case errors.Is(err, schedule.ErrInvalidInput),
		errors.Is(err, schedule.ErrUnknownMethod),
		errors.Is(err, creditconfig.ErrInvalidBounds),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, payment.ErrAllocationOverrun):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})

	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
}
