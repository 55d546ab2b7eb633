// Package apiutil holds the request parsing and error mapping shared by the
// v1 handlers.
package apiutil

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-engine/internal/engineerror"
)

const dateLayout = "2006-01-02"

// Error maps a service error onto an HTTP status: validation failures are
// 400, missing records 404, anything else 500. Errors that already carry a
// status pass through.
func Error(message string, err error) error {
	var statusErr huma.StatusError
	switch {
	case errors.As(err, &statusErr):
		return err
	case engineerror.IsValidation(err):
		return huma.NewError(http.StatusBadRequest, message, err)
	case engineerror.IsNotFound(err):
		return huma.NewError(http.StatusNotFound, message, err)
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}

// ParseUUID parses a path or body id, reporting the field name on failure.
func ParseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return id, nil
}

// ParseRate parses an annual rate fraction such as "0.2199". Empty means 0.
func ParseRate(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	rate, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return rate, nil
}

// ParseTime accepts RFC3339 or a bare YYYY-MM-DD date, which is read as UTC
// midnight. Empty returns the zero time.
func ParseTime(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}
