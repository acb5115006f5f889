// Package httpapi exposes the HTTP API layer of the service.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pawlig/pawlig/internal/obs"
	"github.com/pawlig/pawlig/internal/service"
)

// jsonError represents a JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: message, Details: details})
}

// WriteServiceError maps a service-layer error to a response. Expected
// kinds keep their detail; anything else is logged server-side and
// surfaced as an opaque internal error.
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation   *service.ValidationError
		notFound     *service.NotFoundError
		prodNotFound *service.ProductNotFoundError
		stock        *service.InsufficientStockError
		rule         *service.RuleError
	)
	switch {
	case errors.As(err, &validation):
		WriteJSONError(w, http.StatusBadRequest, "validation_error", validation.Error())
	case errors.As(err, &notFound):
		WriteJSONError(w, http.StatusNotFound, "not_found", notFound.Error())
	case errors.As(err, &prodNotFound):
		WriteJSONError(w, http.StatusBadRequest, "product_not_found", prodNotFound.Error())
	case errors.As(err, &stock):
		WriteJSONError(w, http.StatusBadRequest, "insufficient_stock", stock.Error())
	case errors.As(err, &rule):
		WriteJSONError(w, http.StatusBadRequest, rule.Code, rule.Message)
	default:
		obs.Logger.Error("internal_error",
			"request_id", RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
	}
}
