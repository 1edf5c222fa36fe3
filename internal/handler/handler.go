package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jms-catering/api/internal/catalog"
	"github.com/jms-catering/api/internal/order"
	"github.com/jms-catering/api/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service-layer sentinel errors onto HTTP statuses.
// Unknown errors are logged and reported as 500 without detail.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, order.ErrNotFound):
		writeError(w, http.StatusNotFound, "order not found")
	case errors.Is(err, catalog.ErrMenuItemNotFound):
		writeError(w, http.StatusNotFound, "menu item not found")
	case errors.Is(err, catalog.ErrPresetNotFound):
		writeError(w, http.StatusNotFound, "preset menu not found")
	case errors.Is(err, service.ErrCostNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrOrderLocked),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrNotCompleted):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidEstimateInput),
		errors.Is(err, service.ErrInvalidCost),
		errors.Is(err, service.ErrMissingLabel),
		errors.Is(err, service.ErrInvalidCostType),
		errors.Is(err, service.ErrInvalidPaymentStatus),
		errors.Is(err, service.ErrEmptyItems),
		errors.Is(err, service.ErrInvalidMealType),
		errors.Is(err, service.ErrInvalidGuestCount),
		errors.Is(err, service.ErrMissingCustomer),
		errors.Is(err, service.ErrInvalidEventDate),
		errors.Is(err, service.ErrPastEventDate),
		errors.Is(err, service.ErrMissingOptionChoice),
		errors.Is(err, service.ErrUnknownOptionGroup),
		errors.Is(err, service.ErrInvalidOptionChoice):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("ERROR: %s: %v", op, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
