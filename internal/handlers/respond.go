package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-deposit-checkout/internal/logger"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// errorStatus maps checkout errors to HTTP statuses.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrSelectionRequired),
		errors.Is(err, services.ErrUnknownOption),
		errors.Is(err, services.ErrInvalidTransactionID),
		errors.Is(err, services.ErrInvalidOptionID):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrOperationInFlight),
		errors.Is(err, services.ErrCancelNotRequested):
		return http.StatusConflict
	case errors.Is(err, services.ErrStepFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the payer-facing message of err.
func errorMessage(err error, status int, snap models.CheckoutSnapshot) string {
	if snap.Error != "" && (status == http.StatusBadRequest || status == http.StatusBadGateway) {
		return snap.Error
	}
	switch status {
	case http.StatusNotFound:
		return "Checkout not found"
	case http.StatusBadRequest:
		if errors.Is(err, services.ErrUnknownOption) {
			return "Unknown payment method"
		}
		return "Invalid request"
	case http.StatusConflict:
		if errors.Is(err, services.ErrOperationInFlight) {
			return "Operation already in progress"
		}
		return "Action not allowed in current state"
	case http.StatusBadGateway:
		return "Backend request failed"
	default:
		return "Internal server error"
	}
}

// writeSnapshot writes snap, or the error of a failed action on checkout id.
func writeSnapshot(w http.ResponseWriter, action, id string, snap models.CheckoutSnapshot, err error) {
	if err != nil {
		status := errorStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Log.Errorw("checkout action failed", "action", action, "id", id, "error", err)
		} else {
			logger.Log.Warnw("checkout action rejected", "action", action, "id", id, "error", err)
		}
		writeError(w, status, errorMessage(err, status, snap))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
