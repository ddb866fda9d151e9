package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/logger"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
)

//go:generate mockgen -source=outcomes.go -destination=outcomes_mock.go -package=handlers

// OutcomeReader lists the recorded outcomes of a checkout.
type OutcomeReader interface {
	Outcomes(ctx context.Context, id string) ([]models.CheckoutOutcome, error)
}

// NewListOutcomesHandler returns an HTTP handler listing journaled outcomes.
// @Summary List outcomes
// @Description Terminal transitions recorded for the checkout, oldest first. Empty when the journal is disabled.
// @Tags checkout
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {array} models.CheckoutOutcome
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /checkout/{id}/outcomes [get]
func NewListOutcomesHandler(svc OutcomeReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		outcomes, err := svc.Outcomes(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("failed to list outcomes", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, outcomes)
	}
}

// NewHealthHandler returns an HTTP handler reporting liveness.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
