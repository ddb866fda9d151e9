package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/logger"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
)

//go:generate mockgen -source=options.go -destination=options_mock.go -package=handlers

// OptionLister lists the candidate options of a checkout.
type OptionLister interface {
	Options(id, query string) (models.OptionsResponse, error)
}

// OptionSelector records the payer's pick.
type OptionSelector interface {
	Select(id string, optionID int64) (models.CheckoutSnapshot, error)
}

// SelectionConfirmer confirms the pick and creates the deposit.
type SelectionConfirmer interface {
	Confirm(ctx context.Context, id string) (models.CheckoutSnapshot, error)
}

// NewListOptionsHandler returns an HTTP handler listing candidate options.
// @Summary List options
// @Description Candidates whose name contains q, ignoring case.
// @Tags checkout
// @Produce json
// @Param id path string true "Transaction ID"
// @Param q query string false "Search text"
// @Success 200 {object} models.OptionsResponse
// @Failure 404 {object} models.ErrorResponse "Checkout not found"
// @Router /checkout/{id}/options [get]
func NewListOptionsHandler(svc OptionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		resp, err := svc.Options(id, r.URL.Query().Get("q"))
		if err != nil {
			writeSnapshot(w, "options", id, models.CheckoutSnapshot{}, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewSelectOptionHandler returns an HTTP handler recording the payer's pick.
// @Summary Select option
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body models.SelectRequest true "Select Request"
// @Success 200 {object} models.CheckoutSnapshot
// @Failure 400 {object} models.ErrorResponse "Please select a payment method"
// @Failure 404 {object} models.ErrorResponse "Checkout not found"
// @Failure 409 {object} models.ErrorResponse "Action not allowed in current state"
// @Router /checkout/{id}/select [post]
func NewSelectOptionHandler(svc OptionSelector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req models.SelectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode select request", "id", id, "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.OptionID == nil {
			logger.Log.Warnw("select request without option", "id", id)
			writeError(w, http.StatusBadRequest, "Please select a payment method")
			return
		}

		snap, err := svc.Select(id, *req.OptionID)
		writeSnapshot(w, "select", id, snap, err)
	}
}

// NewConfirmSelectionHandler returns an HTTP handler confirming the pick.
// @Summary Confirm selection
// @Description Creates the deposit with the picked option. Also retries a failed deposit creation.
// @Tags checkout
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.CheckoutSnapshot
// @Failure 400 {object} models.ErrorResponse "Please select a payment method"
// @Failure 409 {object} models.ErrorResponse "Operation already in progress"
// @Failure 502 {object} models.ErrorResponse "An error occurred while starting payment"
// @Router /checkout/{id}/confirm [post]
func NewConfirmSelectionHandler(svc SelectionConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		snap, err := svc.Confirm(r.Context(), id)
		writeSnapshot(w, "confirm", id, snap, err)
	}
}
