package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
)

//go:generate mockgen -source=cancel.go -destination=cancel_mock.go -package=handlers

// CancelRequester opens the cancellation dialog.
type CancelRequester interface {
	RequestCancel(id string) (models.CheckoutSnapshot, error)
}

// CancelConfirmer executes a requested cancellation.
type CancelConfirmer interface {
	ConfirmCancel(ctx context.Context, id string) (models.CheckoutSnapshot, error)
}

// CancelDismisser closes the cancellation dialog.
type CancelDismisser interface {
	DismissCancel(id string) (models.CheckoutSnapshot, error)
}

// NewRequestCancelHandler returns an HTTP handler opening the cancellation dialog.
// @Summary Request cancellation
// @Tags cancel
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.CheckoutSnapshot
// @Failure 404 {object} models.ErrorResponse "Checkout not found"
// @Failure 409 {object} models.ErrorResponse "Action not allowed in current state"
// @Router /checkout/{id}/cancel [post]
func NewRequestCancelHandler(svc CancelRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		snap, err := svc.RequestCancel(id)
		writeSnapshot(w, "cancel", id, snap, err)
	}
}

// NewConfirmCancelHandler returns an HTTP handler executing the cancellation.
// @Summary Confirm cancellation
// @Description Cancels the transaction on the backend. On failure the checkout keeps its state.
// @Tags cancel
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.CheckoutSnapshot
// @Failure 404 {object} models.ErrorResponse "Checkout not found"
// @Failure 409 {object} models.ErrorResponse "Action not allowed in current state"
// @Failure 502 {object} models.ErrorResponse "An error occurred while cancelling the transaction"
// @Router /checkout/{id}/cancel/confirm [post]
func NewConfirmCancelHandler(svc CancelConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		snap, err := svc.ConfirmCancel(r.Context(), id)
		writeSnapshot(w, "cancel confirm", id, snap, err)
	}
}

// NewDismissCancelHandler returns an HTTP handler closing the cancellation dialog.
// @Summary Dismiss cancellation
// @Tags cancel
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.CheckoutSnapshot
// @Failure 404 {object} models.ErrorResponse "Checkout not found"
// @Router /checkout/{id}/cancel/dismiss [post]
func NewDismissCancelHandler(svc CancelDismisser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		snap, err := svc.DismissCancel(id)
		writeSnapshot(w, "cancel dismiss", id, snap, err)
	}
}
