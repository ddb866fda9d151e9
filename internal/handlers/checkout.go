package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
)

//go:generate mockgen -source=checkout.go -destination=checkout_mock.go -package=handlers

// CheckoutStarter enters a checkout.
type CheckoutStarter interface {
	Start(ctx context.Context, id string) (models.CheckoutSnapshot, error)
}

// CheckoutReader returns the state of a checkout.
type CheckoutReader interface {
	Snapshot(id string) (models.CheckoutSnapshot, error)
}

// CheckoutLeaver drops a checkout.
type CheckoutLeaver interface {
	Leave(id string) error
}

// NewStartCheckoutHandler returns an HTTP handler entering the checkout of a transaction.
// @Summary Start checkout
// @Description Loads the transaction, resolves its payment option and creates the deposit when no choice is needed.
// @Tags checkout
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.CheckoutSnapshot
// @Failure 409 {object} models.ErrorResponse "Operation already in progress"
// @Failure 502 {object} models.ErrorResponse "An error occurred while loading transaction data"
// @Router /checkout/{id} [post]
func NewStartCheckoutHandler(svc CheckoutStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		snap, err := svc.Start(r.Context(), id)
		writeSnapshot(w, "start", id, snap, err)
	}
}

// NewGetCheckoutHandler returns an HTTP handler returning the state of a checkout.
// @Summary Get checkout
// @Tags checkout
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.CheckoutSnapshot
// @Failure 404 {object} models.ErrorResponse "Checkout not found"
// @Router /checkout/{id} [get]
func NewGetCheckoutHandler(svc CheckoutReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		snap, err := svc.Snapshot(id)
		writeSnapshot(w, "snapshot", id, snap, err)
	}
}

// NewLeaveCheckoutHandler returns an HTTP handler dropping a checkout. The
// countdown stops without expiring the payment.
// @Summary Leave checkout
// @Tags checkout
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse "Checkout not found"
// @Failure 409 {object} models.ErrorResponse "Operation already in progress"
// @Router /checkout/{id} [delete]
func NewLeaveCheckoutHandler(svc CheckoutLeaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := svc.Leave(id); err != nil {
			writeSnapshot(w, "leave", id, models.CheckoutSnapshot{}, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
