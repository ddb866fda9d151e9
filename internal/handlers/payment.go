package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
)

//go:generate mockgen -source=payment.go -destination=payment_mock.go -package=handlers

// PaymentCompleter marks payments done.
type PaymentCompleter interface {
	Complete(ctx context.Context, id string) (models.CheckoutSnapshot, error)
}

// ThankYouReader returns the post-payment redirect countdown.
type ThankYouReader interface {
	ThankYou(id string) (models.ThankYouView, error)
}

// Redirector consumes the post-payment redirect URL.
type Redirector interface {
	RedirectNow(ctx context.Context, id string) (models.ThankYouView, error)
}

// NewCompletePaymentHandler returns an HTTP handler for "payment completed".
// @Summary Complete payment
// @Description Marks the payment done without asking the backend and navigates to the thank-you step.
// @Tags payment
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.CheckoutSnapshot
// @Failure 404 {object} models.ErrorResponse "Checkout not found"
// @Failure 409 {object} models.ErrorResponse "Action not allowed in current state"
// @Router /checkout/{id}/complete [post]
func NewCompletePaymentHandler(svc PaymentCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		snap, err := svc.Complete(r.Context(), id)
		writeSnapshot(w, "complete", id, snap, err)
	}
}

// NewThankYouHandler returns an HTTP handler returning the redirect countdown.
// @Summary Thank-you step
// @Tags payment
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.ThankYouView
// @Failure 404 {object} models.ErrorResponse "Checkout not found"
// @Failure 409 {object} models.ErrorResponse "Action not allowed in current state"
// @Router /checkout/{id}/thankyou [get]
func NewThankYouHandler(svc ThankYouReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		view, err := svc.ThankYou(id)
		if err != nil {
			writeSnapshot(w, "thankyou", id, models.CheckoutSnapshot{}, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// NewRedirectNowHandler returns an HTTP handler consuming the redirect URL at once.
// @Summary Redirect now
// @Tags payment
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.ThankYouView
// @Failure 404 {object} models.ErrorResponse "Checkout not found"
// @Failure 409 {object} models.ErrorResponse "Action not allowed in current state"
// @Router /checkout/{id}/thankyou/redirect [post]
func NewRedirectNowHandler(svc Redirector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		view, err := svc.RedirectNow(r.Context(), id)
		if err != nil {
			writeSnapshot(w, "redirect", id, models.CheckoutSnapshot{}, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}
