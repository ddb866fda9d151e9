package services

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
)

// Payer-facing messages.
const (
	msgSelectionRequired = "Please select a payment method"
	msgLoadTransaction   = "An error occurred while loading transaction data"
	msgStartPayment      = "An error occurred while starting payment"
	msgCancel            = "An error occurred while cancelling the transaction"
)

// session is the state of one checkout, addressed by the transaction id from
// the URL. All fields are guarded by mu.
type session struct {
	mu sync.Mutex

	id    string
	state models.CheckoutState

	tx       *models.Transaction
	options  []models.Option
	selected *int64

	// optionID is the option the deposit is created with; resume is the
	// state restored when the creation fails.
	optionID int64
	resume   models.CheckoutState

	instructions *models.DepositInstructions
	timer        *ExpiryTimer
	stopTimer    context.CancelFunc

	cancelDialog bool
	inflight     bool
	closed       bool // set once the session is dropped from the registry
	errMsg       string
	navigation   string

	redirectURL      string
	redirectDeadline time.Time
	redirectTimer    *time.Timer
	redirectConsumed bool
}

func newSession(id string) *session {
	return &session{id: id, state: models.StateInit}
}

// cancellable reports whether the payer may abandon the checkout in the current state.
func (s *session) cancellable() bool {
	switch s.state {
	case models.StatePrompting, models.StateSelected, models.StateAwaitingPayment:
		return true
	}
	return false
}

// retryable reports whether confirm re-runs deposit creation from the current state.
func (s *session) retryable() bool {
	switch s.state {
	case models.StateSkipped, models.StateAutoSelected, models.StateSelected:
		return true
	}
	return false
}

// teardown stops the background activity of the session without side effects.
// Callers hold mu.
func (s *session) teardown() {
	if s.stopTimer != nil {
		s.stopTimer()
		s.stopTimer = nil
	}
	if s.redirectTimer != nil {
		s.redirectTimer.Stop()
		s.redirectTimer = nil
	}
}

// close marks the session dropped and stops its background activity.
// Callers hold mu.
func (s *session) close() {
	s.closed = true
	s.teardown()
}

// snapshot returns the externally visible state. Callers hold mu.
func (s *session) snapshot(now time.Time) models.CheckoutSnapshot {
	snap := models.CheckoutSnapshot{
		ID:               s.id,
		State:            s.state,
		Title:            models.PaymentMethodGeneric.String(),
		Transaction:      s.tx,
		CancelDialogOpen: s.cancelDialog,
		Loading:          s.inflight,
		Error:            s.errMsg,
		Navigation:       s.navigation,
	}
	if s.tx != nil {
		snap.Title = s.tx.PaymentMethod.String()
	}
	if s.selected != nil {
		id := *s.selected
		snap.SelectedOptionID = &id
	}

	switch s.state {
	case models.StatePrompting, models.StateSelected:
		snap.Options = append([]models.Option{}, s.options...)
		snap.EmptyResults = len(s.options) == 0
	case models.StateAwaitingPayment:
		if s.instructions != nil {
			snap.Payment = &models.PaymentDetails{
				Instructions:     *s.instructions,
				AddressLabel:     s.instructions.AddressLabel(),
				ShowAccountOwner: s.instructions.ShowsAccountOwner(),
				AmountUnit:       s.instructions.AmountUnit(),
			}
		}
	}

	if s.timer != nil && (s.state == models.StateAwaitingPayment || s.state == models.StateExpired) {
		view := countdownView(s.timer.expiresAt.Sub(now), s.timer.total)
		snap.Countdown = &view
	}
	return snap
}

// thankYou returns the post-payment redirect countdown. Callers hold mu.
func (s *session) thankYou(now time.Time) models.ThankYouView {
	if s.redirectURL == "" {
		return models.ThankYouView{}
	}
	if s.redirectConsumed {
		return models.ThankYouView{RedirectURL: s.redirectURL, Redirect: true}
	}

	left := s.redirectDeadline.Sub(now)
	secs := int((left + time.Second - 1) / time.Second)
	if secs < 0 {
		secs = 0
	}
	return models.ThankYouView{
		RedirectURL: s.redirectURL,
		SecondsLeft: secs,
		Redirect:    secs == 0,
	}
}
