package models

import "time"

// CheckoutState is a step of the checkout flow.
type CheckoutState string

// Checkout flow states
const (
	StateInit            CheckoutState = "INIT"
	StateResolving       CheckoutState = "RESOLVING"
	StateSkipped         CheckoutState = "SKIPPED"
	StateAutoSelected    CheckoutState = "AUTO_SELECTED"
	StatePrompting       CheckoutState = "PROMPTING"
	StateSelected        CheckoutState = "SELECTED"
	StateCreatingDeposit CheckoutState = "CREATING_DEPOSIT"
	StateAwaitingPayment CheckoutState = "AWAITING_PAYMENT"
	StateCompleted       CheckoutState = "COMPLETED"
	StateCancelled       CheckoutState = "CANCELLED"
	StateExpired         CheckoutState = "EXPIRED"
)

// Terminal reports whether no further transition can follow s.
func (s CheckoutState) Terminal() bool {
	switch s {
	case StateCompleted, StateCancelled, StateExpired:
		return true
	}
	return false
}

// Navigation targets reached by terminal transitions.
const (
	NavigateThankYou = "/thankyou"
	NavigateCancel   = "/cancel"
	NavigateTimeout  = "/timeout"
)

// Countdown urgency bands.
const (
	UrgencyOK       = "ok"
	UrgencyWarn     = "warn"
	UrgencyCritical = "critical"
)

// CountdownView is what the payer sees of the deposit expiry countdown.
// swagger:model CountdownView
type CountdownView struct {
	// Remaining time formatted mm:ss
	// example: 00:59
	TimeLeft string `json:"timeLeft"`

	// Remaining share of the total duration, 0..100
	// example: 98.5
	Progress float64 `json:"progress"`

	// Urgency band derived from progress
	// example: ok
	Urgency string `json:"urgency"`

	// True once the deadline passed
	Expired bool `json:"expired"`

	// Remaining time, not serialized
	Remaining time.Duration `json:"-"`
}

// PaymentDetails is the display form of DepositInstructions.
// swagger:model PaymentDetails
type PaymentDetails struct {
	Instructions DepositInstructions `json:"instructions"`

	// "Wallet" or "IBAN"
	// example: IBAN
	AddressLabel string `json:"addressLabel"`

	// Whether the account owner row is shown
	ShowAccountOwner bool `json:"showAccountOwner"`

	// Currency or cryptocurrency code of the amount
	// example: USD
	AmountUnit string `json:"amountUnit"`
}

// CheckoutSnapshot is the externally visible state of a checkout session.
// swagger:model CheckoutSnapshot
type CheckoutSnapshot struct {
	// Transaction id from the URL
	// example: 1042
	ID string `json:"id"`

	// Current flow state
	// example: PROMPTING
	State CheckoutState `json:"state"`

	// Title shown above the flow
	// example: Bank Transfer
	Title string `json:"title"`

	Transaction *Transaction `json:"transaction,omitempty"`

	// Candidate options while prompting
	Options []Option `json:"options,omitempty"`

	// True when prompting with no candidates
	EmptyResults bool `json:"emptyResults"`

	// Currently picked option id
	SelectedOptionID *int64 `json:"selectedOptionId,omitempty"`

	Payment *PaymentDetails `json:"payment,omitempty"`

	Countdown *CountdownView `json:"countdown,omitempty"`

	// Whether the cancel confirmation dialog is open
	CancelDialogOpen bool `json:"cancelDialogOpen"`

	// True while a backend call is outstanding
	Loading bool `json:"loading"`

	// User-visible error message of the last failed step
	// example: Please select a payment method
	Error string `json:"error,omitempty"`

	// Navigation target once a terminal state is reached
	// example: /thankyou
	Navigation string `json:"navigation,omitempty"`
}

// ThankYouView describes the post-payment redirect countdown.
// swagger:model ThankYouView
type ThankYouView struct {
	// Merchant URL the payer returns to, empty when none is pending
	// example: https://merchant.example/return
	RedirectURL string `json:"redirectUrl,omitempty"`

	// Seconds left before the automatic redirect
	// example: 7
	SecondsLeft int `json:"secondsLeft"`

	// True when the payer should be redirected now
	Redirect bool `json:"redirect"`
}

// ErrorResponse represents an error body returned by the checkout API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Please select a payment method
	Error string `json:"error"`
}
