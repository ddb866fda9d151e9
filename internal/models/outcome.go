package models

import "time"

// CheckoutOutcome records a terminal transition of a checkout session.
type CheckoutOutcome struct {
	EventID       string        `json:"event_id" db:"event_id"`             // Unique event identifier
	CheckoutID    string        `json:"checkout_id" db:"checkout_id"`       // Transaction id from the URL
	TransactionID int64         `json:"transaction_id" db:"transaction_id"` // Backend transaction id
	State         CheckoutState `json:"state" db:"state"`                   // COMPLETED, CANCELLED or EXPIRED
	OptionID      int64         `json:"option_id" db:"option_id"`           // Option the deposit was created with
	OrderID       string        `json:"order_id" db:"order_id"`             // Backend order id of the deposit
	OccurredAt    time.Time     `json:"occurred_at" db:"occurred_at"`       // Time of the transition
}
