package models

import "github.com/shopspring/decimal"

// PaymentMethod selects which candidate list a transaction is resolved against.
type PaymentMethod int

// Supported payment methods
const (
	PaymentMethodGeneric PaymentMethod = 1 // Generic, resolved against the payment method list
	PaymentMethodBank    PaymentMethod = 2 // Bank transfer
	PaymentMethodCrypto  PaymentMethod = 3 // Cryptocurrency
)

// String returns the display label of the payment method.
func (m PaymentMethod) String() string {
	switch m {
	case PaymentMethodBank:
		return "Bank Transfer"
	case PaymentMethodCrypto:
		return "Cryptocurrency"
	default:
		return "Deposit"
	}
}

// TransactionStatus is the numeric status code used by the backend.
type TransactionStatus int

// Backend transaction status codes
const (
	TransactionStatusPending   TransactionStatus = 1
	TransactionStatusCompleted TransactionStatus = 2
	TransactionStatusActive    TransactionStatus = 3
	TransactionStatusCancelled TransactionStatus = 4
	TransactionStatusExpired   TransactionStatus = 5
)

// Account holds pre-resolved account details attached to a transaction.
type Account struct {
	FullName      string `json:"fullName"`      // Account owner name
	AccountType   string `json:"accountType"`   // Account type label, e.g. "CRYPTO_BTC"
	Address       string `json:"address"`       // IBAN or wallet address
	URL           string `json:"url"`           // Optional payment URL
	RedirectToURL bool   `json:"redirectToUrl"` // Whether the payer should be sent to URL
	ExpireTime    string `json:"expireTime"`    // ISO expiry timestamp
}

// Transaction represents a requested deposit as returned by the backend.
type Transaction struct {
	ID                          int64             `json:"id"`
	Username                    string            `json:"username"`
	FirstName                   string            `json:"firstName"`
	LastName                    string            `json:"lastName"`
	Amount                      decimal.Decimal   `json:"amount"`
	Currency                    string            `json:"currency"`
	CryptoAmount                decimal.Decimal   `json:"cryptoAmount"`
	Cryptocurrency              *string           `json:"cryptocurrency"`
	TransactionType             int               `json:"transactionType"`
	TransactionStatus           TransactionStatus `json:"transactionStatus"`
	PaymentMethod               PaymentMethod     `json:"paymentMethod"`
	Reference                   string            `json:"reference"`
	UniqueKey                   string            `json:"uniqueKey"`
	RedirectURLAfterUserPayment string            `json:"redirectUrlAfterUserPayment"`
	AddDate                     string            `json:"addDate"`
	Account                     *Account          `json:"account"`
}

// HasResolvedAccount reports whether the account/option is already fixed
// for this transaction, so no selection step is needed.
func (t *Transaction) HasResolvedAccount() bool {
	return t.Account != nil && t.Account.AccountType != ""
}
