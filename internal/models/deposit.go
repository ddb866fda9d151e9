package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DepositRequest is the body sent to the backend to create a deposit.
type DepositRequest struct {
	CompanyTransactionID int64 `json:"companyTransactionId"` // Transaction being paid
	AccountTypeID        int64 `json:"accountTypeId"`        // Chosen option id
}

// DepositInstructions is the backend's answer to a deposit creation:
// where and how much the payer must send before ExpireTime.
// swagger:model DepositInstructions
type DepositInstructions struct {
	IsSuccess               bool            `json:"isSuccess"`
	Message                 *string         `json:"message"`
	OrderID                 string          `json:"orderId"`
	FullName                string          `json:"fullName"`
	AccountType             string          `json:"accountType"`
	Address                 string          `json:"address"`
	URL                     string          `json:"url"`
	RedirectToURL           bool            `json:"redirectToUrl"`
	Amount                  decimal.Decimal `json:"amount"`
	Currency                string          `json:"currency"`
	CryptoAmount            decimal.Decimal `json:"cryptoAmount"`
	Cryptocurrency          string          `json:"cryptocurrency"`
	MerchantPaymentMethodID int64           `json:"merchantPaymentMethodId"`
	ExpireTime              string          `json:"expireTime"`
	AddDate                 string          `json:"addDate"`
	MerchantTransactionID   int64           `json:"merchantTransactionId"`
}

// expiryLayouts lists accepted ISO forms; zone-less values are read as UTC.
var expiryLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// ParseExpiry parses an ISO expiry timestamp.
func ParseExpiry(value string) (time.Time, error) {
	var err error
	for _, layout := range expiryLayouts {
		var t time.Time
		if t, err = time.Parse(layout, strings.TrimSpace(value)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// ExpiresAt parses ExpireTime.
func (d *DepositInstructions) ExpiresAt() (time.Time, error) {
	return ParseExpiry(d.ExpireTime)
}

// IsCrypto reports whether the destination is a crypto wallet.
func (d *DepositInstructions) IsCrypto() bool {
	return PaymentMethod(d.MerchantPaymentMethodID) == PaymentMethodCrypto ||
		strings.Contains(d.AccountType, "CRYPTO")
}

// AddressLabel returns "Wallet" for crypto destinations and "IBAN" otherwise.
func (d *DepositInstructions) AddressLabel() string {
	if d.IsCrypto() {
		return "Wallet"
	}
	return "IBAN"
}

// AmountUnit returns the cryptocurrency code when present, else the currency code.
func (d *DepositInstructions) AmountUnit() string {
	if d.Cryptocurrency != "" {
		return d.Cryptocurrency
	}
	return d.Currency
}

// ShowsAccountOwner reports whether the account owner is shown to the payer.
func (d *DepositInstructions) ShowsAccountOwner() bool {
	return PaymentMethod(d.MerchantPaymentMethodID) != PaymentMethodCrypto
}
