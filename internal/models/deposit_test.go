package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseExpiry(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "RFC3339 UTC",
			value:    "2026-10-14T12:01:00Z",
			expected: time.Date(2026, 10, 14, 12, 1, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 with offset",
			value:    "2026-10-14T15:01:00+03:00",
			expected: time.Date(2026, 10, 14, 12, 1, 0, 0, time.UTC),
		},
		{
			name:     "fractional seconds",
			value:    "2026-10-14T12:01:00.250Z",
			expected: time.Date(2026, 10, 14, 12, 1, 0, 250_000_000, time.UTC),
		},
		{
			name:     "zone-less read as UTC",
			value:    "2026-10-14T12:01:00",
			expected: time.Date(2026, 10, 14, 12, 1, 0, 0, time.UTC),
		},
		{
			name:     "zone-less with fraction and spaces",
			value:    " 2026-10-14T12:01:00.5 ",
			expected: time.Date(2026, 10, 14, 12, 1, 0, 500_000_000, time.UTC),
		},
		{name: "garbage", value: "tomorrow", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExpiry(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, got.IsZero())
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestDepositInstructions_Display(t *testing.T) {
	tests := []struct {
		name         string
		instructions DepositInstructions
		label        string
		unit         string
	}{
		{
			name:         "bank transfer",
			instructions: DepositInstructions{AccountType: "BANK", Currency: "USD", MerchantPaymentMethodID: int64(PaymentMethodBank)},
			label:        "IBAN",
			unit:         "USD",
		},
		{
			name:         "crypto method",
			instructions: DepositInstructions{Currency: "USD", Cryptocurrency: "BTC", MerchantPaymentMethodID: int64(PaymentMethodCrypto)},
			label:        "Wallet",
			unit:         "BTC",
		},
		{
			name:         "crypto account type",
			instructions: DepositInstructions{AccountType: "CRYPTO_ETH", Currency: "EUR"},
			label:        "Wallet",
			unit:         "EUR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.instructions.AddressLabel())
			assert.Equal(t, tt.unit, tt.instructions.AmountUnit())
		})
	}
}
