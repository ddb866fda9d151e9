package facades

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) *BackendHTTPFacade {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBackendHTTPFacade(srv.URL+"/", "secret-key", srv.Client())
}

func asGatewayError(t *testing.T, err error) *GatewayError {
	t.Helper()
	var gwErr *GatewayError
	require.True(t, errors.As(err, &gwErr), "expected GatewayError, got %v", err)
	return gwErr
}

func TestGetTransaction(t *testing.T) {
	facade := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/transaction/1042", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("x-api-key"))
		_, _ = io.WriteString(w, `{"id":1042,"amount":150.5,"currency":"USD","paymentMethod":2,"transactionStatus":1,
			"redirectUrlAfterUserPayment":"https://merchant.example/return","account":null}`)
	})

	tx, err := facade.GetTransaction(context.Background(), "1042")
	require.NoError(t, err)
	assert.Equal(t, int64(1042), tx.ID)
	assert.True(t, decimal.NewFromFloat(150.5).Equal(tx.Amount))
	assert.Equal(t, models.PaymentMethodBank, tx.PaymentMethod)
	assert.Equal(t, models.TransactionStatusPending, tx.TransactionStatus)
	assert.Nil(t, tx.Account)
	assert.False(t, tx.HasResolvedAccount())
}

func TestGetTransaction_Failures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{name: "non-2xx status", status: http.StatusNotFound, body: "no such transaction", wantStatus: http.StatusNotFound, wantMsg: "API error: 404 Not Found - no such transaction"},
		{name: "empty body", status: http.StatusOK, body: "  ", wantStatus: http.StatusOK, wantMsg: "API returned empty response"},
		{name: "malformed body", status: http.StatusOK, body: "<html>", wantStatus: http.StatusOK, wantMsg: "invalid JSON response from API"},
		{name: "null transaction", status: http.StatusOK, body: "null", wantStatus: http.StatusNotFound, wantMsg: "transaction not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			tx, err := facade.GetTransaction(context.Background(), "7")
			assert.Nil(t, tx)
			gwErr := asGatewayError(t, err)
			assert.Equal(t, tt.wantStatus, gwErr.StatusCode)
			assert.Equal(t, tt.wantMsg, gwErr.Message)
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	facade := NewBackendHTTPFacade(srv.URL, "k", nil)

	_, err := facade.ListBanks(context.Background())
	gwErr := asGatewayError(t, err)
	assert.Equal(t, http.StatusInternalServerError, gwErr.StatusCode)
}

func TestListOptions(t *testing.T) {
	facade := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/bank":
			_, _ = io.WriteString(w, `[{"id":7,"accountGroup":1,"swiftCode":"TBNKTRIS","name":"Test Bank","code":null}]`)
		case "/api/v1/cryptocurrency":
			_, _ = io.WriteString(w, `[{"id":1,"name":"Bitcoin","code":"BTC"},{"id":2,"name":"Ethereum","code":"ETH"}]`)
		case "/api/v1/paymentmethod":
			_, _ = io.WriteString(w, `[]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	banks, err := facade.ListBanks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Option{{ID: 7, Name: "Test Bank", Code: "TBNKTRIS"}}, banks)

	cryptos, err := facade.ListCryptocurrencies(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Option{{ID: 1, Name: "Bitcoin", Code: "BTC"}, {ID: 2, Name: "Ethereum", Code: "ETH"}}, cryptos)

	methods, err := facade.ListPaymentMethods(ctx)
	require.NoError(t, err)
	assert.Empty(t, methods)
}

func TestGetAccountTypes_DefaultsName(t *testing.T) {
	facade := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounttype/3", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":4,"name":""},{"id":5,"name":"Premium"}]`)
	})

	options, err := facade.GetAccountTypes(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []models.Option{{ID: 4, Name: "Option 4"}, {ID: 5, Name: "Premium"}}, options)
}

func TestCreateDeposit(t *testing.T) {
	facade := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/transaction/deposit", r.URL.Path)

		var req models.DepositRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.DepositRequest{CompanyTransactionID: 1042, AccountTypeID: 7}, req)

		_, _ = io.WriteString(w, `{"isSuccess":true,"orderId":"order_1","fullName":"Jane Doe","accountType":"BANK",
			"address":"TR000000","amount":150.5,"currency":"USD","merchantPaymentMethodId":7,
			"expireTime":"2026-10-14T12:01:00.000Z","merchantTransactionId":1042}`)
	})

	instructions, err := facade.CreateDeposit(context.Background(), models.DepositRequest{CompanyTransactionID: 1042, AccountTypeID: 7})
	require.NoError(t, err)
	assert.True(t, instructions.IsSuccess)
	assert.Equal(t, "TR000000", instructions.Address)
	expiresAt, err := instructions.ExpiresAt()
	require.NoError(t, err)
	assert.Equal(t, 2026, expiresAt.Year())
}

func TestCancelTransaction(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{name: "empty body", body: "", wantMessage: ""},
		{name: "plain text", body: "Transaction cancelled", wantMessage: "Transaction cancelled"},
		{name: "json body", body: `{"message":"ok"}`, wantMessage: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPatch, r.Method)
				assert.Equal(t, "/api/v1/transaction/updatestatus/1042", r.URL.Path)

				var body map[string]int
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, 4, body["transactionStatus"])

				_, _ = io.WriteString(w, tt.body)
			})

			result, err := facade.CancelTransaction(context.Background(), "1042")
			require.NoError(t, err)
			assert.Equal(t, tt.wantMessage, result.Message)
		})
	}
}

func TestCancelTransaction_Error(t *testing.T) {
	facade := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	result, err := facade.CancelTransaction(context.Background(), "1042")
	assert.Nil(t, result)
	assert.Equal(t, http.StatusConflict, asGatewayError(t, err).StatusCode)
}
