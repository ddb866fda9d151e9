package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/gw-deposit-checkout/internal/logger"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
)

// GatewayError is the single failure shape of the backend facade.
// Transport failures, non-2xx statuses, empty and malformed bodies all
// surface as a GatewayError; callers must only check for its presence.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("backend error, status code %d: %s", e.StatusCode, e.Message)
}

// HTTPDoer executes HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// CancelResult is the free-form success payload of a cancellation.
type CancelResult struct {
	Message string          `json:"message"`
	Raw     json.RawMessage `json:"-"`
}

// wireOption covers the payment method, bank, cryptocurrency and
// account type shapes returned by the backend.
type wireOption struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Code      *string `json:"code"`
	SwiftCode string  `json:"swiftCode"`
	ImageURL  string  `json:"imageUrl"`
}

func (w wireOption) toOption() models.Option {
	code := w.SwiftCode
	if w.Code != nil && *w.Code != "" {
		code = *w.Code
	}
	return models.Option{ID: w.ID, Name: w.Name, Code: code}
}

// cancelledStatus is the fixed status code sent when cancelling.
const cancelledStatus = models.TransactionStatusCancelled

// BackendHTTPFacade calls the payment backend over JSON/HTTP with a shared API key.
type BackendHTTPFacade struct {
	baseURL string
	apiKey  string
	client  HTTPDoer
}

// NewBackendHTTPFacade creates a facade for the backend at baseURL.
func NewBackendHTTPFacade(baseURL, apiKey string, client HTTPDoer) *BackendHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &BackendHTTPFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

// GetTransaction fetches a transaction by id.
func (f *BackendHTTPFacade) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	var tx *models.Transaction
	if err := f.doJSON(ctx, http.MethodGet, "/api/v1/transaction/"+url.PathEscape(id), nil, &tx); err != nil {
		return nil, err
	}
	if tx == nil {
		err := &GatewayError{StatusCode: http.StatusNotFound, Message: "transaction not found"}
		logger.Log.Errorw("transaction not found", "id", id)
		return nil, err
	}
	return tx, nil
}

// ListPaymentMethods fetches the generic payment method list.
func (f *BackendHTTPFacade) ListPaymentMethods(ctx context.Context) ([]models.Option, error) {
	return f.listOptions(ctx, "/api/v1/paymentmethod")
}

// ListBanks fetches the bank list.
func (f *BackendHTTPFacade) ListBanks(ctx context.Context) ([]models.Option, error) {
	return f.listOptions(ctx, "/api/v1/bank")
}

// ListCryptocurrencies fetches the cryptocurrency list.
func (f *BackendHTTPFacade) ListCryptocurrencies(ctx context.Context) ([]models.Option, error) {
	return f.listOptions(ctx, "/api/v1/cryptocurrency")
}

// GetAccountTypes fetches the account types of a payment method.
// Nameless entries are named after their id.
func (f *BackendHTTPFacade) GetAccountTypes(ctx context.Context, methodID int64) ([]models.Option, error) {
	options, err := f.listOptions(ctx, fmt.Sprintf("/api/v1/accounttype/%d", methodID))
	if err != nil {
		return nil, err
	}
	for i := range options {
		if options[i].Name == "" {
			options[i].Name = fmt.Sprintf("Option %d", options[i].ID)
		}
	}
	return options, nil
}

// CreateDeposit asks the backend for payment instructions.
func (f *BackendHTTPFacade) CreateDeposit(ctx context.Context, req models.DepositRequest) (*models.DepositInstructions, error) {
	var instructions *models.DepositInstructions
	if err := f.doJSON(ctx, http.MethodPost, "/api/v1/transaction/deposit", req, &instructions); err != nil {
		return nil, err
	}
	if instructions == nil {
		logger.Log.Errorw("deposit response is empty", "transaction_id", req.CompanyTransactionID)
		return nil, &GatewayError{StatusCode: http.StatusBadGateway, Message: "deposit data is empty"}
	}
	return instructions, nil
}

// CancelTransaction marks the transaction cancelled. The success body may be
// empty, plain text or JSON.
func (f *BackendHTTPFacade) CancelTransaction(ctx context.Context, id string) (*CancelResult, error) {
	body := map[string]models.TransactionStatus{"transactionStatus": cancelledStatus}
	raw, _, err := f.do(ctx, http.MethodPatch, "/api/v1/transaction/updatestatus/"+url.PathEscape(id), body)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(string(raw))
	result := &CancelResult{}
	switch {
	case text == "":
	case strings.HasPrefix(text, "{"):
		if err := json.Unmarshal([]byte(text), result); err != nil {
			logger.Log.Errorw("failed to decode cancel response", "id", id, "error", err)
			return nil, &GatewayError{StatusCode: http.StatusBadGateway, Message: "invalid JSON response from API"}
		}
		result.Raw = json.RawMessage(text)
	case strings.HasPrefix(text, "["):
		result.Raw = json.RawMessage(text)
	default:
		result.Message = text
	}
	return result, nil
}

func (f *BackendHTTPFacade) listOptions(ctx context.Context, path string) ([]models.Option, error) {
	var wire []wireOption
	if err := f.doJSON(ctx, http.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}
	options := make([]models.Option, 0, len(wire))
	for _, w := range wire {
		options = append(options, w.toOption())
	}
	return options, nil
}

// doJSON performs the call and decodes a non-empty JSON body into out.
func (f *BackendHTTPFacade) doJSON(ctx context.Context, method, path string, in, out any) error {
	raw, status, err := f.do(ctx, method, path, in)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		logger.Log.Errorw("backend returned empty response", "method", method, "path", path, "status", status)
		return &GatewayError{StatusCode: status, Message: "API returned empty response"}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Log.Errorw("failed to decode backend response", "method", method, "path", path, "error", err)
		return &GatewayError{StatusCode: status, Message: "invalid JSON response from API"}
	}
	return nil
}

// do sends the request and returns the raw body of a 2xx response.
func (f *BackendHTTPFacade) do(ctx context.Context, method, path string, in any) ([]byte, int, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			logger.Log.Errorw("failed to encode backend request", "method", method, "path", path, "error", err)
			return nil, 0, &GatewayError{StatusCode: http.StatusInternalServerError, Message: "failed to encode request"}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+path, body)
	if err != nil {
		logger.Log.Errorw("failed to build backend request", "method", method, "path", path, "error", err)
		return nil, 0, &GatewayError{StatusCode: http.StatusInternalServerError, Message: "an error occurred during the request"}
	}
	req.Header.Set("x-api-key", f.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("backend request failed", "method", method, "path", path, "error", err)
		return nil, 0, &GatewayError{StatusCode: http.StatusInternalServerError, Message: "an error occurred during the request"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Log.Errorw("failed to read backend response", "method", method, "path", path, "error", err)
		return nil, resp.StatusCode, &GatewayError{StatusCode: resp.StatusCode, Message: "failed to read response"}
	}

	logger.Log.Infow("backend call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"response_size", len(raw),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		if text := strings.TrimSpace(string(raw)); text != "" {
			msg += " - " + text
		}
		return nil, resp.StatusCode, &GatewayError{StatusCode: resp.StatusCode, Message: msg}
	}

	return raw, resp.StatusCode, nil
}
