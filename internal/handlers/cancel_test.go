package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRequestCancelHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCancelRequester(ctrl)
	svc.EXPECT().RequestCancel("1042").Return(models.CheckoutSnapshot{State: models.StateAwaitingPayment, CancelDialogOpen: true}, nil)

	rec := httptest.NewRecorder()
	NewRequestCancelHandler(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/api/v1/checkout/1042/cancel", "1042", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var snap models.CheckoutSnapshot
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&snap))
	assert.True(t, snap.CancelDialogOpen)
}

func TestConfirmCancelHandler(t *testing.T) {
	tests := []struct {
		name               string
		snap               models.CheckoutSnapshot
		err                error
		expectedStatusCode int
		expectedError      string
	}{
		{
			name:               "cancelled",
			snap:               models.CheckoutSnapshot{State: models.StateCancelled, Navigation: models.NavigateCancel},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "backend failure",
			snap:               models.CheckoutSnapshot{State: models.StateAwaitingPayment, Error: "An error occurred while cancelling the transaction"},
			err:                fmt.Errorf("%w: cancel transaction: boom", services.ErrStepFailed),
			expectedStatusCode: http.StatusBadGateway,
			expectedError:      "An error occurred while cancelling the transaction",
		},
		{
			name:               "not requested",
			err:                services.ErrCancelNotRequested,
			expectedStatusCode: http.StatusConflict,
			expectedError:      "Action not allowed in current state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockCancelConfirmer(ctrl)
			svc.EXPECT().ConfirmCancel(gomock.Any(), "1042").Return(tt.snap, tt.err)

			rec := httptest.NewRecorder()
			NewConfirmCancelHandler(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/api/v1/checkout/1042/cancel/confirm", "1042", nil))

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rec))
			}
		})
	}
}

func TestDismissCancelHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCancelDismisser(ctrl)
	svc.EXPECT().DismissCancel("1042").Return(models.CheckoutSnapshot{State: models.StateAwaitingPayment}, nil)

	rec := httptest.NewRecorder()
	NewDismissCancelHandler(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/api/v1/checkout/1042/cancel/dismiss", "1042", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
