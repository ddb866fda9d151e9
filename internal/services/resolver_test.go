package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestOptionResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	banks := []models.Option{{ID: 7, Name: "Test Bank"}}
	cryptos := []models.Option{{ID: 1, Name: "Bitcoin"}, {ID: 2, Name: "Ethereum"}}

	tests := []struct {
		name       string
		tx         *models.Transaction
		setupMocks func(catalog *MockOptionCatalog)
		want       Resolution
		wantErr    bool
	}{
		{
			name: "resolved account skips selection",
			tx:   &models.Transaction{ID: 1, PaymentMethod: models.PaymentMethodBank, Account: &models.Account{AccountType: "BANK"}},
			want: Resolution{Kind: ResolutionSkip, OptionID: DefaultOptionID},
		},
		{
			name: "account without type is not resolved",
			tx:   &models.Transaction{ID: 1, PaymentMethod: models.PaymentMethodBank, Account: &models.Account{}},
			setupMocks: func(catalog *MockOptionCatalog) {
				catalog.EXPECT().ListBanks(ctx).Return(banks, nil)
			},
			want: Resolution{Kind: ResolutionAutoSelect, OptionID: 7},
		},
		{
			name: "single bank is auto-selected",
			tx:   &models.Transaction{ID: 1, PaymentMethod: models.PaymentMethodBank},
			setupMocks: func(catalog *MockOptionCatalog) {
				catalog.EXPECT().ListBanks(ctx).Return(banks, nil)
			},
			want: Resolution{Kind: ResolutionAutoSelect, OptionID: 7},
		},
		{
			name: "several cryptocurrencies prompt",
			tx:   &models.Transaction{ID: 1, PaymentMethod: models.PaymentMethodCrypto},
			setupMocks: func(catalog *MockOptionCatalog) {
				catalog.EXPECT().ListCryptocurrencies(ctx).Return(cryptos, nil)
			},
			want: Resolution{Kind: ResolutionPrompt, Options: cryptos},
		},
		{
			name: "no payment methods prompt with empty list",
			tx:   &models.Transaction{ID: 1, PaymentMethod: models.PaymentMethodGeneric},
			setupMocks: func(catalog *MockOptionCatalog) {
				catalog.EXPECT().ListPaymentMethods(ctx).Return(nil, nil)
			},
			want: Resolution{Kind: ResolutionPrompt, Options: []models.Option{}},
		},
		{
			name: "unknown payment method uses the generic list",
			tx:   &models.Transaction{ID: 1, PaymentMethod: models.PaymentMethod(9)},
			setupMocks: func(catalog *MockOptionCatalog) {
				catalog.EXPECT().ListPaymentMethods(ctx).Return(cryptos, nil)
			},
			want: Resolution{Kind: ResolutionPrompt, Options: cryptos},
		},
		{
			name: "fetch failure is an error",
			tx:   &models.Transaction{ID: 1, PaymentMethod: models.PaymentMethodBank},
			setupMocks: func(catalog *MockOptionCatalog) {
				catalog.EXPECT().ListBanks(ctx).Return(nil, errors.New("backend down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			catalog := NewMockOptionCatalog(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(catalog)
			}

			resolver := NewOptionResolver(NewCandidateProvider(catalog, GenericCandidatesPaymentMethods))
			got, err := resolver.Resolve(ctx, tt.tx)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCandidateProvider_AccountTypes(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := NewMockOptionCatalog(ctrl)
	catalog.EXPECT().GetAccountTypes(ctx, int64(1)).Return([]models.Option{{ID: 4, Name: "Option 4"}}, nil)

	provider := NewCandidateProvider(catalog, GenericCandidatesAccountTypes)
	options, err := provider.Candidates(ctx, &models.Transaction{PaymentMethod: models.PaymentMethodGeneric})

	assert.NoError(t, err)
	assert.Equal(t, []models.Option{{ID: 4, Name: "Option 4"}}, options)
	assert.Equal(t, "An error occurred while loading account types", provider.FailureMessage(models.PaymentMethodGeneric))
}

func TestCandidateProvider_FailureMessage(t *testing.T) {
	provider := NewCandidateProvider(nil, GenericCandidatesPaymentMethods)

	assert.Equal(t, "An error occurred while loading bank list", provider.FailureMessage(models.PaymentMethodBank))
	assert.Equal(t, "An error occurred while loading cryptocurrency list", provider.FailureMessage(models.PaymentMethodCrypto))
	assert.Equal(t, "An error occurred while loading payment methods", provider.FailureMessage(models.PaymentMethodGeneric))
}
