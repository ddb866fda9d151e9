package services

//go:generate mockgen -source=candidates.go -destination=candidates_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
)

// Sources of the candidate list of generic (payment method 1) transactions.
const (
	GenericCandidatesPaymentMethods = "payment_methods"
	GenericCandidatesAccountTypes   = "account_types"
)

// OptionCatalog lists the options the backend offers.
type OptionCatalog interface {
	ListPaymentMethods(ctx context.Context) ([]models.Option, error)              // Generic payment methods
	ListBanks(ctx context.Context) ([]models.Option, error)                       // Banks for bank transfers
	ListCryptocurrencies(ctx context.Context) ([]models.Option, error)            // Cryptocurrencies
	GetAccountTypes(ctx context.Context, methodID int64) ([]models.Option, error) // Account types of a payment method
}

// candidateSource fetches one candidate list. failureMessage is what the
// payer sees when the fetch fails.
type candidateSource struct {
	fetch          func(ctx context.Context, tx *models.Transaction) ([]models.Option, error)
	failureMessage string
}

// CandidateProvider returns the candidate options of a transaction. The list
// depends only on the transaction's payment method.
type CandidateProvider struct {
	byMethod map[models.PaymentMethod]candidateSource
	fallback candidateSource
}

// NewCandidateProvider wires the catalog lists to payment methods. generic
// picks the list used for every method without a dedicated one.
func NewCandidateProvider(catalog OptionCatalog, generic string) *CandidateProvider {
	fallback := candidateSource{
		fetch: func(ctx context.Context, _ *models.Transaction) ([]models.Option, error) {
			return catalog.ListPaymentMethods(ctx)
		},
		failureMessage: "An error occurred while loading payment methods",
	}
	if generic == GenericCandidatesAccountTypes {
		fallback = candidateSource{
			fetch: func(ctx context.Context, tx *models.Transaction) ([]models.Option, error) {
				return catalog.GetAccountTypes(ctx, int64(tx.PaymentMethod))
			},
			failureMessage: "An error occurred while loading account types",
		}
	}

	return &CandidateProvider{
		byMethod: map[models.PaymentMethod]candidateSource{
			models.PaymentMethodBank: {
				fetch: func(ctx context.Context, _ *models.Transaction) ([]models.Option, error) {
					return catalog.ListBanks(ctx)
				},
				failureMessage: "An error occurred while loading bank list",
			},
			models.PaymentMethodCrypto: {
				fetch: func(ctx context.Context, _ *models.Transaction) ([]models.Option, error) {
					return catalog.ListCryptocurrencies(ctx)
				},
				failureMessage: "An error occurred while loading cryptocurrency list",
			},
		},
		fallback: fallback,
	}
}

func (p *CandidateProvider) source(method models.PaymentMethod) candidateSource {
	if src, ok := p.byMethod[method]; ok {
		return src
	}
	return p.fallback
}

// Candidates fetches the candidate list of tx. A nil list from the backend is
// returned as an empty slice.
func (p *CandidateProvider) Candidates(ctx context.Context, tx *models.Transaction) ([]models.Option, error) {
	options, err := p.source(tx.PaymentMethod).fetch(ctx, tx)
	if err != nil {
		return nil, err
	}
	if options == nil {
		options = []models.Option{}
	}
	return options, nil
}

// FailureMessage is the payer-facing message of a failed candidate fetch.
func (p *CandidateProvider) FailureMessage(method models.PaymentMethod) string {
	return p.source(method).failureMessage
}
