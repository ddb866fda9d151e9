package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-deposit-checkout/internal/logger"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
)

// DefaultOptionID is sent as the option of a transaction whose account is
// already resolved.
const DefaultOptionID int64 = 1

// ResolutionKind is the resolver's decision for a transaction.
type ResolutionKind int

const (
	ResolutionSkip       ResolutionKind = iota + 1 // account already resolved
	ResolutionAutoSelect                           // exactly one candidate
	ResolutionPrompt                               // the payer must pick
)

// Resolution is the outcome of resolving a transaction's option.
type Resolution struct {
	Kind     ResolutionKind
	OptionID int64           // chosen option for Skip and AutoSelect
	Options  []models.Option // candidates for Prompt, possibly empty
}

// Candidates provides the candidate options of a transaction.
type Candidates interface {
	Candidates(ctx context.Context, tx *models.Transaction) ([]models.Option, error)
	FailureMessage(method models.PaymentMethod) string
}

// OptionResolver decides whether the option of a transaction is fixed,
// can be picked automatically or must be chosen by the payer.
type OptionResolver struct {
	candidates Candidates
}

func NewOptionResolver(candidates Candidates) *OptionResolver {
	return &OptionResolver{candidates: candidates}
}

// Resolve returns the resolution of tx. A failed candidate fetch is returned
// as an error and never as an empty prompt.
func (r *OptionResolver) Resolve(ctx context.Context, tx *models.Transaction) (Resolution, error) {
	if tx.HasResolvedAccount() {
		logger.Log.Infow("account already resolved, skipping option selection", "transaction_id", tx.ID)
		return Resolution{Kind: ResolutionSkip, OptionID: DefaultOptionID}, nil
	}

	options, err := r.candidates.Candidates(ctx, tx)
	if err != nil {
		logger.Log.Errorw("failed to fetch candidate options", "transaction_id", tx.ID, "payment_method", tx.PaymentMethod, "error", err)
		return Resolution{}, fmt.Errorf("fetch candidates: %w", err)
	}

	if len(options) == 1 {
		logger.Log.Infow("single candidate, auto-selecting", "transaction_id", tx.ID, "option_id", options[0].ID)
		return Resolution{Kind: ResolutionAutoSelect, OptionID: options[0].ID}, nil
	}

	logger.Log.Infow("prompting for option", "transaction_id", tx.ID, "candidates", len(options))
	return Resolution{Kind: ResolutionPrompt, Options: options}, nil
}

// FailureMessage is the payer-facing message of a failed resolution.
func (r *OptionResolver) FailureMessage(tx *models.Transaction) string {
	return r.candidates.FailureMessage(tx.PaymentMethod)
}
