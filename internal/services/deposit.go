package services

//go:generate mockgen -source=deposit.go -destination=deposit_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-deposit-checkout/internal/logger"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
)

var (
	// ErrInvalidTransactionID is returned when the transaction id is missing or not numeric.
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	// ErrInvalidOptionID is returned when the option id is missing or not positive.
	ErrInvalidOptionID = errors.New("invalid option id")
)

// DepositCreator creates deposits on the backend.
type DepositCreator interface {
	CreateDeposit(ctx context.Context, req models.DepositRequest) (*models.DepositInstructions, error)
}

// RedirectSaver persists the post-payment redirect URL of a checkout.
type RedirectSaver interface {
	Save(ctx context.Context, id, url string) error
}

// DepositInitiator turns a confirmed transaction and option into payment instructions.
type DepositInitiator struct {
	creator   DepositCreator
	redirects RedirectSaver
}

func NewDepositInitiator(creator DepositCreator, redirects RedirectSaver) *DepositInitiator {
	return &DepositInitiator{creator: creator, redirects: redirects}
}

// Initiate creates the deposit of transaction id with the chosen option.
// The redirect URL of tx, if any, is persisted before the instructions are
// returned.
func (d *DepositInitiator) Initiate(ctx context.Context, id string, tx *models.Transaction, optionID int64) (*models.DepositInstructions, error) {
	txID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		logger.Log.Errorw("transaction id is not numeric", "id", id, "error", err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTransactionID, id)
	}
	if optionID <= 0 {
		logger.Log.Errorw("option id is missing", "id", id, "option_id", optionID)
		return nil, fmt.Errorf("%w: %d", ErrInvalidOptionID, optionID)
	}

	req := models.DepositRequest{CompanyTransactionID: txID, AccountTypeID: optionID}
	instructions, err := d.creator.CreateDeposit(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to create deposit", "transaction_id", txID, "option_id", optionID, "error", err)
		return nil, err
	}

	if tx != nil && tx.RedirectURLAfterUserPayment != "" {
		if err := d.redirects.Save(ctx, id, tx.RedirectURLAfterUserPayment); err != nil {
			logger.Log.Errorw("failed to persist redirect url", "transaction_id", txID, "error", err)
		}
	}

	logger.Log.Infow("deposit created",
		"transaction_id", txID,
		"option_id", optionID,
		"order_id", instructions.OrderID,
		"expire_time", instructions.ExpireTime,
	)
	return instructions, nil
}
