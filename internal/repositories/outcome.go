package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/logger"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
)

// OutcomeJournalRepository records terminal checkout transitions in PostgreSQL.
type OutcomeJournalRepository struct {
	db *sqlx.DB
}

func NewOutcomeJournalRepository(db *sqlx.DB) *OutcomeJournalRepository {
	return &OutcomeJournalRepository{db: db}
}

const outcomeSchema = `
	CREATE TABLE IF NOT EXISTS checkout_outcomes (
		event_id       UUID PRIMARY KEY,
		checkout_id    VARCHAR(128) NOT NULL,
		transaction_id BIGINT NOT NULL,
		state          VARCHAR(32) NOT NULL,
		option_id      BIGINT NOT NULL,
		order_id       VARCHAR(128) NOT NULL DEFAULT '',
		occurred_at    TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS checkout_outcomes_checkout_id_idx ON checkout_outcomes (checkout_id);
`

// EnsureSchema creates the checkout_outcomes table when missing.
func (r *OutcomeJournalRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, outcomeSchema)

	logger.Log.Infow(
		"query", "ensure checkout_outcomes schema",
		"error", err,
	)

	return err
}

// Save inserts the outcome. A second save of the same event id is ignored.
func (r *OutcomeJournalRepository) Save(ctx context.Context, outcome models.CheckoutOutcome) error {
	query := `
		INSERT INTO checkout_outcomes (event_id, checkout_id, transaction_id, state, option_id, order_id, occurred_at)
		VALUES (:event_id, :checkout_id, :transaction_id, :state, :option_id, :order_id, :occurred_at)
		ON CONFLICT (event_id) DO NOTHING
	`

	res, err := r.db.NamedExecContext(ctx, query, outcome)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{outcome.EventID, outcome.CheckoutID, outcome.State},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ListByCheckoutID returns the recorded outcomes of a checkout, oldest first.
func (r *OutcomeJournalRepository) ListByCheckoutID(ctx context.Context, checkoutID string) ([]models.CheckoutOutcome, error) {
	const query = `
		SELECT event_id, checkout_id, transaction_id, state, option_id, order_id, occurred_at
		FROM checkout_outcomes
		WHERE checkout_id = $1
		ORDER BY occurred_at
	`

	var outcomes []models.CheckoutOutcome
	err := r.db.SelectContext(ctx, &outcomes, query, checkoutID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{checkoutID},
		"result", len(outcomes),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return outcomes, nil
}
