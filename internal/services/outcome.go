package services

//go:generate mockgen -source=outcome.go -destination=outcome_mock.go -package=services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-deposit-checkout/internal/logger"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// OutcomeJournal stores terminal checkout transitions.
type OutcomeJournal interface {
	Save(ctx context.Context, outcome models.CheckoutOutcome) error                            // Records one outcome
	ListByCheckoutID(ctx context.Context, checkoutID string) ([]models.CheckoutOutcome, error) // Returns the outcomes of a checkout
}

// OutcomeRecorder publishes and journals terminal transitions. Both sinks are
// optional; their failures never affect the checkout.
type OutcomeRecorder struct {
	kafkaWriter KafkaWriter
	journal     OutcomeJournal
}

func NewOutcomeRecorder(kafkaWriter KafkaWriter, journal OutcomeJournal) *OutcomeRecorder {
	return &OutcomeRecorder{kafkaWriter: kafkaWriter, journal: journal}
}

// Record sends outcome to every configured sink.
func (r *OutcomeRecorder) Record(ctx context.Context, outcome models.CheckoutOutcome) {
	if r == nil {
		return
	}
	r.publishOutcome(ctx, outcome)

	if r.journal == nil {
		return
	}
	if err := r.journal.Save(ctx, outcome); err != nil {
		logger.Log.Errorw("Failed to journal checkout outcome", "checkout_id", outcome.CheckoutID, "state", outcome.State, "error", err)
	}
}

// List returns the journaled outcomes of checkoutID, nil when no journal is configured.
func (r *OutcomeRecorder) List(ctx context.Context, checkoutID string) ([]models.CheckoutOutcome, error) {
	if r == nil || r.journal == nil {
		return nil, nil
	}
	return r.journal.ListByCheckoutID(ctx, checkoutID)
}

// publishOutcome publishes an outcome to Kafka keyed by checkout id.
func (r *OutcomeRecorder) publishOutcome(ctx context.Context, outcome models.CheckoutOutcome) {
	if r.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", outcome.EventID)
		return
	}

	data, err := json.Marshal(outcome)
	if err != nil {
		logger.Log.Errorw("Failed to marshal outcome for Kafka", "event_id", outcome.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(outcome.CheckoutID),
		Value: data,
	}

	if err := r.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish outcome to Kafka", "event_id", outcome.EventID, "error", err)
	} else {
		logger.Log.Infow("Outcome published to Kafka", "event_id", outcome.EventID, "checkout_id", outcome.CheckoutID, "state", outcome.State)
	}
}
