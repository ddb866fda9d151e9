package services

//go:generate mockgen -source=checkout.go -destination=checkout_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/facades"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/logger"
	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
)

var (
	// ErrSessionNotFound is returned for an id without an active checkout.
	ErrSessionNotFound = errors.New("checkout session not found")
	// ErrSelectionRequired is returned when confirming without a picked option.
	ErrSelectionRequired = errors.New(msgSelectionRequired)
	// ErrUnknownOption is returned when picking an option that is not a candidate.
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidTransition is returned when an action is not allowed in the current state.
	ErrInvalidTransition = errors.New("action not allowed in current state")
	// ErrOperationInFlight is returned while a backend call of the checkout is outstanding.
	ErrOperationInFlight = errors.New("operation already in progress")
	// ErrCancelNotRequested is returned when confirming a cancellation that was not requested.
	ErrCancelNotRequested = errors.New("cancellation was not requested")
	// ErrStepFailed is returned when a backend call of a step fails.
	ErrStepFailed = errors.New("checkout step failed")
)

// DefaultRedirectDelay is how long the thank-you step waits before redirecting.
const DefaultRedirectDelay = 10 * time.Second

// TransactionReader fetches transactions from the backend.
type TransactionReader interface {
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
}

// TransactionCanceller cancels transactions on the backend.
type TransactionCanceller interface {
	CancelTransaction(ctx context.Context, id string) (*facades.CancelResult, error)
}

// CheckoutConfig tunes the timing of checkout sessions.
type CheckoutConfig struct {
	TickInterval  time.Duration    // countdown refresh period, DefaultTickInterval when zero
	RedirectDelay time.Duration    // thank-you auto-redirect delay, DefaultRedirectDelay when zero
	Now           func() time.Time // clock, time.Now when nil
}

// CheckoutService drives checkout sessions from transaction lookup to a
// terminal outcome. Each session allows one backend call at a time, and each
// terminal transition runs its side effects once.
type CheckoutService struct {
	transactions TransactionReader
	resolver     *OptionResolver
	initiator    *DepositInitiator
	canceller    TransactionCanceller
	countdowns   *CountdownStore
	redirects    *RedirectStore
	outcomes     *OutcomeRecorder

	tick          time.Duration
	redirectDelay time.Duration
	now           func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	transactions TransactionReader,
	resolver *OptionResolver,
	initiator *DepositInitiator,
	canceller TransactionCanceller,
	countdowns *CountdownStore,
	redirects *RedirectStore,
	outcomes *OutcomeRecorder,
	cfg CheckoutConfig,
) *CheckoutService {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.RedirectDelay <= 0 {
		cfg.RedirectDelay = DefaultRedirectDelay
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &CheckoutService{
		transactions:  transactions,
		resolver:      resolver,
		initiator:     initiator,
		canceller:     canceller,
		countdowns:    countdowns,
		redirects:     redirects,
		outcomes:      outcomes,
		tick:          cfg.TickInterval,
		redirectDelay: cfg.RedirectDelay,
		now:           cfg.Now,
		sessions:      make(map[string]*session),
	}
}

func (c *CheckoutService) lookup(id string) (*session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Start enters the checkout of transaction id. Entering an active checkout
// returns its snapshot; entering a finished one starts over.
func (c *CheckoutService) Start(ctx context.Context, id string) (models.CheckoutSnapshot, error) {
	c.mu.Lock()
	s, ok := c.sessions[id]
	if ok {
		s.mu.Lock()
		if s.state.Terminal() && !s.inflight {
			s.close()
			ok = false
		}
		s.mu.Unlock()
	}
	if !ok {
		s = newSession(id)
		c.sessions[id] = s
	}
	c.mu.Unlock()

	s.mu.Lock()
	if s.inflight {
		snap := s.snapshot(c.now())
		s.mu.Unlock()
		return snap, ErrOperationInFlight
	}
	if s.state != models.StateInit {
		snap := s.snapshot(c.now())
		s.mu.Unlock()
		return snap, nil
	}
	s.state = models.StateResolving
	s.inflight = true
	s.errMsg = ""
	s.mu.Unlock()

	logger.Log.Infow("starting checkout", "id", id)

	tx, err := c.transactions.GetTransaction(ctx, id)
	if err == nil && tx == nil {
		err = errors.New("transaction not found")
	}
	if err != nil {
		logger.Log.Errorw("failed to load transaction", "id", id, "error", err)
		return c.failResolve(s, msgLoadTransaction, fmt.Errorf("%w: load transaction: %w", ErrStepFailed, err))
	}

	s.mu.Lock()
	s.tx = tx
	s.mu.Unlock()

	res, err := c.resolver.Resolve(ctx, tx)
	if err != nil {
		return c.failResolve(s, c.resolver.FailureMessage(tx), fmt.Errorf("%w: %w", ErrStepFailed, err))
	}

	s.mu.Lock()
	switch res.Kind {
	case ResolutionPrompt:
		s.state = models.StatePrompting
		s.options = res.Options
		s.inflight = false
		snap := s.snapshot(c.now())
		s.mu.Unlock()
		return snap, nil
	case ResolutionSkip:
		s.state = models.StateSkipped
	default:
		s.state = models.StateAutoSelected
	}
	s.optionID = res.OptionID
	s.resume = s.state
	s.state = models.StateCreatingDeposit
	s.mu.Unlock()

	return c.createDeposit(ctx, s)
}

func (c *CheckoutService) failResolve(s *session, msg string, err error) (models.CheckoutSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = models.StateInit
	s.inflight = false
	s.errMsg = msg
	return s.snapshot(c.now()), err
}

// createDeposit runs the deposit creation of s. s is in CREATING_DEPOSIT with
// inflight set.
func (c *CheckoutService) createDeposit(ctx context.Context, s *session) (models.CheckoutSnapshot, error) {
	s.mu.Lock()
	tx, optionID := s.tx, s.optionID
	s.mu.Unlock()

	instructions, err := c.initiator.Initiate(ctx, s.id, tx, optionID)
	if err != nil {
		return c.failDeposit(s, err)
	}

	expiresAt, err := instructions.ExpiresAt()
	if err != nil {
		logger.Log.Errorw("deposit expiry is not a valid timestamp", "id", s.id, "expire_time", instructions.ExpireTime, "error", err)
		return c.failDeposit(s, err)
	}

	if snap, closed := c.abandonIfClosed(s); closed {
		return snap, fmt.Errorf("%w: %s", ErrSessionNotFound, s.id)
	}

	now := c.now()
	start, err := c.countdowns.StartTime(ctx, s.id, now)
	if err != nil {
		logger.Log.Errorw("failed to read countdown start time", "id", s.id, "error", err)
		start = now
	}

	timer := NewExpiryTimer(start, expiresAt, c.tick, c.now)
	timerCtx, stop := context.WithCancel(context.Background())

	s.mu.Lock()
	if s.closed {
		stop()
		s.inflight = false
		snap := s.snapshot(c.now())
		s.mu.Unlock()
		logger.Log.Warnw("checkout closed during deposit creation", "id", s.id)
		return snap, fmt.Errorf("%w: %s", ErrSessionNotFound, s.id)
	}
	s.instructions = instructions
	s.timer = timer
	s.stopTimer = stop
	s.state = models.StateAwaitingPayment
	s.inflight = false
	snap := s.snapshot(c.now())
	s.mu.Unlock()

	go timer.Run(timerCtx, func() { c.expire(s) })

	logger.Log.Infow("awaiting payment", "id", s.id, "expires_at", expiresAt, "total", timer.Total())
	return snap, nil
}

// abandonIfClosed clears the in-flight flag of a session closed while its
// deposit was being created.
func (c *CheckoutService) abandonIfClosed(s *session) (models.CheckoutSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		return models.CheckoutSnapshot{}, false
	}
	s.inflight = false
	logger.Log.Warnw("checkout closed during deposit creation", "id", s.id)
	return s.snapshot(c.now()), true
}

func (c *CheckoutService) failDeposit(s *session, err error) (models.CheckoutSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.resume
	s.inflight = false
	s.errMsg = msgStartPayment
	return s.snapshot(c.now()), fmt.Errorf("%w: create deposit: %w", ErrStepFailed, err)
}

// Snapshot returns the current state of checkout id.
func (c *CheckoutService) Snapshot(id string) (models.CheckoutSnapshot, error) {
	s, err := c.lookup(id)
	if err != nil {
		return models.CheckoutSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(c.now()), nil
}

// Options returns the candidates of checkout id whose name contains query.
func (c *CheckoutService) Options(id, query string) (models.OptionsResponse, error) {
	s, err := c.lookup(id)
	if err != nil {
		return models.OptionsResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := models.FilterOptions(s.options, query)
	return models.OptionsResponse{Options: filtered, Empty: len(filtered) == 0}, nil
}

// Select records the payer's pick. The checkout advances only on Confirm.
func (c *CheckoutService) Select(id string, optionID int64) (models.CheckoutSnapshot, error) {
	s, err := c.lookup(id)
	if err != nil {
		return models.CheckoutSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight {
		return s.snapshot(c.now()), ErrOperationInFlight
	}
	if s.state != models.StatePrompting && s.state != models.StateSelected {
		return s.snapshot(c.now()), fmt.Errorf("%w: select in %s", ErrInvalidTransition, s.state)
	}
	if _, ok := models.FindOption(s.options, optionID); !ok {
		return s.snapshot(c.now()), fmt.Errorf("%w: %d", ErrUnknownOption, optionID)
	}

	s.selected = &optionID
	s.errMsg = ""
	return s.snapshot(c.now()), nil
}

// Confirm creates the deposit with the picked option. It also re-runs a
// failed deposit creation.
func (c *CheckoutService) Confirm(ctx context.Context, id string) (models.CheckoutSnapshot, error) {
	s, err := c.lookup(id)
	if err != nil {
		return models.CheckoutSnapshot{}, err
	}

	s.mu.Lock()
	if s.inflight {
		snap := s.snapshot(c.now())
		s.mu.Unlock()
		return snap, ErrOperationInFlight
	}

	switch {
	case s.state == models.StatePrompting:
		if s.tx == nil || s.selected == nil {
			s.errMsg = msgSelectionRequired
			snap := s.snapshot(c.now())
			s.mu.Unlock()
			return snap, ErrSelectionRequired
		}
		s.state = models.StateSelected
		s.optionID = *s.selected
	case s.state == models.StateSelected:
		s.optionID = *s.selected
	case s.retryable():
	default:
		snap := s.snapshot(c.now())
		s.mu.Unlock()
		return snap, fmt.Errorf("%w: confirm in %s", ErrInvalidTransition, snap.State)
	}

	s.resume = s.state
	s.state = models.StateCreatingDeposit
	s.inflight = true
	s.errMsg = ""
	s.mu.Unlock()

	return c.createDeposit(ctx, s)
}

// Complete marks the payment done. No backend confirmation is requested.
func (c *CheckoutService) Complete(ctx context.Context, id string) (models.CheckoutSnapshot, error) {
	s, err := c.lookup(id)
	if err != nil {
		return models.CheckoutSnapshot{}, err
	}

	s.mu.Lock()
	switch {
	case s.state == models.StateCompleted:
		snap := s.snapshot(c.now())
		s.mu.Unlock()
		return snap, nil
	case s.inflight:
		snap := s.snapshot(c.now())
		s.mu.Unlock()
		return snap, ErrOperationInFlight
	case s.state != models.StateAwaitingPayment:
		snap := s.snapshot(c.now())
		s.mu.Unlock()
		return snap, fmt.Errorf("%w: complete in %s", ErrInvalidTransition, snap.State)
	}
	s.state = models.StateCompleted
	s.navigation = models.NavigateThankYou
	s.cancelDialog = false
	s.errMsg = ""
	s.teardown()
	s.mu.Unlock()

	if err := c.countdowns.Clear(ctx, id); err != nil {
		logger.Log.Errorw("failed to clear countdown start time", "id", id, "error", err)
	}

	url, err := c.redirects.Load(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load redirect url", "id", id, "error", err)
	}

	s.mu.Lock()
	if url != "" {
		s.redirectURL = url
		s.redirectDeadline = c.now().Add(c.redirectDelay)
		s.redirectTimer = time.AfterFunc(c.redirectDelay, func() { c.autoRedirect(s) })
	}
	outcome := c.outcome(s)
	snap := s.snapshot(c.now())
	s.mu.Unlock()

	logger.Log.Infow("payment marked completed", "id", id, "redirect_url", url)
	c.outcomes.Record(ctx, outcome)
	return snap, nil
}

// autoRedirect consumes the redirect URL once the thank-you countdown elapses.
func (c *CheckoutService) autoRedirect(s *session) {
	s.mu.Lock()
	if s.redirectConsumed || s.redirectURL == "" {
		s.mu.Unlock()
		return
	}
	s.redirectConsumed = true
	s.redirectTimer = nil
	s.mu.Unlock()

	if err := c.redirects.Clear(context.Background(), s.id); err != nil {
		logger.Log.Errorw("failed to clear redirect url", "id", s.id, "error", err)
	}
	logger.Log.Infow("auto-redirecting after payment", "id", s.id)
}

// ThankYou returns the post-payment redirect countdown of checkout id.
func (c *CheckoutService) ThankYou(id string) (models.ThankYouView, error) {
	s, err := c.lookup(id)
	if err != nil {
		return models.ThankYouView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.StateCompleted {
		return models.ThankYouView{}, fmt.Errorf("%w: thank-you in %s", ErrInvalidTransition, s.state)
	}
	return s.thankYou(c.now()), nil
}

// RedirectNow consumes the redirect URL of checkout id immediately.
func (c *CheckoutService) RedirectNow(ctx context.Context, id string) (models.ThankYouView, error) {
	s, err := c.lookup(id)
	if err != nil {
		return models.ThankYouView{}, err
	}

	s.mu.Lock()
	if s.state != models.StateCompleted {
		state := s.state
		s.mu.Unlock()
		return models.ThankYouView{}, fmt.Errorf("%w: redirect in %s", ErrInvalidTransition, state)
	}
	if s.redirectURL == "" || s.redirectConsumed {
		view := s.thankYou(c.now())
		s.mu.Unlock()
		return view, nil
	}
	s.redirectConsumed = true
	if s.redirectTimer != nil {
		s.redirectTimer.Stop()
		s.redirectTimer = nil
	}
	view := s.thankYou(c.now())
	s.mu.Unlock()

	if err := c.redirects.Clear(ctx, id); err != nil {
		logger.Log.Errorw("failed to clear redirect url", "id", id, "error", err)
	}
	return view, nil
}

// RequestCancel opens the cancellation dialog.
func (c *CheckoutService) RequestCancel(id string) (models.CheckoutSnapshot, error) {
	s, err := c.lookup(id)
	if err != nil {
		return models.CheckoutSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight {
		return s.snapshot(c.now()), ErrOperationInFlight
	}
	if !s.cancellable() {
		return s.snapshot(c.now()), fmt.Errorf("%w: cancel in %s", ErrInvalidTransition, s.state)
	}
	s.cancelDialog = true
	return s.snapshot(c.now()), nil
}

// DismissCancel closes the cancellation dialog without cancelling.
func (c *CheckoutService) DismissCancel(id string) (models.CheckoutSnapshot, error) {
	s, err := c.lookup(id)
	if err != nil {
		return models.CheckoutSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelDialog = false
	return s.snapshot(c.now()), nil
}

// ConfirmCancel cancels the transaction on the backend. The dialog closes
// before the call; on failure the checkout stays where it was.
func (c *CheckoutService) ConfirmCancel(ctx context.Context, id string) (models.CheckoutSnapshot, error) {
	s, err := c.lookup(id)
	if err != nil {
		return models.CheckoutSnapshot{}, err
	}

	s.mu.Lock()
	switch {
	case s.inflight:
		snap := s.snapshot(c.now())
		s.mu.Unlock()
		return snap, ErrOperationInFlight
	case !s.cancelDialog:
		snap := s.snapshot(c.now())
		s.mu.Unlock()
		return snap, ErrCancelNotRequested
	case !s.cancellable():
		s.cancelDialog = false
		snap := s.snapshot(c.now())
		s.mu.Unlock()
		return snap, fmt.Errorf("%w: cancel in %s", ErrInvalidTransition, snap.State)
	}
	s.cancelDialog = false
	s.inflight = true
	s.errMsg = ""
	s.mu.Unlock()

	result, err := c.canceller.CancelTransaction(ctx, id)

	s.mu.Lock()
	s.inflight = false
	if err != nil {
		s.errMsg = msgCancel
		snap := s.snapshot(c.now())
		s.mu.Unlock()
		logger.Log.Errorw("failed to cancel transaction", "id", id, "error", err)
		return snap, fmt.Errorf("%w: cancel transaction: %w", ErrStepFailed, err)
	}
	if s.state.Terminal() {
		// expired while the call was outstanding
		snap := s.snapshot(c.now())
		s.mu.Unlock()
		return snap, nil
	}
	s.state = models.StateCancelled
	s.navigation = models.NavigateCancel
	s.teardown()
	outcome := c.outcome(s)
	snap := s.snapshot(c.now())
	s.mu.Unlock()

	if err := c.countdowns.Clear(ctx, id); err != nil {
		logger.Log.Errorw("failed to clear countdown start time", "id", id, "error", err)
	}

	var message string
	if result != nil {
		message = result.Message
	}
	logger.Log.Infow("transaction cancelled", "id", id, "message", message)
	c.outcomes.Record(ctx, outcome)
	return snap, nil
}

// expire ends an awaiting checkout whose deadline passed. The countdown start
// time is left in the store.
func (c *CheckoutService) expire(s *session) {
	s.mu.Lock()
	if s.closed || s.state != models.StateAwaitingPayment || s.stopTimer == nil {
		s.mu.Unlock()
		return
	}
	s.state = models.StateExpired
	s.navigation = models.NavigateTimeout
	s.cancelDialog = false
	s.teardown()
	outcome := c.outcome(s)
	s.mu.Unlock()

	logger.Log.Infow("payment window expired", "id", s.id)
	c.outcomes.Record(context.Background(), outcome)
}

// outcome builds the record of the terminal transition s just took. Callers hold s.mu.
func (c *CheckoutService) outcome(s *session) models.CheckoutOutcome {
	outcome := models.CheckoutOutcome{
		EventID:    uuid.NewString(),
		CheckoutID: s.id,
		State:      s.state,
		OptionID:   s.optionID,
		OccurredAt: c.now().UTC(),
	}
	if s.tx != nil {
		outcome.TransactionID = s.tx.ID
	}
	if s.instructions != nil {
		outcome.OrderID = s.instructions.OrderID
	}
	return outcome
}

// Outcomes returns the journaled terminal transitions of checkout id.
func (c *CheckoutService) Outcomes(ctx context.Context, id string) ([]models.CheckoutOutcome, error) {
	outcomes, err := c.outcomes.List(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to list outcomes", "id", id, "error", err)
		return nil, err
	}
	if outcomes == nil {
		outcomes = []models.CheckoutOutcome{}
	}
	return outcomes, nil
}

// Leave drops checkout id, stopping its countdown without firing timeout.
// A checkout with a backend call outstanding stays until the call returns.
func (c *CheckoutService) Leave(id string) error {
	c.mu.Lock()
	s, ok := c.sessions[id]
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	s.mu.Lock()
	if s.inflight {
		s.mu.Unlock()
		c.mu.Unlock()
		return ErrOperationInFlight
	}
	s.close()
	s.mu.Unlock()
	delete(c.sessions, id)
	c.mu.Unlock()

	logger.Log.Infow("checkout left", "id", id)
	return nil
}

// Close stops the background activity of every session.
func (c *CheckoutService) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, s := range c.sessions {
		s.mu.Lock()
		s.close()
		s.mu.Unlock()
		delete(c.sessions, id)
	}
}
