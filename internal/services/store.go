package services

//go:generate mockgen -source=store.go -destination=store_mock.go -package=services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-deposit-checkout/internal/repositories"
)

// KeyValueStore is the durable store of per-checkout state that must survive
// a reload of the checkout.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error) // Returns repositories.ErrKeyNotFound for a missing key
	Set(ctx context.Context, key, value string) error    // Stores value under key
	Delete(ctx context.Context, key string) error        // Removes key, missing keys are ignored
}

func startTimeKey(id string) string   { return "payment_start_time:" + id }
func redirectURLKey(id string) string { return "redirect_url_after_payment:" + id }

// CountdownStore persists the instant a checkout's countdown began.
type CountdownStore struct {
	store KeyValueStore
}

func NewCountdownStore(store KeyValueStore) *CountdownStore {
	return &CountdownStore{store: store}
}

// StartTime returns the persisted start of the countdown of id. When none is
// persisted, now is stored and returned.
func (s *CountdownStore) StartTime(ctx context.Context, id string, now time.Time) (time.Time, error) {
	val, err := s.store.Get(ctx, startTimeKey(id))
	switch {
	case err == nil:
		ms, perr := strconv.ParseInt(val, 10, 64)
		if perr == nil {
			return time.UnixMilli(ms), nil
		}
		// unreadable value: start over
	case !errors.Is(err, repositories.ErrKeyNotFound):
		return time.Time{}, err
	}

	if err := s.store.Set(ctx, startTimeKey(id), strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(now.UnixMilli()), nil
}

// Clear removes the persisted start time of id.
func (s *CountdownStore) Clear(ctx context.Context, id string) error {
	return s.store.Delete(ctx, startTimeKey(id))
}

// RedirectStore keeps the merchant URL the payer returns to after paying.
type RedirectStore struct {
	store KeyValueStore
}

func NewRedirectStore(store KeyValueStore) *RedirectStore {
	return &RedirectStore{store: store}
}

// Save stores the pending redirect URL of id.
func (s *RedirectStore) Save(ctx context.Context, id, url string) error {
	return s.store.Set(ctx, redirectURLKey(id), url)
}

// Load returns the pending redirect URL of id, empty when there is none.
func (s *RedirectStore) Load(ctx context.Context, id string) (string, error) {
	url, err := s.store.Get(ctx, redirectURLKey(id))
	if errors.Is(err, repositories.ErrKeyNotFound) {
		return "", nil
	}
	return url, err
}

// Clear drops the pending redirect URL of id.
func (s *RedirectStore) Clear(ctx context.Context, id string) error {
	return s.store.Delete(ctx, redirectURLKey(id))
}
