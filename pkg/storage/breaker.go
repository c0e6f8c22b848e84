package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/starkspartacus/job-sub000/pkg/logger"
)

// ErrUnavailable is returned while the breaker is open.
var ErrUnavailable = errors.New("storage temporarily unavailable")

// BreakerStore fails fast once the wrapped store keeps erroring.
type BreakerStore struct {
	next ObjectStore
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerStore(next ObjectStore, name string) *BreakerStore {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures > 5 ||
				(counts.Requests >= 10 && failureRatio >= 0.6)
		},
		IsSuccessful: func(err error) bool {
			// a cancelled upload says nothing about the store
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	}
	return &BreakerStore{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (b *BreakerStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Put(ctx, key, contentType, data)
	})
	if err != nil {
		return "", mapBreakerErr(err)
	}
	return res.(string), nil
}

func (b *BreakerStore) Delete(ctx context.Context, key string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Delete(ctx, key)
	})
	return mapBreakerErr(err)
}

// State is the breaker state name, for health output.
func (b *BreakerStore) State() string {
	return b.cb.State().String()
}

func mapBreakerErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrUnavailable
	}
	return err
}
