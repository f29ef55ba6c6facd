package casino

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// RetryDispatcher repeats read-only calls that failed with a temporary
// ConnectivityError. Mutating requests go through exactly once.
type RetryDispatcher struct {
	next       Dispatcher
	maxRetries uint64
	interval   time.Duration
	log        zerolog.Logger
}

// NewRetryDispatcher wraps next with exponential backoff starting at interval.
func NewRetryDispatcher(next Dispatcher, maxRetries uint64, interval time.Duration, logger zerolog.Logger) *RetryDispatcher {
	if interval <= 0 {
		interval = backoff.DefaultInitialInterval
	}
	return &RetryDispatcher{next: next, maxRetries: maxRetries, interval: interval, log: logger}
}

func (d *RetryDispatcher) Dispatch(ctx context.Context, req *Request) (*HTTPResponse, error) {
	if req.Mutating || d.maxRetries == 0 {
		return d.next.Dispatch(ctx, req)
	}

	var resp *HTTPResponse
	operation := func() error {
		r, err := d.next.Dispatch(ctx, req)
		if err != nil {
			var ce *ConnectivityError
			if errors.As(err, &ce) && ce.Temporary() {
				return err
			}
			return backoff.Permanent(err)
		}
		resp = r
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = d.interval
	policy.MaxElapsedTime = 0

	notify := func(err error, wait time.Duration) {
		d.log.Warn().
			Err(err).
			Str("controller", req.Controller).
			Str("resource", req.Resource).
			Dur("retry_in", wait).
			Msg("retrying backend call")
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(policy, d.maxRetries), ctx), notify)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
