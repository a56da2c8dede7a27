package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kmichalik/orgmetrics/internal/app"
	"github.com/sirupsen/logrus"
)

// RetryPolicy retries a page request based on error classification:
//
//   - rate-limit errors are retried without bound, sleeping until the
//     remote-reported reset time (or a bounded exponential backoff when no
//     reset time is given);
//   - transient network/server errors are retried with exponential backoff
//     up to maxTransientRetries;
//   - auth errors and anything unclassified fail immediately.
//
// Callers observe either a successful result or a fatal error.
type RetryPolicy struct {
	maxTransientRetries int
	baseDelay           time.Duration
	maxDelay            time.Duration
	l                   logrus.FieldLogger

	// sleep is replaceable for unit testing.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRetryPolicy creates a RetryPolicy instance.
func NewRetryPolicy(maxTransientRetries int, baseDelay, maxDelay time.Duration, l logrus.FieldLogger) RetryPolicy {
	return RetryPolicy{
		maxTransientRetries: maxTransientRetries,
		baseDelay:           baseDelay,
		maxDelay:            maxDelay,
		l:                   l,
		sleep:               sleepContext,
	}
}

// Do invokes fn until it succeeds or fails fatally.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	delay := p.baseDelay
	var transientRetries int

	for {
		err := fn()
		switch {
		case err == nil:
			return nil

		case app.IsAuthError(err):
			return err

		case app.IsRateLimitError(err):
			d := p.rateLimitDelay(err, &delay)
			p.l.Infof("rate limited, waiting %s before retry", d)
			if serr := p.sleep(ctx, d); serr != nil {
				return fmt.Errorf("waiting for rate limit reset: %w", serr)
			}

		case app.IsNetworkError(err):
			transientRetries++
			if transientRetries > p.maxTransientRetries {
				return fmt.Errorf("giving up after %d transient failures: %w", transientRetries-1, err)
			}
			p.l.Infof("transient failure (%v), retry %d/%d in %s", err, transientRetries, p.maxTransientRetries, delay)
			if serr := p.sleep(ctx, delay); serr != nil {
				return fmt.Errorf("waiting before retry: %w", serr)
			}
			delay = p.nextDelay(delay)

		default:
			return err
		}
	}
}

// rateLimitDelay returns the wait before retrying a rate-limited request.
// Prefers the remote-reported reset time, padded by a second so the window
// has actually rolled over.
func (p RetryPolicy) rateLimitDelay(err error, backoff *time.Duration) time.Duration {
	var re *app.RateLimitError
	if errors.As(err, &re) && !re.ResetAt.IsZero() {
		if d := time.Until(re.ResetAt) + time.Second; d > 0 {
			return d
		}
		return time.Second
	}

	d := *backoff
	*backoff = p.nextDelay(*backoff)
	return d
}

func (p RetryPolicy) nextDelay(d time.Duration) time.Duration {
	d *= 2
	if d > p.maxDelay {
		d = p.maxDelay
	}
	return d
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
