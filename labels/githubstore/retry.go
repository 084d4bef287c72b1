/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubstore

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"net/http"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
)

// Backoff controls how calls rejected by rate limiting or server errors are
// retried.
type Backoff struct {
	// Retries is the number of attempts after the first. 0 disables retries.
	Retries int
	// Base is the delay before the first retry; it doubles on every attempt.
	Base time.Duration
	// Max caps every delay, including a server-requested Retry-After.
	Max time.Duration
	// Jitter is the upper bound of random time added to each delay.
	Jitter time.Duration
}

// DefaultBackoff fits inside a CI step: a handful of retries over at most a
// couple of minutes.
func DefaultBackoff() Backoff {
	return Backoff{
		Retries: 3,
		Base:    time.Second,
		Max:     30 * time.Second,
		Jitter:  250 * time.Millisecond,
	}
}

// delay returns how long to wait before retry attempt (0-based) of a call
// that failed with err.
func (b Backoff) delay(attempt int, err error) time.Duration {
	d := b.Base << attempt

	var abuse *github.AbuseRateLimitError
	var rate *github.RateLimitError
	switch {
	case errors.As(err, &abuse) && abuse.RetryAfter != nil:
		d = *abuse.RetryAfter
	case errors.As(err, &rate):
		d = time.Until(rate.Rate.Reset.Time)
	}
	d = min(max(d, 0), b.Max)

	if b.Jitter > 0 {
		if n, err := rand.Int(rand.Reader, big.NewInt(int64(b.Jitter))); err == nil {
			d += time.Duration(n.Int64())
		}
	}
	return d
}

// retryable reports whether a call that failed with err is worth retrying.
// go-github rejects calls locally until a primary rate limit resets, so a
// reset further away than Max is not waited for.
func (b Backoff) retryable(resp *github.Response, err error) bool {
	var abuse *github.AbuseRateLimitError
	var rate *github.RateLimitError
	switch {
	case errors.As(err, &abuse):
		return true
	case errors.As(err, &rate):
		return time.Until(rate.Rate.Reset.Time) <= b.Max
	}
	return resp != nil && resp.StatusCode >= http.StatusInternalServerError
}

// withRetry calls fn until it succeeds, fails with an error that is not
// retryable, or the retries run out.
func withRetry[T any](ctx context.Context, b Backoff, op string, fn func() (T, *github.Response, error)) (T, *github.Response, error) {
	for attempt := 0; ; attempt++ {
		result, resp, err := fn()
		if err == nil || attempt >= b.Retries || !b.retryable(resp, err) {
			return result, resp, err
		}

		wait := b.delay(attempt, err)
		clog.FromContext(ctx).With("operation", op).
			With("attempt", attempt+1).
			With("max_retries", b.Retries).
			With("backoff", wait).
			With("error", err.Error()).
			Warn("GitHub API call failed, retrying")

		select {
		case <-ctx.Done():
			return result, resp, ctx.Err()
		case <-time.After(wait):
		}
	}
}
