package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"
)

// LimitedCompleter caps how many completions run at once. Callers over the
// limit wait until a slot frees or their deadline passes. The timeout covers
// both the wait for a slot and the call itself.
type LimitedCompleter struct {
	next    Completer
	sem     *semaphore.Weighted
	timeout time.Duration
}

func NewLimitedCompleter(next Completer, maxConcurrent int, timeout time.Duration) *LimitedCompleter {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &LimitedCompleter{
		next:    next,
		sem:     semaphore.NewWeighted(int64(maxConcurrent)),
		timeout: timeout,
	}
}

func (l *LimitedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	if err := l.sem.Acquire(ctx, 1); err != nil {
		return "", &CompletionError{Err: fmt.Errorf("waiting for completion slot: %w", err)}
	}
	defer l.sem.Release(1)

	return l.next.Complete(ctx, prompt)
}
