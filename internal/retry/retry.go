package retry

import (
	"context"
	"time"
)

// maxDelay caps the backoff between two attempts.
const maxDelay = 5 * time.Second

// DoWithRetry calls fn up to attempts times, doubling the wait after each
// failure. It returns the last error, or ctx.Err() once ctx is done.
func DoWithRetry(ctx context.Context, attempts int, baseDelay time.Duration, fn func(ctx context.Context) error) error {
	var err error
	delay := baseDelay

	for i := 0; i < attempts; i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err = fn(ctx); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
		}
	}
	return err
}
