package retry

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// BackendPolicy retries failed backend reads. attempts <= 1 disables retrying;
// a fresh navigation or refresh is then the only way to reload.
func BackendPolicy(attempts int, log *zap.Logger) Policy {
	return Policy{
		Name:     "backend",
		Attempts: attempts,
		Backoff:  ExpoJitter{Base: 150 * time.Millisecond, Max: 2 * time.Second, Jitter: 0.2},
		Retryable: func(err error) bool {
			return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, ErrPermanent)
		},
		OnAttempt: func(i int, err error) {
			if log != nil {
				log.Debug("backend retry", zap.Int("attempt", i+1), zap.Error(err))
			}
		},
		OnExhaust: func(err error) {
			if log != nil && attempts > 1 && !errors.Is(err, context.Canceled) {
				log.Warn("backend retries exhausted", zap.Int("attempts", attempts), zap.Error(err))
			}
		},
	}
}
