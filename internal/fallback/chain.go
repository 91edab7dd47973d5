// Package fallback runs an ordered list of attempts and keeps the first one
// that succeeds.
package fallback

import (
	"context"
	"errors"
	"fmt"
)

// ErrHalt marks an attempt failure that must end the chain
var ErrHalt = errors.New("fallback halted")

// Attempt produces a value, or an error when it has nothing usable
type Attempt[T any] func(ctx context.Context) (T, error)

// Halt wraps err so that First stops without trying later attempts
func Halt(err error) error {
	return fmt.Errorf("%w: %w", ErrHalt, err)
}

// IsHalt reports whether err ended a chain early
func IsHalt(err error) bool {
	return errors.Is(err, ErrHalt)
}

// First runs attempts in order and returns the first result with a nil error.
// If an attempt returns a halting error, or every attempt fails, def is
// returned along with the failure(s). Nil attempts are skipped.
func First[T any](ctx context.Context, def T, attempts ...Attempt[T]) (T, error) {
	var errs []error

	for i, attempt := range attempts {
		if attempt == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			return def, errors.Join(errs...)
		}

		v, err := attempt(ctx)
		if err == nil {
			return v, nil
		}

		if IsHalt(err) {
			return def, err
		}
		errs = append(errs, fmt.Errorf("attempt %d: %w", i+1, err))
	}

	if len(errs) == 0 {
		return def, errors.New("no attempts to run")
	}
	return def, errors.Join(errs...)
}
