package service

import (
	"context"
	"errors"
)

// ErrStoreUnavailable is returned when a store call exceeds its latency
// budget instead of letting the caller hang.
var ErrStoreUnavailable = errors.New("store unavailable")

// storeErr maps a store-call deadline overrun to ErrStoreUnavailable and
// passes every other error through unchanged.
func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrStoreUnavailable
	}
	return err
}
