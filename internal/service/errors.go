package service

import (
	"errors"
	"fmt"

	"github.com/FutureNHS/futurenhs-platform/internal/store"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrEventNotPublished accompanies a result whose mutation committed but
	// whose event could not be handed to the publisher.
	ErrEventNotPublished = errors.New("event not published")
)

// storeErr turns store.ErrNotFound into ErrNotFound naming what was missing
// and wraps anything else with the operation that failed.
func storeErr(err error, what, doing string) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%s %w", what, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", doing, err)
}
