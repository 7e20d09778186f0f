package engine

import "errors"

// Error taxonomy. InvalidInput and ProviderUnavailable conditions degrade
// the result instead of surfacing (the flags on Result carry them); the
// sentinels exist so callers and logs can still name the condition.
var (
	// ErrNotConstructed is returned when Calculate is invoked on an engine
	// that did not come from New.
	ErrNotConstructed = errors.New("engine: not constructed, use New")

	// ErrInvalidInput tags unparseable date or hour input. Never returned
	// by Calculate; recorded in Processed.InputError.
	ErrInvalidInput = errors.New("engine: invalid input")

	// ErrProviderUnavailable tags a lunar/term lookup that returned
	// nothing. Never returned by Calculate; reflected in the Approximate
	// flag.
	ErrProviderUnavailable = errors.New("engine: lunar provider unavailable")
)
