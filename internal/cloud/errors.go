package cloud

import "errors"

var (
	// ErrNoItems is a configuration error: a cloud cannot be built without items.
	ErrNoItems = errors.New("cloud: no items")

	// ErrDegenerateVector reports a zero-length vector that cannot be rescaled.
	ErrDegenerateVector = errors.New("cloud: degenerate vector")

	// ErrTweenAbandoned resolves a radius tween that was cut short by teardown.
	ErrTweenAbandoned = errors.New("cloud: tween abandoned")
)
