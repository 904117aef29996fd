package marquee

import "errors"

var (
	// ErrMissingTemplate is reported for a wrap that declares no content template.
	ErrMissingTemplate = errors.New("marquee: wrap has no content template")

	// ErrDegenerateGeometry is reported when a block measures zero, negative or non-finite.
	ErrDegenerateGeometry = errors.New("marquee: degenerate block geometry")

	// ErrInvalidWidth is reported when a wrap width is negative or non-finite.
	ErrInvalidWidth = errors.New("marquee: invalid wrap width")
)
