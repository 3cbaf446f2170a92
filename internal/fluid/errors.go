package fluid

import "errors"

var (
	// ErrInvalidIterations indicates a non-positive relaxation sweep count.
	ErrInvalidIterations = errors.New("fluid: relaxation iterations must be at least 1")
	// ErrFieldSize indicates a field whose length does not match the grid.
	ErrFieldSize = errors.New("fluid: field length does not match grid")
)
