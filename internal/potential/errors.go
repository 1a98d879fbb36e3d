package potential

import "errors"

// Domain errors for component construction.
var (
	// ErrUnknownType indicates a type tag with no registered component.
	ErrUnknownType = errors.New("potential: unknown component type")

	// ErrMalformedParams indicates a packed parameter buffer whose length
	// does not match the components declared by the type tags.
	ErrMalformedParams = errors.New("potential: malformed parameter block")
)
