package fixtures

import "errors"

var (
	// ErrInvalidShape is returned when a document does not map scenario
	// names to arrays of date strings.
	ErrInvalidShape = errors.New("streak must be an array of date strings")

	// ErrUnknownScenario is returned by Dataset.Get for a missing name.
	ErrUnknownScenario = errors.New("unknown scenario")
)
