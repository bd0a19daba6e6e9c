package resolve

import "errors"

// Sentinel errors for option resolution.
var (
	// ErrUnknownOption indicates a bundle key outside the option enumeration.
	ErrUnknownOption = errors.New("resolve: unknown option")

	// ErrUnknownPreset indicates a user preset name with no definition.
	ErrUnknownPreset = errors.New("resolve: unknown preset")

	// ErrEmptyName indicates a missing project name.
	ErrEmptyName = errors.New("resolve: project name is empty")
)
