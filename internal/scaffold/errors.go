// Package scaffold materializes a resolved configuration into a project
// directory: it creates the directory tree and renders every generated
// file from the embedded template catalog.
package scaffold

import "errors"

// Sentinel errors for materialization.
var (
	// ErrTemplateNotFound indicates a catalog entry with no template.
	ErrTemplateNotFound = errors.New("scaffold: template not found")

	// ErrMissingTemplateKey indicates a template referenced a missing key.
	ErrMissingTemplateKey = errors.New("scaffold: missing template key")

	// ErrUnexpandedToken indicates leftover placeholders after rendering.
	ErrUnexpandedToken = errors.New("scaffold: unexpanded token in rendered output")

	// ErrPathTraversal indicates a destination outside the project root.
	ErrPathTraversal = errors.New("scaffold: path escapes project root")
)
