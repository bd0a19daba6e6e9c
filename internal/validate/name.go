package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// maxNameLength is the npm package name length ceiling.
const maxNameLength = 214

// namePattern is the published npm package-naming grammar: lowercase
// alphanumerics plus hyphen, underscore, and dot, not starting with a dot
// or underscore. Case is checked separately so uppercase can warn instead
// of fail.
var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ProjectName checks the project name against the package-naming grammar.
// An empty name or a grammar violation is fatal; mixed case alone is a
// warning because the name can still be lowercased by the user.
func ProjectName(name string) Result {
	var r Result
	r.Valid = true

	if strings.TrimSpace(name) == "" {
		r.fail("name", name, ErrInvalidName, "project name must not be empty")
		return r
	}

	if len(name) > maxNameLength {
		r.fail("name", name, ErrInvalidName,
			"project name exceeds %d characters", maxNameLength)
	}

	lower := strings.ToLower(name)
	if lower != name {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("project name %q contains uppercase letters; npm package names are conventionally lowercase", name))
	}

	if !namePattern.MatchString(lower) {
		r.fail("name", name, ErrInvalidName,
			"project name %q is not a valid package name (lowercase letters, digits, and -._ only, no spaces, no leading . or _)", name)
	}

	return r
}
