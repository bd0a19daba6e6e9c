// Package wizard provides the interactive question flow used when
// `exgen new` runs on a terminal without enough flags to proceed.
package wizard

import (
	"errors"

	"github.com/exgen-dev/exgen/internal/resolve"
)

// WizardResult holds the user's selections.
type WizardResult struct {
	ProjectName    string   // Project name (required)
	Language       string   // "javascript" or "typescript"
	View           string   // View engine, or "none"
	CSS            string   // Stylesheet engine (set when a view is chosen)
	Databases      []string // Any of "mongodb", "postgres", "redis"
	Features       []string // Extra feature toggles
	Preset         string   // Built-in preset shortcut, or "none"
	PackageManager string   // "auto" or a concrete manager
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeMultiSelect is a multiple-choice selection question.
	QuestionTypeMultiSelect
)

// Question defines a single wizard question.
type Question struct {
	ID          string                   // Unique identifier
	Type        QuestionType             // Select, Input or MultiSelect
	Title       string                   // Question title
	Description string                   // Additional description
	Options     []Option                 // Options for select questions
	Default     string                   // Default value
	Required    bool                     // Whether the field is required
	Condition   func(*WizardResult) bool // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)

// Bundle converts the selections into resolver settings. Only answered
// questions contribute entries, so later flag layers stay authoritative.
func (r *WizardResult) Bundle() resolve.Bundle {
	b := resolve.Bundle{}

	switch r.Language {
	case "typescript":
		b[resolve.KeyTypeScript] = true
	case "javascript":
		b[resolve.KeyJavaScript] = true
	}

	switch r.View {
	case "", "none":
		b[resolve.KeyNoView] = true
	default:
		b[resolve.KeyView] = r.View
		b[resolve.KeyNoView] = false
		if r.CSS != "" {
			b[resolve.KeyCSS] = r.CSS
		}
	}

	for _, db := range r.Databases {
		switch db {
		case "mongodb":
			b[resolve.KeyMongoDB] = true
		case "postgres":
			b[resolve.KeyPostgres] = true
		case "redis":
			b[resolve.KeyRedis] = true
		}
	}

	featureKeys := map[string]resolve.Key{
		"auth":       resolve.KeyAuth,
		"cors":       resolve.KeyCORS,
		"helmet":     resolve.KeyHelmet,
		"rate-limit": resolve.KeyRateLimit,
		"validation": resolve.KeyValidation,
		"swagger":    resolve.KeySwagger,
		"testing":    resolve.KeyTesting,
		"docker":     resolve.KeyDocker,
		"elk":        resolve.KeyELK,
	}
	for _, f := range r.Features {
		if key, ok := featureKeys[f]; ok {
			b[key] = true
		}
	}

	if r.Preset != "" && r.Preset != "none" {
		if key := resolve.Key(r.Preset); resolve.IsValidKey(key) {
			b[key] = true
		}
	}

	return b
}
