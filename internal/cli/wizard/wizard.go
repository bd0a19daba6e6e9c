package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/exgen-dev/exgen/internal/ui"
)

// Run executes the wizard and returns the result.
// Each question runs as its own independent huh.Form so conditional
// questions can read the answers that precede them.
func Run(questions []Question, theme *ui.Theme) (*WizardResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if theme == nil {
		theme = ui.DefaultTheme()
	}

	result := &WizardResult{}
	formTheme := newWizardTheme(theme)

	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(result) {
			continue
		}

		form := huh.NewForm(buildQuestionGroup(q, result)).
			WithTheme(formTheme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// RunDefault runs the wizard with the default question set.
func RunDefault(workDir string, theme *ui.Theme) (*WizardResult, error) {
	return Run(DefaultQuestions(workDir), theme)
}

// buildQuestionGroup creates a huh.Group for a single question.
func buildQuestionGroup(q *Question, result *WizardResult) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, result)
	case QuestionTypeInput:
		field = buildInputField(q, result)
	case QuestionTypeMultiSelect:
		field = buildMultiSelectField(q, result)
	}

	return huh.NewGroup(field)
}

// buildSelectField creates a huh.Select for a single-choice question.
func buildSelectField(q *Question, result *WizardResult) *huh.Select[string] {
	selected := q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		label := opt.Label
		if opt.Desc != "" {
			label = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(label, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	sel.Validate(func(val string) error {
		saveAnswer(q.ID, val, result)
		return nil
	})

	return sel
}

// buildInputField creates a huh.Input for a text question.
func buildInputField(q *Question, result *WizardResult) *huh.Input {
	value := q.Default

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	qID := q.ID
	required := q.Required
	defVal := q.Default
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" && defVal != "" {
			v = defVal
		}
		if required && v == "" {
			return errors.New("a value is required")
		}
		saveAnswer(qID, v, result)
		return nil
	})

	return inp
}

// buildMultiSelectField creates a huh.MultiSelect for a toggle question.
func buildMultiSelectField(q *Question, result *WizardResult) *huh.MultiSelect[string] {
	var selected []string

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		opts[i] = huh.NewOption(opt.Label, opt.Value)
	}

	ms := huh.NewMultiSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	qID := q.ID
	ms.Validate(func(vals []string) error {
		for _, v := range vals {
			saveAnswer(qID, v, result)
		}
		return nil
	})

	return ms
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *WizardResult) {
	switch id {
	case "project_name":
		result.ProjectName = value
	case "language":
		result.Language = value
	case "view":
		result.View = value
	case "css":
		result.CSS = value
	case "databases":
		for _, db := range result.Databases {
			if db == value {
				return
			}
		}
		result.Databases = append(result.Databases, value)
	case "features":
		for _, f := range result.Features {
			if f == value {
				return
			}
		}
		result.Features = append(result.Features, value)
	case "preset":
		result.Preset = value
	case "package_manager":
		result.PackageManager = value
	}
}

// newWizardTheme maps the exgen palette onto a huh theme.
func newWizardTheme(t *ui.Theme) *huh.Theme {
	ht := huh.ThemeBase()
	if t.NoColor {
		return ht
	}

	primary := lipgloss.Color(t.Colors.Primary)
	secondary := lipgloss.Color(t.Colors.Secondary)
	green := lipgloss.Color(t.Colors.Success)
	red := lipgloss.Color(t.Colors.Error)
	muted := lipgloss.Color(t.Colors.Muted)

	ht.Focused.Title = ht.Focused.Title.Foreground(primary).Bold(true)
	ht.Focused.Description = ht.Focused.Description.Foreground(muted)
	ht.Focused.ErrorIndicator = ht.Focused.ErrorIndicator.Foreground(red)
	ht.Focused.ErrorMessage = ht.Focused.ErrorMessage.Foreground(red)
	ht.Focused.SelectSelector = ht.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	ht.Focused.SelectedOption = ht.Focused.SelectedOption.Foreground(green)
	ht.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	ht.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	ht.Focused.MultiSelectSelector = ht.Focused.MultiSelectSelector.Foreground(primary)
	ht.Focused.TextInput.Cursor = ht.Focused.TextInput.Cursor.Foreground(primary)
	ht.Focused.TextInput.Placeholder = ht.Focused.TextInput.Placeholder.Foreground(muted)
	ht.Focused.TextInput.Prompt = ht.Focused.TextInput.Prompt.Foreground(secondary)

	ht.Blurred = ht.Focused
	ht.Blurred.Base = ht.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return ht
}
