package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hanbipark/worklog/internal/cli/formatter"
	"github.com/hanbipark/worklog/internal/config"
	"github.com/hanbipark/worklog/internal/service"
)

// worklogHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func worklogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// promptReportRequest fills the missing pieces of a report request
// interactively. The author comes from a select over the configured author
// list when one exists, otherwise from a free-text input; the prefilled
// date range can be adjusted in place.
func promptReportRequest(cfg *config.Config, req *service.ReportRequest) error {
	var authorField huh.Field
	if len(cfg.Authors) > 0 {
		options := make([]huh.Option[string], 0, len(cfg.Authors))
		for _, a := range cfg.Authors {
			options = append(options, huh.NewOption(a, a))
		}
		authorField = huh.NewSelect[string]().
			Title("Whose worklogs?").
			Options(options...).
			Value(&req.Author)
	} else {
		authorField = huh.NewInput().
			Title("Author (Jira display name)").
			Placeholder("Hong Gildong").
			Value(&req.Author).
			Validate(validateNonEmpty)
	}

	form := huh.NewForm(
		huh.NewGroup(
			authorField,
			dateInput("From (YYYY-MM-DD)", &req.Start),
			dateInput("To (YYYY-MM-DD)", &req.End),
		),
	).WithTheme(worklogHuhTheme()).WithShowHelp(false)

	return form.Run()
}

// dateInput returns a huh.Input for a required date field with YYYY-MM-DD validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30").
		Value(value).
		Validate(validateDate)
}

// validateDate accepts exactly YYYY-MM-DD.
func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// validateNonEmpty rejects blank input.
func validateNonEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}
