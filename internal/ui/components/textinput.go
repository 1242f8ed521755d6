package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lifebuddy/lifebuddy/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with the board's styling.
type TextInput struct {
	Model    textinput.Model
	Label    string
	MaxWidth int
	invalid  bool
}

// NewTextInput creates a new focused text input.
func NewTextInput(label, placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		Label:    label,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Any edit clears a previous rejection.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.invalid = false
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label above the input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.invalid {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ required")
	}
	if t.Label == "" {
		return view
	}
	return theme.Body.Render(t.Label) + "\n\n" + view
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// Reject flags the current value as unusable until the next edit.
func (t *TextInput) Reject() {
	t.invalid = true
}

// Rejected reports whether the last submission was refused.
func (t TextInput) Rejected() bool {
	return t.invalid
}
