package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/popup-shell/internal/env"
)

// Env keys read by FromEnv. Colours are ANSI 256 codes or hex strings.
var (
	AccentKey = env.NewKey("theme.accent", "33")
	MutedKey  = env.NewKey("theme.muted", "241")
	BorderKey = env.NewKey("theme.border", "238")
)

// Styles describes reusable Lip Gloss styles shared by the terminal shell and
// the demo widgets.
type Styles struct {
	Frame             *lipgloss.Style
	Title             *lipgloss.Style
	Status            *lipgloss.Style
	Item              *lipgloss.Style
	SelectedItem      *lipgloss.Style
	DisabledItem      *lipgloss.Style
	Hotkey            *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Header            *lipgloss.Style
	Accent            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
}

var defaultStyles = build("33", "241", "238")

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

// FromEnv builds a style set with the colours configured in e. Unset keys
// keep the defaults.
func FromEnv(e *env.Env) *Styles {
	if e == nil {
		return Default()
	}
	s := build(env.Get(e, AccentKey), env.Get(e, MutedKey), env.Get(e, BorderKey))
	return &s
}

func build(accent, muted, border string) Styles {
	return Styles{
		Frame: ptr(
			lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(border)),
		),
		Title: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		),
		Status: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		),
		Item: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		SelectedItem: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color(border)).Bold(true),
		),
		DisabledItem: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).Faint(true),
		),
		Hotkey: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		Header: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
		),
		Accent: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		),
		Filter: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		FilterPrompt: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		),
		FilterPlaceholder: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
