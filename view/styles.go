package view

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for the viewer surfaces. Colors come
// from the theme config so the whole palette can be swapped at runtime.
type Styles struct {
	// Detail pane
	Match    lipgloss.Style
	Mismatch lipgloss.Style
	Indel    lipgloss.Style
	Primer   lipgloss.Style
	Label    lipgloss.Style
	Ruler    lipgloss.Style
	Bar      lipgloss.Style

	// Minimap strip
	MinimapBase      lipgloss.Style
	MinimapGC        lipgloss.Style
	MinimapWindow    lipgloss.Style
	MinimapHandle    lipgloss.Style
	MinimapSelection lipgloss.Style

	// Chrome
	Status       lipgloss.Style
	StatusAccent lipgloss.Style
	Message      lipgloss.Style
}

// ThemeColors is the color set the config layer hands to the view. Values
// are lipgloss color strings: ANSI indexes or #RRGGBB hex.
type ThemeColors struct {
	MismatchBg  string
	IndelBg     string
	PrimerBg    string
	LabelFg     string
	RulerFg     string
	BarFg       string
	GCFg        string
	WindowBg    string
	HandleBg    string
	SelectionBg string
	StatusBg    string
	StatusFg    string
	AccentFg    string
	MessageFg   string
}

// DefaultColors is the built-in palette: red mismatches, violet indels,
// amber primers.
func DefaultColors() ThemeColors {
	return ThemeColors{
		MismatchBg:  "#d23b3b",
		IndelBg:     "#8a63d2",
		PrimerBg:    "#d2973b",
		LabelFg:     "250",
		RulerFg:     "244",
		BarFg:       "245",
		GCFg:        "37",
		WindowBg:    "238",
		HandleBg:    "31",
		SelectionBg: "24",
		StatusBg:    "236",
		StatusFg:    "252",
		AccentFg:    "45",
		MessageFg:   "220",
	}
}

// NewStyles builds the style set from a palette.
func NewStyles(c ThemeColors) Styles {
	return Styles{
		Match:    lipgloss.NewStyle(),
		Mismatch: lipgloss.NewStyle().Background(lipgloss.Color(c.MismatchBg)).Foreground(lipgloss.Color("231")),
		Indel:    lipgloss.NewStyle().Background(lipgloss.Color(c.IndelBg)).Foreground(lipgloss.Color("231")),
		Primer:   lipgloss.NewStyle().Background(lipgloss.Color(c.PrimerBg)).Foreground(lipgloss.Color("16")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.LabelFg)),
		Ruler:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.RulerFg)),
		Bar:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.BarFg)),

		MinimapBase:      lipgloss.NewStyle(),
		MinimapGC:        lipgloss.NewStyle().Foreground(lipgloss.Color(c.GCFg)),
		MinimapWindow:    lipgloss.NewStyle().Background(lipgloss.Color(c.WindowBg)),
		MinimapHandle:    lipgloss.NewStyle().Background(lipgloss.Color(c.HandleBg)),
		MinimapSelection: lipgloss.NewStyle().Background(lipgloss.Color(c.SelectionBg)),

		Status:       lipgloss.NewStyle().Background(lipgloss.Color(c.StatusBg)).Foreground(lipgloss.Color(c.StatusFg)),
		StatusAccent: lipgloss.NewStyle().Background(lipgloss.Color(c.StatusBg)).Foreground(lipgloss.Color(c.AccentFg)),
		Message:      lipgloss.NewStyle().Background(lipgloss.Color(c.StatusBg)).Foreground(lipgloss.Color(c.MessageFg)),
	}
}

// DefaultStyles builds the style set from the built-in palette.
func DefaultStyles() Styles {
	return NewStyles(DefaultColors())
}

// PaintStyle maps an overlay paint to its style.
func (s Styles) PaintStyle(p Paint) lipgloss.Style {
	switch p {
	case PaintPrimer:
		return s.Primer
	case PaintIndel:
		return s.Indel
	case PaintMismatch:
		return s.Mismatch
	}
	return s.Match
}
