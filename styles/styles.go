// Package styles holds the shared Veil palette and style set.
//
// The style set is built exactly once per process via Default; every widget
// and overlay draws from the same instance, mirroring a stylesheet that is
// injected into a page at most once.
package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the toolkit styles
type Styles struct {
	// Widgets
	ButtonBase     lipgloss.Style
	ButtonOutline  lipgloss.Style
	ButtonDisabled lipgloss.Style
	InputLabel     lipgloss.Style
	InputBox       lipgloss.Style
	Card           lipgloss.Style
	CardTitle      lipgloss.Style
	CardFooter     lipgloss.Style
	Badge          lipgloss.Style
	Alert          lipgloss.Style
	AlertTitle     lipgloss.Style
	TableHeader    lipgloss.Style
	TableCell      lipgloss.Style
	Pagination     lipgloss.Style

	// Overlays
	Overlay        lipgloss.Style
	OverlayClosing lipgloss.Style
	OverlayTitle   lipgloss.Style
	OverlayIcon    lipgloss.Style
	Backdrop       lipgloss.Style
	Callout        lipgloss.Style
	Emphasis       lipgloss.Style
	Footer         lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

var (
	defaultOnce   sync.Once
	defaultStyles *Styles
)

// Default returns the shared style set, building it on first use.
// Subsequent calls return the same instance.
func Default() *Styles {
	defaultOnce.Do(func() {
		defaultStyles = New()
	})
	return defaultStyles
}

// New creates a new Styles instance with the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		ButtonBase: lipgloss.NewStyle().
			Foreground(Base).
			Bold(true),

		ButtonOutline: lipgloss.NewStyle().
			Foreground(Text).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(Overlay0).
			Background(Surface0),

		InputLabel: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true),

		InputBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		CardFooter: lipgloss.NewStyle().
			Foreground(Overlay1),

		Badge: lipgloss.NewStyle().
			Foreground(Base).
			Padding(0, 1).
			Bold(true),

		Alert: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1),

		AlertTitle: lipgloss.NewStyle().
			Bold(true),

		TableHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1),

		TableCell: lipgloss.NewStyle().
			Foreground(Text).
			Padding(0, 1),

		Pagination: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayClosing: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface0).
			Foreground(Overlay0).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		OverlayIcon: lipgloss.NewStyle().
			Bold(true),

		Backdrop: lipgloss.NewStyle().
			Foreground(Crust),

		Callout: lipgloss.NewStyle().
			Foreground(Yellow).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderTop(false).
			BorderRight(false).
			BorderBottom(false).
			BorderForeground(Yellow).
			PaddingLeft(1),

		Emphasis: lipgloss.NewStyle().
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Subtext0).
			MarginTop(1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Sky).
			Foreground(Sky).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}
