package toast

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/veiltui/veil/styles"
)

var levelIcons = map[Level]string{
	LevelInfo:    "ℹ",
	LevelSuccess: "✓",
	LevelWarning: "⚠",
	LevelError:   "✗",
}

// Renderer handles rendering of toast notifications
type Renderer struct {
	styles *styles.Styles
}

// NewRenderer creates a Renderer with the given styles
func NewRenderer(s *styles.Styles) *Renderer {
	return &Renderer{
		styles: s,
	}
}

// Render renders a stack of toasts aligned to the right edge.
// Returns empty string if no toasts to display.
func (r *Renderer) Render(toasts []*Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	var rendered []string
	toastWidth := width / 3
	if toastWidth > 40 {
		toastWidth = 40 // Cap maximum toast width
	}

	for _, t := range toasts {
		style := r.styleForLevel(t.Level)
		if t.Phase == PhaseClosing {
			style = style.Foreground(styles.Overlay0).BorderForeground(styles.Surface1)
		}
		rendered = append(rendered, style.Width(toastWidth).Render(r.label(t)))
	}

	// Stack toasts vertically, newest last, aligned to the right
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// label prepends the level icon unless the message already leads with one.
func (r *Renderer) label(t *Toast) string {
	if hasStatusGlyph(t.Message) {
		return t.Message
	}
	return levelIcons[t.Level] + " " + t.Message
}

// styleForLevel returns the appropriate style for a toast level
func (r *Renderer) styleForLevel(level Level) lipgloss.Style {
	switch level {
	case LevelSuccess:
		return r.styles.ToastSuccess
	case LevelWarning:
		return r.styles.ToastWarning
	case LevelError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}

func hasStatusGlyph(message string) bool {
	for _, icon := range levelIcons {
		if len(message) >= len(icon) && message[:len(icon)] == icon {
			return true
		}
	}
	return false
}
