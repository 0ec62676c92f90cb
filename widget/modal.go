package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/veiltui/veil/styles"
)

// ModalConfig describes a static modal renderer call. Static modals are
// opened and closed by identifier through the overlay manager; unlike
// confirmation dialogs they carry no callbacks.
type ModalConfig struct {
	ID      string
	Title   string
	Body    string
	Buttons []ButtonConfig
	Width   int // 0 uses the default dialog width
}

// DefaultModalWidth is used when a modal does not specify a width.
const DefaultModalWidth = 60

// Modal renders a bordered modal box with title, body, and a button row.
func Modal(cfg ModalConfig) string {
	s := styles.Default()

	width := cfg.Width
	if width <= 0 {
		width = DefaultModalWidth
	}

	var parts []string
	if cfg.Title != "" {
		parts = append(parts, s.OverlayTitle.Render(cfg.Title))
	}
	if cfg.Body != "" {
		parts = append(parts, lipgloss.NewStyle().Width(width-6).Render(cfg.Body))
	}
	if len(cfg.Buttons) > 0 {
		rendered := make([]string, 0, len(cfg.Buttons)*2)
		for i, b := range cfg.Buttons {
			if i > 0 {
				rendered = append(rendered, "  ")
			}
			rendered = append(rendered, Button(b))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
		parts = append(parts, "", row)
	}

	return s.Overlay.Width(width).Render(joinLines(parts...))
}
