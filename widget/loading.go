package widget

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/veiltui/veil/styles"
)

// LoadingConfig describes a loading indicator renderer call.
type LoadingConfig struct {
	Label string
}

// Loading renders a static spinner frame with an optional label.
func Loading(cfg LoadingConfig) string {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	frame := sp.View()
	if cfg.Label == "" {
		return frame
	}
	label := lipgloss.NewStyle().Foreground(styles.Subtext0).Render(cfg.Label)
	return frame + " " + label
}
