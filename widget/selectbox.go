package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/veiltui/veil/styles"
)

// SelectConfig describes a select renderer call.
type SelectConfig struct {
	Label    string
	Options  []string
	Selected int // index into Options; out-of-range renders no highlight
}

// Select renders a vertical option list with the selected entry highlighted.
func Select(cfg SelectConfig) string {
	s := styles.Default()

	item := lipgloss.NewStyle().Foreground(styles.Text).PaddingLeft(2)
	active := lipgloss.NewStyle().Foreground(styles.Blue).Bold(true)

	lines := make([]string, 0, len(cfg.Options)+1)
	if cfg.Label != "" {
		lines = append(lines, s.InputLabel.Render(cfg.Label))
	}
	for i, opt := range cfg.Options {
		if i == cfg.Selected {
			lines = append(lines, active.Render("> "+opt))
			continue
		}
		lines = append(lines, item.Render(opt))
	}

	return s.InputBox.Render(joinLines(lines...))
}
