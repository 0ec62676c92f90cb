package widget

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/veiltui/veil/styles"
)

// InputConfig describes a text input renderer call.
type InputConfig struct {
	Label       string
	Placeholder string
	Value       string
	Width       int // 0 means unbounded
}

// Input renders a labeled text input using a static bubbles textinput view.
func Input(cfg InputConfig) string {
	s := styles.Default()

	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.SetValue(cfg.Value)
	ti.Prompt = ""
	if cfg.Width > 0 {
		ti.Width = cfg.Width
	}

	box := s.InputBox.Render(ti.View())
	if cfg.Label == "" {
		return box
	}
	return joinLines(s.InputLabel.Render(cfg.Label), box)
}
