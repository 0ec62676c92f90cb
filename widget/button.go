package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/veiltui/veil/styles"
)

// ButtonConfig describes a button renderer call.
type ButtonConfig struct {
	Label    string
	Variant  Variant // default primary
	Size     Size    // default md
	Disabled bool
	Active   bool // highlighted as the focused control
}

var buttonAccents = map[Variant]lipgloss.Color{
	VariantPrimary:   styles.Blue,
	VariantSecondary: styles.Surface2,
	VariantDanger:    styles.Red,
	VariantSuccess:   styles.Green,
}

// Button renders a single button.
func Button(cfg ButtonConfig) string {
	s := styles.Default()
	pad := paddingFor(cfg.Size)
	variant := normalizeVariant(cfg.Variant)

	if cfg.Disabled {
		return s.ButtonDisabled.
			Padding(pad.vertical, pad.horizontal).
			Render(cfg.Label)
	}

	if variant == VariantOutline {
		style := s.ButtonOutline.Padding(pad.vertical, pad.horizontal)
		if cfg.Active {
			style = style.BorderForeground(styles.Blue).Foreground(styles.Blue).Bold(true)
		}
		return style.Render(cfg.Label)
	}

	style := s.ButtonBase.
		Background(buttonAccents[variant]).
		Padding(pad.vertical, pad.horizontal)
	if cfg.Active {
		style = style.Underline(true)
	}
	return style.Render(cfg.Label)
}
