package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/veiltui/veil/styles"
)

// AlertConfig describes an alert renderer call.
type AlertConfig struct {
	Title   string
	Message string
	Variant Variant // default primary
	Width   int     // 0 means fit content
}

var alertIcons = map[Variant]string{
	VariantPrimary:   "ℹ",
	VariantSecondary: "ℹ",
	VariantDanger:    "✗",
	VariantSuccess:   "✓",
	VariantOutline:   "ℹ",
}

// Alert renders an inline alert box.
func Alert(cfg AlertConfig) string {
	s := styles.Default()
	variant := normalizeVariant(cfg.Variant)

	accent := buttonAccents[variant]
	if variant == VariantOutline {
		accent = styles.Surface2
	}

	var parts []string
	if cfg.Title != "" {
		title := alertIcons[variant] + " " + cfg.Title
		parts = append(parts, s.AlertTitle.Foreground(accent).Render(title))
	}
	if cfg.Message != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(styles.Text).Render(cfg.Message))
	}

	style := s.Alert.BorderForeground(accent)
	if cfg.Width > 0 {
		style = style.Width(cfg.Width)
	}
	return style.Render(joinLines(parts...))
}
