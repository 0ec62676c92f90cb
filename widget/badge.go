package widget

import "github.com/veiltui/veil/styles"

// BadgeConfig describes a badge renderer call.
type BadgeConfig struct {
	Text    string
	Variant Variant // default primary
}

// Badge renders a small inline status label.
func Badge(cfg BadgeConfig) string {
	s := styles.Default()
	variant := normalizeVariant(cfg.Variant)

	accent := buttonAccents[variant]
	if variant == VariantOutline {
		accent = styles.Surface2
	}
	return s.Badge.Background(accent).Render(cfg.Text)
}
