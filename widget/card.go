package widget

import "github.com/veiltui/veil/styles"

// CardConfig describes a card renderer call.
type CardConfig struct {
	Title  string
	Body   string
	Footer string
	Width  int // 0 means fit content
}

// Card renders a bordered content card.
func Card(cfg CardConfig) string {
	s := styles.Default()

	var parts []string
	if cfg.Title != "" {
		parts = append(parts, s.CardTitle.Render(cfg.Title))
	}
	if cfg.Body != "" {
		parts = append(parts, cfg.Body)
	}
	if cfg.Footer != "" {
		parts = append(parts, s.CardFooter.Render(cfg.Footer))
	}

	style := s.Card
	if cfg.Width > 0 {
		style = style.Width(cfg.Width)
	}
	return style.Render(joinLines(parts...))
}
