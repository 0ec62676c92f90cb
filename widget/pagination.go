package widget

import (
	"fmt"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"github.com/veiltui/veil/styles"
)

// PaginationConfig describes a pagination renderer call.
type PaginationConfig struct {
	Page       int // zero-based
	TotalPages int
	ShowLabel  bool // append a "page n of m" label after the dots
}

// Pagination renders a dot paginator for the given page position.
func Pagination(cfg PaginationConfig) string {
	s := styles.Default()

	total := cfg.TotalPages
	if total < 1 {
		total = 1
	}
	page := cfg.Page
	if page < 0 {
		page = 0
	}
	if page >= total {
		page = total - 1
	}

	p := paginator.New()
	p.Type = paginator.Dots
	p.TotalPages = total
	p.Page = page
	p.ActiveDot = lipgloss.NewStyle().Foreground(styles.Blue).Render("●")
	p.InactiveDot = lipgloss.NewStyle().Foreground(styles.Surface2).Render("○")

	dots := p.View()
	if !cfg.ShowLabel {
		return dots
	}
	label := s.Pagination.Render(fmt.Sprintf(" page %d of %d", page+1, total))
	return dots + label
}
