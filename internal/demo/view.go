package demo

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/veiltui/veil/styles"
	"github.com/veiltui/veil/widget"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return widget.Loading(widget.LoadingConfig{Label: "Starting..."})
	}

	header := m.renderHeader()
	search := m.renderSearch()
	body := m.renderDocs()
	footer := m.renderFooter()

	base := lipgloss.JoinVertical(lipgloss.Left, header, search, body, footer)
	return m.overlays.View(base, m.width, m.height)
}

func (m *Model) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(styles.Mauve).Bold(true).Render("veil demo")
	count := widget.Badge(widget.BadgeConfig{
		Text:    fmt.Sprintf("%d docs", len(m.docs)),
		Variant: widget.VariantPrimary,
	})
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", count)
}

func (m *Model) renderSearch() string {
	label := "Search"
	if m.searching {
		label = "Search (editing)"
	}
	return widget.Input(widget.InputConfig{
		Label:       label,
		Placeholder: "type to filter...",
		Value:       m.query,
		Width:       40,
	})
}

func (m *Model) renderDocs() string {
	docs := m.filtered()
	if len(docs) == 0 {
		return widget.Alert(widget.AlertConfig{
			Title:   "No matches",
			Message: fmt.Sprintf("Nothing in the library matches %q.", m.query),
			Variant: widget.VariantSecondary,
		})
	}

	start := m.page * docsPerPage
	if start >= len(docs) {
		start = (len(docs) - 1) / docsPerPage * docsPerPage
	}
	end := start + docsPerPage
	if end > len(docs) {
		end = len(docs)
	}

	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		d := docs[i]
		rows = append(rows, []string{marker + d.Name, d.Pages, d.Status})
	}

	table := widget.Table(widget.TableConfig{
		Columns: []string{"Document", "Pages", "Status"},
		Rows:    rows,
	})
	pager := widget.Pagination(widget.PaginationConfig{
		Page:       m.page,
		TotalPages: m.totalPages(),
		ShowLabel:  true,
	})
	return lipgloss.JoinVertical(lipgloss.Left, table, pager)
}

func (m *Model) renderFooter() string {
	help := "/ search • j/k move • ←/→ page • d delete • r reindex • a about • s/x toast • q quit"
	return lipgloss.NewStyle().Foreground(styles.Subtext0).Render(help)
}
