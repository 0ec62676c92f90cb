package widget

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/veiltui/veil/styles"
)

// TableConfig describes a table renderer call.
type TableConfig struct {
	Columns []string
	Rows    [][]string
	Width   int // 0 means fit content
}

// Table renders a bordered data table.
func Table(cfg TableConfig) string {
	s := styles.Default()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Surface1)).
		Headers(cfg.Columns...).
		Rows(cfg.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			return s.TableCell
		})

	if cfg.Width > 0 {
		t = t.Width(cfg.Width)
	}
	return t.String()
}
