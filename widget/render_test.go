package widget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput(t *testing.T) {
	got := Input(InputConfig{Label: "Query", Placeholder: "search...", Width: 30})

	assert.Contains(t, got, "Query")
	assert.Contains(t, got, "search...")
}

func TestInput_ValueShownInsteadOfPlaceholder(t *testing.T) {
	got := Input(InputConfig{Placeholder: "search...", Value: "annual report"})

	assert.Contains(t, got, "annual report")
}

func TestSelect(t *testing.T) {
	got := Select(SelectConfig{
		Label:    "Sort by",
		Options:  []string{"relevance", "date", "title"},
		Selected: 1,
	})

	assert.Contains(t, got, "Sort by")
	assert.Contains(t, got, "relevance")
	assert.Contains(t, got, "> date", "selected option should be marked")
	assert.Contains(t, got, "title")
}

func TestSelect_OutOfRangeSelection(t *testing.T) {
	got := Select(SelectConfig{Options: []string{"a", "b"}, Selected: 9})

	assert.Contains(t, got, "a")
	assert.NotContains(t, got, ">", "no option should be marked")
}

func TestPagination(t *testing.T) {
	got := Pagination(PaginationConfig{Page: 1, TotalPages: 4})

	// One active dot plus three inactive ones.
	assert.Equal(t, 1, strings.Count(got, "●"))
	assert.Equal(t, 3, strings.Count(got, "○"))
}

func TestPagination_Label(t *testing.T) {
	got := Pagination(PaginationConfig{Page: 2, TotalPages: 10, ShowLabel: true})

	assert.Contains(t, got, "page 3 of 10")
}

func TestPagination_ClampsOutOfRange(t *testing.T) {
	got := Pagination(PaginationConfig{Page: 99, TotalPages: 3, ShowLabel: true})
	assert.Contains(t, got, "page 3 of 3")

	got = Pagination(PaginationConfig{Page: -5, TotalPages: 3, ShowLabel: true})
	assert.Contains(t, got, "page 1 of 3")
}

func TestModal(t *testing.T) {
	got := Modal(ModalConfig{
		ID:    "about",
		Title: "About",
		Body:  "Veil demo application",
		Buttons: []ButtonConfig{
			{Label: "Close", Variant: VariantSecondary},
		},
	})

	assert.Contains(t, got, "About")
	assert.Contains(t, got, "Veil demo application")
	assert.Contains(t, got, "Close")
}

func TestModal_EmptyConfig(t *testing.T) {
	got := Modal(ModalConfig{})

	assert.NotEmpty(t, got, "even an empty modal renders its frame")
}

func TestCard(t *testing.T) {
	got := Card(CardConfig{Title: "Report.pdf", Body: "12 pages", Footer: "indexed 2d ago"})

	assert.Contains(t, got, "Report.pdf")
	assert.Contains(t, got, "12 pages")
	assert.Contains(t, got, "indexed 2d ago")
}

func TestTable(t *testing.T) {
	got := Table(TableConfig{
		Columns: []string{"Name", "Pages"},
		Rows: [][]string{
			{"Report.pdf", "12"},
			{"Notes.md", "3"},
		},
	})

	assert.Contains(t, got, "Name")
	assert.Contains(t, got, "Pages")
	assert.Contains(t, got, "Report.pdf")
	assert.Contains(t, got, "Notes.md")
}

func TestBadge(t *testing.T) {
	for _, v := range []Variant{VariantPrimary, VariantDanger, Variant("nope")} {
		got := Badge(BadgeConfig{Text: "NEW", Variant: v})
		assert.Contains(t, got, "NEW")
	}
}

func TestAlert(t *testing.T) {
	got := Alert(AlertConfig{Title: "Index stale", Message: "Run reindex to refresh results", Variant: VariantDanger})

	assert.Contains(t, got, "Index stale")
	assert.Contains(t, got, "Run reindex to refresh results")
}

func TestLoading(t *testing.T) {
	got := Loading(LoadingConfig{Label: "Searching"})

	assert.Contains(t, got, "Searching")
	assert.NotEmpty(t, Loading(LoadingConfig{}))
}
