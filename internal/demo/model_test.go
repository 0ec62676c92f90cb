package demo

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veiltui/veil/config"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := New(config.Default(), zerolog.Nop())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestFilterDocs(t *testing.T) {
	docs := sampleLibrary()

	assert.Len(t, filterDocs(docs, ""), len(docs))
	assert.Len(t, filterDocs(docs, "no-such-doc"), 0)

	matches := filterDocs(docs, "report")
	require.NotEmpty(t, matches)
	for _, d := range matches {
		assert.Contains(t, d.Name, "report")
	}
}

func TestModel_DeleteFlow(t *testing.T) {
	m := newTestModel(t)
	before := len(m.docs)
	target := m.docs[0].Name

	m.Update(key('d'))
	require.True(t, m.overlays.DialogOpen(), "delete should open a confirmation dialog")

	// Confirm deletion.
	_, cmd := m.Update(key('y'))
	assert.Len(t, m.docs, before-1)
	for _, d := range m.docs {
		assert.NotEqual(t, target, d.Name)
	}
	assert.NotNil(t, cmd, "teardown and toast expiry should be scheduled")
	assert.Equal(t, 1, m.overlays.ToastCount(), "deletion reports a toast")
}

func TestModel_DeleteCancelKeepsDoc(t *testing.T) {
	m := newTestModel(t)
	before := len(m.docs)

	m.Update(key('d'))
	m.Update(tea.KeyMsg{Type: tea.KeyEscape})

	assert.Len(t, m.docs, before)
	assert.Equal(t, 0, m.overlays.ToastCount())
}

func TestModel_DialogOwnsKeyboard(t *testing.T) {
	m := newTestModel(t)

	m.Update(key('d'))
	require.True(t, m.overlays.DialogOpen())

	// 'q' must not quit while the dialog is open.
	_, cmd := m.Update(key('q'))
	assert.Nil(t, cmd)
}

func TestModel_SearchFiltering(t *testing.T) {
	m := newTestModel(t)

	m.Update(key('/'))
	assert.True(t, m.searching)

	for _, r := range "report" {
		m.Update(key(r))
	}
	assert.Equal(t, "report", m.query)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.searching)
	assert.Less(t, len(m.filtered()), len(m.docs))
}

func TestModel_StickyToastLifecycle(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(key('s'))
	assert.Nil(t, cmd, "persistent toast schedules nothing")
	require.NotEmpty(t, m.stickyToast)
	assert.Equal(t, 1, m.overlays.ToastCount())

	id := m.stickyToast
	_, removal := m.Update(key('x'))
	require.NotNil(t, removal)
	assert.Empty(t, m.stickyToast)

	// Run the removal tick through the model's message loop.
	m.Update(removal())
	assert.False(t, m.overlays.HasToast(id))
}

func TestModel_AboutModal(t *testing.T) {
	m := newTestModel(t)

	m.Update(key('a'))
	assert.True(t, m.overlays.ModalOpen())

	view := m.View()
	assert.Contains(t, view, "About Veil")

	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, m.overlays.ModalOpen())
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "veil demo")
	assert.Contains(t, view, "Document")
	assert.Contains(t, view, "annual-report-2025.pdf")
}

func TestModel_View_BeforeFirstResize(t *testing.T) {
	m := New(config.Default(), zerolog.Nop())

	assert.Contains(t, m.View(), "Starting...")
}
