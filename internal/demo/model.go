// Package demo is the document-search showcase application for the Veil
// toolkit. It exercises every renderer and every overlay operation; the
// search and indexing behavior is simulated.
package demo

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/veiltui/veil/config"
	"github.com/veiltui/veil/overlay"
	"github.com/veiltui/veil/toast"
	"github.com/veiltui/veil/widget"
)

const docsPerPage = 8

// Model is the demo application state.
type Model struct {
	cfg    config.Config
	logger zerolog.Logger

	overlays *overlay.Manager

	docs      []Document
	query     string
	searching bool
	cursor    int
	page      int

	// Last persistent toast shown via 's', dismissable with 'x'.
	stickyToast toast.ID

	// Commands produced inside dialog callbacks, which run outside the
	// normal update return path. Drained on the next update cycle.
	pending []tea.Cmd

	width  int
	height int
}

// New creates the demo model from loaded configuration.
func New(cfg config.Config, logger zerolog.Logger) *Model {
	manager := overlay.NewManager(
		overlay.WithLogger(logger),
		overlay.WithAnimationDuration(time.Duration(cfg.Overlay.AnimationMs)*time.Millisecond),
	)
	manager.RegisterModal(widget.ModalConfig{
		ID:    "about",
		Title: "About Veil",
		Body:  "A terminal widget and overlay toolkit.\nThis demo searches a simulated document library.",
		Buttons: []widget.ButtonConfig{
			{Label: "Close", Variant: widget.VariantSecondary, Active: true},
		},
	})

	return &Model{
		cfg:      cfg,
		logger:   logger,
		overlays: manager,
		docs:     sampleLibrary(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmd = m.overlays.Update(msg)

	case tea.MouseMsg:
		cmd = m.overlays.Update(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	default:
		// Everything else is overlay lifecycle traffic.
		cmd = m.overlays.Update(msg)
	}

	return m, m.drain(cmd)
}

// drain batches commands queued by dialog callbacks with the current one.
func (m *Model) drain(cmd tea.Cmd) tea.Cmd {
	if len(m.pending) == 0 {
		return cmd
	}
	cmds := append([]tea.Cmd{cmd}, m.pending...)
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// An open dialog owns the keyboard.
	if m.overlays.DialogOpen() {
		return m.overlays.Update(msg)
	}

	if m.overlays.ModalOpen() {
		switch msg.String() {
		case "esc", "enter", "a":
			m.overlays.CloseModal("about")
		}
		return nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit

	case "/":
		m.searching = true

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.page = m.cursor / docsPerPage

	case "down", "j":
		if m.cursor < len(m.filtered())-1 {
			m.cursor++
		}
		m.page = m.cursor / docsPerPage

	case "left":
		if m.page > 0 {
			m.page--
			m.cursor = m.page * docsPerPage
		}

	case "right":
		if m.page < m.totalPages()-1 {
			m.page++
			m.cursor = m.page * docsPerPage
		}

	case "d":
		return m.confirmDelete()

	case "r":
		return m.confirmReindex()

	case "a":
		m.overlays.OpenModal("about")

	case "s":
		id, cmd := m.overlays.ShowToastFor("⚠ Index is read-only until maintenance ends", toast.LevelWarning, 0)
		m.stickyToast = id
		return cmd

	case "x":
		if m.stickyToast == "" {
			return nil
		}
		cmd := m.overlays.DismissToast(m.stickyToast)
		m.stickyToast = ""
		return cmd
	}

	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEscape, tea.KeyEnter:
		m.searching = false

	case tea.KeyBackspace:
		if m.query != "" {
			m.query = m.query[:len(m.query)-1]
		}
		m.clampCursor()

	case tea.KeyRunes:
		m.query += string(msg.Runes)
		m.clampCursor()
	}
	return nil
}

// confirmDelete opens a danger dialog for the selected document.
func (m *Model) confirmDelete() tea.Cmd {
	docs := m.filtered()
	if len(docs) == 0 {
		return nil
	}
	if m.cursor >= len(docs) {
		m.cursor = len(docs) - 1
	}
	doc := docs[m.cursor]

	return m.overlays.ShowConfirm(overlay.ConfirmConfig{
		Title: "Delete document",
		Content: fmt.Sprintf(
			"Remove **%s** from the library?\n[warning]The document is deleted from every dataset\nand cannot be restored.[/warning]",
			doc.Name,
		),
		ConfirmLabel: "Delete",
		Variant:      overlay.VariantDanger,
		OnConfirm: func() {
			m.deleteDoc(doc.Name)
		},
		OnCancel: func() {
			m.logger.Debug().Str("doc", doc.Name).Msg("delete canceled")
		},
	})
}

// confirmReindex opens a warning dialog for a full reindex.
func (m *Model) confirmReindex() tea.Cmd {
	return m.overlays.ShowConfirm(overlay.ConfirmConfig{
		Title:        "Rebuild search index",
		Content:      "Queries return **partial results** while the index rebuilds.",
		ConfirmLabel: "Rebuild",
		Variant:      overlay.VariantWarning,
		OnConfirm: func() {
			for i := range m.docs {
				m.docs[i].Status = "pending"
			}
			m.queueToast("Reindex started", toast.LevelInfo)
		},
	})
}

// deleteDoc removes a document by name and reports the outcome.
func (m *Model) deleteDoc(name string) {
	for i, d := range m.docs {
		if d.Name == name {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			m.clampCursor()
			m.queueToast(fmt.Sprintf("Deleted %s", name), toast.LevelSuccess)
			return
		}
	}
	m.logger.Debug().Str("doc", name).Msg("delete requested for missing document")
}

// queueToast shows a toast with the configured duration. The expiry command
// is queued for the next update cycle because callbacks run outside the
// normal update return path.
func (m *Model) queueToast(message string, level toast.Level) {
	duration := time.Duration(m.cfg.Toast.DurationMs) * time.Millisecond
	_, cmd := m.overlays.ShowToastFor(message, level, duration)
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

func (m *Model) filtered() []Document {
	return filterDocs(m.docs, m.query)
}

func (m *Model) totalPages() int {
	n := len(m.filtered())
	if n == 0 {
		return 1
	}
	return (n + docsPerPage - 1) / docsPerPage
}

func (m *Model) clampCursor() {
	max := len(m.filtered()) - 1
	if m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.page >= m.totalPages() {
		m.page = m.totalPages() - 1
	}
	if m.page < 0 {
		m.page = 0
	}
}
