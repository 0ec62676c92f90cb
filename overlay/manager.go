// Package overlay manages Veil's transient overlay surfaces: the single
// confirmation dialog and the toast stack.
//
// A Manager is the process-wide overlay registry. It is owned by the host
// Bubble Tea model and mutated only from the program's update loop, so no
// locking is involved; the lifecycle discipline is carried by the
// Active → Closing → Removed phase machine instead. All waiting (exit
// animation, toast auto-dismiss) is expressed as tea.Tick commands.
package overlay

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/veiltui/veil/styles"
	"github.com/veiltui/veil/toast"
	"github.com/veiltui/veil/widget"
)

// DefaultAnimationDuration is the fixed delay between a dismissal trigger
// and the physical removal of the overlay.
const DefaultAnimationDuration = 200 * time.Millisecond

// Manager tracks at most one active confirmation dialog, the ordered toast
// stack, and the registered static modals.
type Manager struct {
	styles   *styles.Styles
	logger   zerolog.Logger
	anim     time.Duration
	renderer *toast.Renderer

	// Confirmation dialog slot. seq is a generation counter: removal
	// ticks carry the generation that scheduled them, so a tick from a
	// replaced dialog can never remove its successor.
	dialog *ConfirmDialog
	seq    uint64

	// Toast container, created lazily on first ShowToast and reused for
	// the life of the program.
	toasts *toast.Stack

	modals       map[string]widget.ModalConfig
	visibleModal string

	width  int
	height int
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for missing-target reporting.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithStyles overrides the shared style set.
func WithStyles(s *styles.Styles) Option {
	return func(m *Manager) {
		m.styles = s
		m.renderer = toast.NewRenderer(s)
	}
}

// WithAnimationDuration overrides the exit animation delay.
func WithAnimationDuration(d time.Duration) Option {
	return func(m *Manager) { m.anim = d }
}

// NewManager creates an empty overlay registry.
func NewManager(opts ...Option) *Manager {
	s := styles.Default()
	m := &Manager{
		styles:   s,
		logger:   zerolog.Nop(),
		anim:     DefaultAnimationDuration,
		renderer: toast.NewRenderer(s),
		modals:   make(map[string]widget.ModalConfig),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// internal lifecycle messages

type dialogRemovedMsg struct{ seq uint64 }

type toastExpiredMsg struct{ id toast.ID }

type toastRemovedMsg struct{ id toast.ID }

// ShowConfirm attaches a new confirmation dialog. If one is already
// attached — in any phase — it is dropped immediately: no exit animation
// and no callback for the replaced instance.
func (m *Manager) ShowConfirm(cfg ConfirmConfig) tea.Cmd {
	m.dialog = nil
	m.seq++
	m.dialog = newConfirmDialog(cfg, m.seq, m.styles)
	return nil
}

// DialogOpen reports whether a confirmation dialog is attached, in any
// phase. Hosts use this to route key input to the overlay layer.
func (m *Manager) DialogOpen() bool {
	return m.dialog != nil
}

// closeDialog runs the teardown sequence for the active dialog. Only the
// trigger that wins the Active → Closing transition fires a callback and
// schedules removal; every later trigger observes Closing and no-ops.
func (m *Manager) closeDialog(confirmed bool) tea.Cmd {
	d := m.dialog
	if d == nil || d.phase != dialogActive {
		return nil
	}
	d.phase = dialogClosing
	d.fire(confirmed)

	seq := d.seq
	return tea.Tick(m.anim, func(time.Time) tea.Msg {
		return dialogRemovedMsg{seq: seq}
	})
}

// ShowToast appends a toast with the default auto-dismiss duration.
func (m *Manager) ShowToast(message string, level toast.Level) (toast.ID, tea.Cmd) {
	return m.ShowToastFor(message, level, toast.DefaultDuration)
}

// ShowToastFor appends a toast. A non-positive duration keeps the toast
// until DismissToast is called. The returned command must be executed by
// the host program for auto-dismiss to fire.
func (m *Manager) ShowToastFor(message string, level toast.Level, duration time.Duration) (toast.ID, tea.Cmd) {
	if m.toasts == nil {
		m.toasts = toast.NewStack()
	}

	t := toast.New(message, level, duration)
	m.toasts.Push(t)

	if duration <= 0 {
		return t.ID, nil
	}
	id := t.ID
	return t.ID, tea.Tick(duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// DismissToast starts teardown for the given toast. Unknown identifiers
// are reported and ignored.
func (m *Manager) DismissToast(id toast.ID) tea.Cmd {
	cmd := m.beginToastTeardown(id)
	if cmd == nil && (m.toasts == nil || m.toasts.Get(id) == nil) {
		m.logger.Debug().Str("toast", string(id)).Msg("dismiss requested for missing toast")
	}
	return cmd
}

// beginToastTeardown attempts the Active → Closing transition for a toast.
// A toast that is already closing or gone yields no command, which makes
// racing timer fires and manual dismissals mutually idempotent.
func (m *Manager) beginToastTeardown(id toast.ID) tea.Cmd {
	if m.toasts == nil {
		return nil
	}
	t := m.toasts.Get(id)
	if t == nil || t.Phase != toast.PhaseActive {
		return nil
	}
	t.Phase = toast.PhaseClosing
	return tea.Tick(m.anim, func(time.Time) tea.Msg {
		return toastRemovedMsg{id: id}
	})
}

// ToastCount returns the number of toasts currently attached.
func (m *Manager) ToastCount() int {
	if m.toasts == nil {
		return 0
	}
	return m.toasts.Len()
}

// HasToast reports whether the toast with the given id is still attached.
func (m *Manager) HasToast(id toast.ID) bool {
	return m.toasts != nil && m.toasts.Get(id) != nil
}

// RegisterModal registers a static modal for OpenModal/CloseModal lookup.
func (m *Manager) RegisterModal(cfg widget.ModalConfig) {
	if cfg.ID == "" {
		m.logger.Debug().Msg("modal registered without id")
		return
	}
	m.modals[cfg.ID] = cfg
}

// OpenModal makes the registered modal with the given id visible.
// Unknown identifiers are reported and ignored.
func (m *Manager) OpenModal(id string) {
	if _, ok := m.modals[id]; !ok {
		m.logger.Debug().Str("modal", id).Msg("open requested for unknown modal")
		return
	}
	m.visibleModal = id
}

// CloseModal hides the modal with the given id if it is the visible one.
func (m *Manager) CloseModal(id string) {
	if m.visibleModal != id {
		m.logger.Debug().Str("modal", id).Msg("close requested for modal that is not open")
		return
	}
	m.visibleModal = ""
}

// ModalOpen reports whether a static modal is currently visible.
func (m *Manager) ModalOpen() bool {
	return m.visibleModal != ""
}

// Update processes lifecycle messages and, while a dialog is attached,
// dismissal triggers. Key input is routed to the dialog only in the Active
// phase: once teardown begins the Escape handling is already detached,
// which is what keeps a second Escape during the closing animation inert.
func (m *Manager) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil

	case dialogRemovedMsg:
		if m.dialog != nil && m.dialog.seq == msg.seq {
			m.dialog = nil
		}
		return nil

	case toastExpiredMsg:
		return m.beginToastTeardown(msg.id)

	case toastRemovedMsg:
		if m.toasts != nil {
			m.toasts.Remove(msg.id)
		}
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return nil
}

func (m *Manager) handleKey(msg tea.KeyMsg) tea.Cmd {
	d := m.dialog
	if d == nil || d.phase != dialogActive {
		return nil
	}

	switch msg.String() {
	case "esc":
		// Escape cancels, same as the backdrop.
		return m.closeDialog(false)

	case "y", "Y":
		return m.closeDialog(true)

	case "n", "N":
		return m.closeDialog(false)

	case "enter", " ":
		return m.closeDialog(d.selected)

	case "left", "h", "shift+tab":
		d.selected = false
		return nil

	case "right", "l", "tab":
		d.selected = true
		return nil
	}

	return nil
}

// handleMouse treats a press outside the dialog box as a backdrop click,
// which cancels. Presses inside the box are ignored.
func (m *Manager) handleMouse(msg tea.MouseMsg) tea.Cmd {
	d := m.dialog
	if d == nil || d.phase != dialogActive {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.width == 0 || m.height == 0 {
		return nil
	}

	view := d.View()
	dw := lipgloss.Width(view)
	dh := lipgloss.Height(view)
	x0 := (m.width - dw) / 2
	y0 := (m.height - dh) / 2

	inside := msg.X >= x0 && msg.X < x0+dw && msg.Y >= y0 && msg.Y < y0+dh
	if inside {
		return nil
	}
	return m.closeDialog(false)
}

// View composites the attached overlays over the host view. While a modal
// surface is up the host content is replaced by a dimmed backdrop with the
// surface centered on it; toasts are stacked below the content, newest
// last.
func (m *Manager) View(background string, width, height int) string {
	view := background

	if m.visibleModal != "" {
		view = m.center(widget.Modal(m.modals[m.visibleModal]), width, height)
	}
	if m.dialog != nil {
		view = m.center(m.dialog.View(), width, height)
	}

	if m.toasts != nil && m.toasts.Len() > 0 {
		toastView := m.renderer.Render(m.toasts.All(), width)
		if toastView != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, toastView)
		}
	}

	return view
}

// center places an overlay surface on a dimmed whitespace backdrop.
func (m *Manager) center(surface string, width, height int) string {
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		surface,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(m.styles.Backdrop.GetForeground()),
	)
}
