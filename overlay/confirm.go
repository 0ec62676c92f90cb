package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/veiltui/veil/markup"
	"github.com/veiltui/veil/styles"
	"github.com/veiltui/veil/widget"
)

// Variant selects the icon and accent treatment of a confirmation dialog.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantDanger  Variant = "danger"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

type variantSpec struct {
	icon          string
	accent        lipgloss.Color
	confirmButton widget.Variant
}

var variantTable = map[Variant]variantSpec{
	VariantDefault: {"?", styles.Blue, widget.VariantPrimary},
	VariantDanger:  {"⚠", styles.Red, widget.VariantDanger},
	VariantWarning: {"⚠", styles.Yellow, widget.VariantPrimary},
	VariantInfo:    {"ℹ", styles.Sky, widget.VariantPrimary},
}

// variantFor resolves a variant against the fixed table, falling back to
// default for unrecognized values.
func variantFor(v Variant) variantSpec {
	if spec, ok := variantTable[v]; ok {
		return spec
	}
	return variantTable[VariantDefault]
}

// Default button labels.
const (
	DefaultConfirmLabel = "Confirm"
	DefaultCancelLabel  = "Cancel"
)

// ConfirmConfig describes a confirmation dialog. Content may embed the
// marker syntax understood by package markup; it is inserted as-is
// otherwise (trusted input, see package documentation).
type ConfirmConfig struct {
	Title        string
	Content      string
	ConfirmLabel string // default "Confirm"
	CancelLabel  string // default "Cancel"
	OnConfirm    func()
	OnCancel     func()
	Variant      Variant // default "default"
	Icon         string  // overrides the variant icon, never its accent
}

type dialogPhase int

const (
	dialogActive dialogPhase = iota
	dialogClosing
)

// ConfirmDialog is the single active confirmation dialog. At most one
// instance is attached to a Manager at a time; the manager's generation
// counter ties pending removal ticks to the instance that scheduled them.
type ConfirmDialog struct {
	cfg      ConfirmConfig
	spec     variantSpec
	seq      uint64
	phase    dialogPhase
	selected bool // true = confirm button focused
	styles   *styles.Styles
	width    int
}

func newConfirmDialog(cfg ConfirmConfig, seq uint64, s *styles.Styles) *ConfirmDialog {
	if cfg.ConfirmLabel == "" {
		cfg.ConfirmLabel = DefaultConfirmLabel
	}
	if cfg.CancelLabel == "" {
		cfg.CancelLabel = DefaultCancelLabel
	}
	return &ConfirmDialog{
		cfg:      cfg,
		spec:     variantFor(cfg.Variant),
		seq:      seq,
		phase:    dialogActive,
		selected: false, // Default to Cancel for safety
		styles:   s,
		width:    widget.DefaultModalWidth,
	}
}

// icon returns the caller override if present, the variant icon otherwise.
func (d *ConfirmDialog) icon() string {
	if d.cfg.Icon != "" {
		return d.cfg.Icon
	}
	return d.spec.icon
}

// fire invokes exactly one of the configured callbacks. Callers must have
// won the Active → Closing transition first.
func (d *ConfirmDialog) fire(confirmed bool) {
	if confirmed {
		if d.cfg.OnConfirm != nil {
			d.cfg.OnConfirm()
		}
		return
	}
	if d.cfg.OnCancel != nil {
		d.cfg.OnCancel()
	}
}

// View renders the dialog box.
func (d *ConfirmDialog) View() string {
	var parts []string

	header := d.styles.OverlayIcon.Foreground(d.spec.accent).Render(d.icon())
	if d.cfg.Title != "" {
		header += " " + d.styles.OverlayTitle.MarginBottom(0).Render(d.cfg.Title)
	}
	parts = append(parts, header)

	if d.cfg.Content != "" {
		body := markup.Process(d.cfg.Content, d.styles)
		parts = append(parts, "", lipgloss.NewStyle().Width(d.width-6).Render(body))
	}

	cancel := widget.Button(widget.ButtonConfig{
		Label:   d.cfg.CancelLabel,
		Variant: widget.VariantSecondary,
		Active:  !d.selected,
	})
	confirm := widget.Button(widget.ButtonConfig{
		Label:   d.cfg.ConfirmLabel,
		Variant: d.spec.confirmButton,
		Active:  d.selected,
	})
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, cancel, "  ", confirm)
	parts = append(parts, "", buttons)

	footer := d.styles.Footer.Render("←/→ switch • enter confirm • esc cancel")
	parts = append(parts, footer)

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	box := d.styles.Overlay
	if d.phase == dialogClosing {
		box = d.styles.OverlayClosing
	} else {
		box = box.BorderForeground(d.spec.accent)
	}
	return box.Width(d.width).Render(content)
}
