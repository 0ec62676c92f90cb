// Package widget provides the pure renderers of the Veil toolkit.
//
// Every renderer maps a config struct to a styled string and has no side
// effects. Unrecognized variant or size values fall back to the documented
// defaults rather than failing; missing text fields render as empty strings.
package widget

import "github.com/charmbracelet/lipgloss"

// Variant selects the semantic color treatment of a widget.
type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantDanger    Variant = "danger"
	VariantSuccess   Variant = "success"
	VariantOutline   Variant = "outline"
)

// Size selects the padding scale of a widget.
type Size string

const (
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"
)

type sizePadding struct {
	vertical   int
	horizontal int
}

var sizeTable = map[Size]sizePadding{
	SizeSM: {0, 1},
	SizeMD: {0, 2},
	SizeLG: {1, 3},
}

// paddingFor resolves a size against the fixed table, defaulting to md.
func paddingFor(size Size) sizePadding {
	if p, ok := sizeTable[size]; ok {
		return p
	}
	return sizeTable[SizeMD]
}

// normalizeVariant maps unknown variants to primary.
func normalizeVariant(v Variant) Variant {
	switch v {
	case VariantPrimary, VariantSecondary, VariantDanger, VariantSuccess, VariantOutline:
		return v
	default:
		return VariantPrimary
	}
}

func joinLines(parts ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
