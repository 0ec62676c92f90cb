package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVariant(t *testing.T) {
	tests := []struct {
		name string
		in   Variant
		want Variant
	}{
		{"primary kept", VariantPrimary, VariantPrimary},
		{"danger kept", VariantDanger, VariantDanger},
		{"outline kept", VariantOutline, VariantOutline},
		{"unknown falls back", Variant("sparkle"), VariantPrimary},
		{"empty falls back", Variant(""), VariantPrimary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeVariant(tt.in))
		})
	}
}

func TestPaddingFor_UnknownSizeFallsBackToMD(t *testing.T) {
	assert.Equal(t, sizeTable[SizeMD], paddingFor(Size("xxl")))
	assert.Equal(t, sizeTable[SizeMD], paddingFor(Size("")))
}
