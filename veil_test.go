package veil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespacedCollection(t *testing.T) {
	// The toolkit is consumed through this package alone.
	m := NewManager()
	assert.NotNil(t, m)

	got := RenderButton(ButtonConfig{Label: "Search"})
	assert.Contains(t, got, "Search")

	id, _ := m.ShowToast("indexed 12 documents", ToastSuccess)
	assert.NotEmpty(t, id)
	assert.True(t, m.HasToast(id))

	m.ShowConfirm(ConfirmConfig{Title: "Remove dataset?", Variant: VariantDanger})
	assert.True(t, m.DialogOpen())
}
